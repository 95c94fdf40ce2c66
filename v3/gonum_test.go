/*
 * gonum_test.go, part of gotraj.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goTraj is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package v3

import "testing"

func TestMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		Te.Fatal(err)
	}
	if A.NVecs() != 2 {
		Te.Errorf("expected 2 vectors, got %d", A.NVecs())
	}
	if _, err = NewMatrix([]float64{1, 2, 3, 4}); err == nil {
		Te.Error("expected an error for a slice not divisible by 3")
	}
	v := A.VecView(1)
	v.Set(0, 0, 40)
	if A.At(1, 0) != 40 {
		Te.Error("changes in the view should be seen in the original")
	}
	B := Zeros(2)
	B.Copy(A)
	B.SwapVecs(0, 1)
	if B.At(0, 0) != 40 || B.At(1, 0) != 1 {
		Te.Error("wrong values after swapping vectors")
	}
	if A.At(0, 0) != 1 {
		Te.Error("Copy did not detach the new matrix from the original")
	}
	vec, _ := NewMatrix([]float64{1, 1, 1})
	C := Zeros(2)
	C.AddVec(A, vec)
	if C.At(0, 0) != 2 || C.At(1, 2) != 7 {
		Te.Error("wrong values after AddVec")
	}
	defer func() {
		if recover() == nil {
			Te.Error("Zeros with a non-positive size should panic")
		}
	}()
	Zeros(0)
}
