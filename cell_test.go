/*
 * cell_test.go, part of gotraj.
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

package traj

import (
	"math"
	"testing"
)

func TestCellShapes(Te *testing.T) {
	U := NewInfinite()
	if U.Shape() != Infinite || U.Volume() != 0 {
		Te.Errorf("wrong infinite cell: %v, volume %f", U.Shape(), U.Volume())
	}
	U, err := NewCell([3]float64{0, 0, 0}, [3]float64{90, 90, 90})
	if err != nil {
		Te.Fatal(err)
	}
	if U.Shape() != Infinite {
		Te.Errorf("a cell with zero lengths should be Infinite, got %v", U.Shape())
	}
	U, err = NewCell([3]float64{10, 20, 30}, [3]float64{90, 90, 90})
	if err != nil {
		Te.Fatal(err)
	}
	if U.Shape() != Orthorhombic {
		Te.Errorf("expected an Orthorhombic cell, got %v", U.Shape())
	}
	if math.Abs(U.Volume()-6000) > 1e-9 {
		Te.Errorf("expected a volume of 6000, got %f", U.Volume())
	}
	U, err = NewCell([3]float64{10, 20, 30}, [3]float64{80, 90, 90})
	if err != nil {
		Te.Fatal(err)
	}
	if U.Shape() != Triclinic {
		Te.Errorf("expected a Triclinic cell, got %v", U.Shape())
	}
	if _, err = NewCell([3]float64{-1, 1, 1}, [3]float64{90, 90, 90}); err == nil {
		Te.Error("expected an error for a negative length")
	}
	if _, err = NewCell([3]float64{1, 1, 1}, [3]float64{90, 180, 90}); err == nil {
		Te.Error("expected an error for a 180-degree angle")
	}
}

//building a cell from lengths and angles and reading back the vectors, or
//the other way around, must be consistent
func TestCellRoundTrip(Te *testing.T) {
	lengths := [3]float64{10, 20.615528128088304, 12.216791722870348}
	angles := [3]float64{69.063, 70.888, 75.964}
	U, err := NewCell(lengths, angles)
	if err != nil {
		Te.Fatal(err)
	}
	a, b, c := U.Vectors()
	V, err := CellFromVectors(a, b, c)
	if err != nil {
		Te.Fatal(err)
	}
	l2 := V.Lengths()
	a2 := V.Angles()
	for i := 0; i < 3; i++ {
		if math.Abs(l2[i]-lengths[i]) > 1e-6 {
			Te.Errorf("length %d: expected %f got %f", i, lengths[i], l2[i])
		}
		if math.Abs(a2[i]-angles[i]) > 1e-6 {
			Te.Errorf("angle %d: expected %f got %f", i, angles[i], a2[i])
		}
	}
}

func TestCellFromVectors(Te *testing.T) {
	U, err := CellFromVectors([3]float64{10, 0, 0}, [3]float64{5, 20, 0}, [3]float64{4, 3.5, 11})
	if err != nil {
		Te.Fatal(err)
	}
	if U.Shape() != Triclinic {
		Te.Errorf("expected a Triclinic cell, got %v", U.Shape())
	}
	//lower-triangular basis: the volume is the product of the diagonal
	if math.Abs(U.Volume()-10*20*11) > 1e-9 {
		Te.Errorf("expected a volume of 2200, got %f", U.Volume())
	}
	if _, err = CellFromVectors([3]float64{10, 1, 0}, [3]float64{5, 20, 0}, [3]float64{4, 3.5, 11}); err == nil {
		Te.Error("expected an error for non-lower-triangular vectors")
	}
	N := U.Copy()
	if N.Shape() != U.Shape() || N.Lengths() != U.Lengths() || N.Angles() != U.Angles() {
		Te.Error("the copy does not match the original")
	}
	//the returned matrix is a copy, so writing to it can not corrupt the cell
	M := U.Matrix()
	M.Set(0, 0, 1000)
	if U.Matrix().At(0, 0) == 1000 {
		Te.Error("Matrix() returned a reference to the internal basis")
	}
}
