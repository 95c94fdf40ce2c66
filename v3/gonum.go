/*
 * gonum.go, part of gotraj.
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

//Within the package it is understood that a "vector" is a row vector, i.e.
//the cartesian coordinates of a point in 3D space. The names of some
//functions in the package reflect this.

package v3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of vectors in 3D space. It is implemented as an embedded
//gonum Dense with 3 columns, so every gonum operation remains available.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense underlying the matrix A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps the gonum Dense A into a Matrix. It panics if A does
//not have 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(PanicMsg(fmt.Sprintf("goTraj/v3: Dense2Matrix given a matrix with %d columns", c)))
	}
	return &Matrix{A}
}

//NewMatrix generates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	r := mat.NewDense(rows, cols, data)
	return &Matrix{r}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors and 3 columns.
//It panics if vecs is not positive, as gonum does not allow empty matrices.
func Zeros(vecs int) *Matrix {
	if vecs <= 0 {
		panic(PanicMsg(fmt.Sprintf("goTraj/v3: Zeros requires a positive number of vectors, got %d", vecs)))
	}
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes in the
//view are reflected in the original matrix, and vice-versa.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Copy copies the matrix A into the receiver. Both matrices must have the
//same number of vectors.
func (F *Matrix) Copy(A *Matrix) {
	if F.NVecs() != A.NVecs() {
		panic(PanicMsg(fmt.Sprintf("goTraj/v3: Copy between matrices of %d and %d vectors", F.NVecs(), A.NVecs())))
	}
	F.Dense.Copy(A.Dense)
}

//SwapVecs swaps the vectors i and j of the matrix.
func (F *Matrix) SwapVecs(i, j int) {
	l := F.NVecs()
	if i >= l || j >= l {
		panic(PanicMsg("goTraj/v3: Indexes out of range"))
	}
	rowi := F.RawRowView(i)
	rowj := F.RawRowView(j)
	for k := 0; k < 3; k++ {
		rowi[k], rowj[k] = rowj[k], rowi[k]
	}
}

//AddVec adds the vector vec to each vector of the matrix A, putting the
//result in the receiver. The receiver and A must have the same number of
//vectors.
func (F *Matrix) AddVec(A, vec *Matrix) {
	if vec.NVecs() != 1 || F.NVecs() != A.NVecs() {
		panic(ErrShape)
	}
	for i := 0; i < A.NVecs(); i++ {
		for j := 0; j < 3; j++ {
			F.Set(i, j, A.At(i, j)+vec.At(0, j))
		}
	}
}

//Errors

//Error is the error type for the package. It implements the traj.Error
//interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("v3 error: %s", err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

//PanicMsg is the type used for the text of panics raised by the package.
type PanicMsg string

func (v PanicMsg) Error() string { return string(v) }

//ErrShape is raised when the shapes of the matrices in an operation do
//not match.
const ErrShape = PanicMsg("goTraj/v3: Dimension mismatch")
