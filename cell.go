/*
 * cell.go, part of gotraj.
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
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

//CellShape is the shape of a unit cell.
type CellShape int

const (
	//Infinite is the shape of a system without periodic boundaries.
	Infinite CellShape = iota
	//Orthorhombic cells have three mutually perpendicular edges.
	Orthorhombic
	//Triclinic cells have at least one non-right angle between edges.
	Triclinic
)

func (s CellShape) String() string {
	switch s {
	case Infinite:
		return "Infinite"
	case Orthorhombic:
		return "Orthorhombic"
	case Triclinic:
		return "Triclinic"
	}
	return fmt.Sprintf("CellShape(%d)", int(s))
}

//used to decide whether an angle is a right angle, and whether a length is zero.
const cellEps = 1e-5

//UnitCell represents the periodic boundaries of a simulation snapshot:
//three edge lengths, three angles in degrees, and the equivalent basis
//vectors as the rows of a lower-triangular 3x3 matrix (the convention of
//the dump-style formats: a along x, b in the xy plane).
type UnitCell struct {
	shape   CellShape
	lengths [3]float64
	angles  [3]float64
	basis   *mat.Dense //3x3, rows are the vectors a, b, c
}

//NewInfinite returns the cell of a non-periodic system. Its lengths are
//zero and its angles are 90 degrees.
func NewInfinite() *UnitCell {
	return &UnitCell{
		shape:  Infinite,
		angles: [3]float64{90, 90, 90},
		basis:  mat.NewDense(3, 3, nil),
	}
}

//NewCell builds a cell from three edge lengths and three angles
//(alpha, beta, gamma) in degrees. Lengths must be non-negative and angles
//must lie strictly between 0 and 180 degrees. A cell with all lengths zero
//is Infinite, one with all angles at 90 degrees is Orthorhombic, any other
//is Triclinic.
func NewCell(lengths, angles [3]float64) (*UnitCell, error) {
	for i, v := range lengths {
		if v < 0 {
			return nil, fmt.Errorf("goTraj: cell length %d is negative: %f", i, v)
		}
	}
	for i, v := range angles {
		if v <= 0 || v >= 180 {
			return nil, fmt.Errorf("goTraj: cell angle %d out of (0,180): %f", i, v)
		}
	}
	U := &UnitCell{lengths: lengths, angles: angles}
	U.shape = shapeFor(lengths, angles)
	if U.shape == Infinite {
		U.angles = [3]float64{90, 90, 90}
		U.basis = mat.NewDense(3, 3, nil)
		return U, nil
	}
	U.basis = basisFromLengthsAngles(lengths, angles)
	return U, nil
}

//CellFromVectors builds a cell from the three basis vectors a, b and c.
//The vectors must follow the lower-triangular convention: a = (lx,0,0),
//b = (xy,ly,0), c = (xz,yz,lz).
func CellFromVectors(a, b, c [3]float64) (*UnitCell, error) {
	if a[1] != 0 || a[2] != 0 || b[2] != 0 {
		return nil, fmt.Errorf("goTraj: cell vectors are not in lower-triangular form")
	}
	lengths := [3]float64{norm(a), norm(b), norm(c)}
	angles := [3]float64{90, 90, 90}
	if lengths[1] > 0 && lengths[2] > 0 {
		angles[0] = angleDeg(b, c)
	}
	if lengths[0] > 0 && lengths[2] > 0 {
		angles[1] = angleDeg(a, c)
	}
	if lengths[0] > 0 && lengths[1] > 0 {
		angles[2] = angleDeg(a, b)
	}
	U := &UnitCell{lengths: lengths, angles: angles}
	U.shape = shapeFor(lengths, angles)
	U.basis = mat.NewDense(3, 3, []float64{
		a[0], a[1], a[2],
		b[0], b[1], b[2],
		c[0], c[1], c[2],
	})
	return U, nil
}

func shapeFor(lengths, angles [3]float64) CellShape {
	if lengths[0] < cellEps && lengths[1] < cellEps && lengths[2] < cellEps {
		return Infinite
	}
	for _, v := range angles {
		if math.Abs(v-90) > cellEps {
			return Triclinic
		}
	}
	return Orthorhombic
}

func basisFromLengthsAngles(lengths, angles [3]float64) *mat.Dense {
	alpha := angles[0] * math.Pi / 180
	beta := angles[1] * math.Pi / 180
	gamma := angles[2] * math.Pi / 180
	cx := lengths[2] * math.Cos(beta)
	cy := lengths[2] * (math.Cos(alpha) - math.Cos(beta)*math.Cos(gamma)) / math.Sin(gamma)
	cz := math.Sqrt(math.Max(0, lengths[2]*lengths[2]-cx*cx-cy*cy))
	return mat.NewDense(3, 3, []float64{
		lengths[0], 0, 0,
		lengths[1] * math.Cos(gamma), lengths[1] * math.Sin(gamma), 0,
		cx, cy, cz,
	})
}

func norm(v [3]float64) float64 {
	return math.Sqrt(floats.Dot(v[:], v[:]))
}

func angleDeg(u, v [3]float64) float64 {
	cos := floats.Dot(u[:], v[:]) / (norm(u) * norm(v))
	//clamp against fp noise before acos
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * 180 / math.Pi
}

//Shape returns the shape of the cell.
func (U *UnitCell) Shape() CellShape {
	return U.shape
}

//Lengths returns the three edge lengths of the cell.
func (U *UnitCell) Lengths() [3]float64 {
	return U.lengths
}

//Angles returns the three angles (alpha, beta, gamma) of the cell, in
//degrees.
func (U *UnitCell) Angles() [3]float64 {
	return U.angles
}

//Vectors returns the three basis vectors of the cell.
func (U *UnitCell) Vectors() (a, b, c [3]float64) {
	for i := 0; i < 3; i++ {
		a[i] = U.basis.At(0, i)
		b[i] = U.basis.At(1, i)
		c[i] = U.basis.At(2, i)
	}
	return a, b, c
}

//Matrix returns a copy of the 3x3 basis matrix of the cell, whose rows
//are the vectors a, b, c.
func (U *UnitCell) Matrix() *mat.Dense {
	M := mat.NewDense(3, 3, nil)
	M.Copy(U.basis)
	return M
}

//Volume returns the volume of the cell. It is zero for Infinite cells.
func (U *UnitCell) Volume() float64 {
	//lower-triangular basis, so the determinant is just the diagonal product.
	return U.basis.At(0, 0) * U.basis.At(1, 1) * U.basis.At(2, 2)
}

//Copy returns a copy of the cell.
func (U *UnitCell) Copy() *UnitCell {
	N := &UnitCell{shape: U.shape, lengths: U.lengths, angles: U.angles}
	N.basis = mat.NewDense(3, 3, nil)
	N.basis.Copy(U.basis)
	return N
}
