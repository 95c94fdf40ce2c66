/*
 * traj.go, part of gotraj.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package traj

import (
	"fmt"

	v3 "github.com/rmera/gotraj/v3"
)

//Atom contains the per-atom data read from a trajectory snapshot, except for
//the coordinates and velocities, which are kept in matrices in the Frame.
type Atom struct {
	Id     int     //the 1-based external id, as declared in the file. 0 if the file declares none.
	Type   string  //short species label. A stringified species code, or the element symbol if the file declares elements only.
	Symbol string  //element symbol, if declared. Empty otherwise.
	Mass   float64 //0 if not declared and not derivable from Symbol.
	Charge float64
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	Newat := new(Atom)
	Newat.Id = A.Id
	Newat.Type = A.Type
	Newat.Symbol = A.Symbol
	Newat.Mass = A.Mass
	Newat.Charge = A.Charge
	return Newat
}

//Property is a typed scalar attached to a frame by name ("time",
//"lammps_units", etc). It holds a string, a float64 or a bool.
type Property struct {
	kind int
	s    string
	f    float64
	b    bool
}

const (
	stringKind = iota
	floatKind
	boolKind
)

//StringProperty returns a Property holding the string s.
func StringProperty(s string) Property { return Property{kind: stringKind, s: s} }

//FloatProperty returns a Property holding the float64 f.
func FloatProperty(f float64) Property { return Property{kind: floatKind, f: f} }

//BoolProperty returns a Property holding the bool b.
func BoolProperty(b bool) Property { return Property{kind: boolKind, b: b} }

//AsString returns the string held by the property, and whether the property
//holds a string at all.
func (P Property) AsString() (string, bool) { return P.s, P.kind == stringKind }

//AsFloat returns the float64 held by the property, and whether the property
//holds a float64 at all.
func (P Property) AsFloat() (float64, bool) { return P.f, P.kind == floatKind }

//AsBool returns the bool held by the property, and whether the property
//holds a bool at all.
func (P Property) AsBool() (bool, bool) { return P.b, P.kind == boolKind }

//Frame is one simulation snapshot: a step number, a unit cell, the per-atom
//data, the coordinates and, if the file declared them, the velocities.
//A Frame returned by a reader is an independent value with no back-reference
//to the reader's state.
type Frame struct {
	Step   int        //the simulation step number, not the ordinal position in the file
	Cell   *UnitCell  //never nil in a frame produced by a reader
	Atoms  []*Atom    //in first-seen order within the step
	Coords *v3.Matrix //nil if the frame has no atoms
	Vel    *v3.Matrix //nil unless at least one velocity component was declared
	props  map[string]Property
}

//NewFrame returns an empty frame with an infinite cell and storage
//pre-sized for natoms atoms.
func NewFrame(natoms int) *Frame {
	F := new(Frame)
	F.Cell = NewInfinite()
	F.Atoms = make([]*Atom, 0, natoms)
	if natoms > 0 {
		F.Coords = v3.Zeros(natoms)
	}
	return F
}

//Len returns the number of atoms in the frame.
func (F *Frame) Len() int {
	return len(F.Atoms)
}

//SetProp attaches the property p to the frame under the given name,
//replacing any previous value.
func (F *Frame) SetProp(name string, p Property) {
	if F.props == nil {
		F.props = make(map[string]Property)
	}
	F.props[name] = p
}

//Prop returns the property stored under name, and whether the frame
//declares it at all. Properties are per-frame: a frame never inherits
//them from a previously read one.
func (F *Frame) Prop(name string) (Property, bool) {
	p, ok := F.props[name]
	return p, ok
}

//Copy returns a deep copy of the frame.
func (F *Frame) Copy() *Frame {
	N := new(Frame)
	N.Step = F.Step
	N.Cell = F.Cell.Copy()
	N.Atoms = make([]*Atom, len(F.Atoms))
	for i, v := range F.Atoms {
		N.Atoms[i] = v.Copy()
	}
	if F.Coords != nil {
		N.Coords = v3.Zeros(F.Coords.NVecs())
		N.Coords.Copy(F.Coords)
	}
	if F.Vel != nil {
		N.Vel = v3.Zeros(F.Vel.NVecs())
		N.Vel.Copy(F.Vel)
	}
	if F.props != nil {
		N.props = make(map[string]Property, len(F.props))
		for k, v := range F.props {
			N.props[k] = v
		}
	}
	return N
}

//Corrupted checks that the coordinate and velocity matrices, if present,
//match the number of atoms in the frame.
func (F *Frame) Corrupted() error {
	if F.Coords != nil && F.Coords.NVecs() != len(F.Atoms) {
		return fmt.Errorf("Inconsistent coordinates/atoms in frame: Atoms %d, coords: %d", len(F.Atoms), F.Coords.NVecs())
	}
	if F.Vel != nil && F.Vel.NVecs() != len(F.Atoms) {
		return fmt.Errorf("Inconsistent velocities/atoms in frame: Atoms %d, velocities: %d", len(F.Atoms), F.Vel.NVecs())
	}
	return nil
}
