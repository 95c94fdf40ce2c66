/*
 * traj_test.go, part of gotraj.
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
	"testing"

	v3 "github.com/rmera/gotraj/v3"
)

func TestFrame(Te *testing.T) {
	F := NewFrame(2)
	if F.Cell == nil || F.Cell.Shape() != Infinite {
		Te.Error("a new frame should have an infinite cell")
	}
	F.Atoms = append(F.Atoms, &Atom{Id: 1, Type: "1", Symbol: "O", Mass: 16})
	F.Atoms = append(F.Atoms, &Atom{Id: 2, Type: "2", Symbol: "H", Mass: 1, Charge: 0.4})
	F.Coords.Set(0, 0, 1.5)
	F.SetProp("time", FloatProperty(2.5))
	F.SetProp("lammps_units", StringProperty("metal"))
	if F.Len() != 2 {
		Te.Errorf("expected 2 atoms, got %d", F.Len())
	}
	if err := F.Corrupted(); err != nil {
		Te.Error(err)
	}
	N := F.Copy()
	N.Coords.Set(0, 0, -1)
	N.Atoms[0].Symbol = "N"
	N.SetProp("time", FloatProperty(100))
	if F.Coords.At(0, 0) != 1.5 || F.Atoms[0].Symbol != "O" {
		Te.Error("changing the copy changed the original")
	}
	p, ok := F.Prop("time")
	if !ok {
		Te.Fatal("the time property is missing")
	}
	if t, _ := p.AsFloat(); t != 2.5 {
		Te.Errorf("expected time 2.5, got %f", t)
	}
	if _, ok := p.AsString(); ok {
		Te.Error("a float property should not read back as a string")
	}
	p, _ = F.Prop("lammps_units")
	if u, ok := p.AsString(); !ok || u != "metal" {
		Te.Errorf("expected units 'metal', got '%s'", u)
	}
	if _, ok := F.Prop("nonexistent"); ok {
		Te.Error("a property that was never set should not be found")
	}
	F.Vel = v3.Zeros(1) //wrong size on purpose
	if err := F.Corrupted(); err == nil {
		Te.Error("expected an error for mismatched velocities")
	}
}

func TestMassFromSymbol(Te *testing.T) {
	m, ok := MassFromSymbol("C")
	if !ok || m != 12.01 {
		Te.Errorf("wrong mass for C: %f (%v)", m, ok)
	}
	if _, ok := MassFromSymbol("Xx"); ok {
		Te.Error("an unknown symbol should not return a mass")
	}
}
