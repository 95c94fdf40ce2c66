/*
 * write.go, part of gotraj
 *
 * Copyright 2024 Raul Mera A. <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

package lammps

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	traj "github.com/rmera/gotraj"
)

//DumpW is the handle for writing a LAMMPS dump trajectory, one frame at a
//time. Positions are written in cartesian, wrapped form (the x y z
//columns). The extensions .gz and .zst select on-the-fly compression.
type DumpW struct {
	filename  string
	out       *bufio.Writer
	closer    io.Closer
	nwritten  int
	writeable bool
}

//NewWriter creates the file with the given name and prepares it for
//writing frames.
func NewWriter(filename string) (*DumpW, error) {
	W := new(DumpW)
	W.filename = filename
	sink, closer, err := prepSink(filename)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), filename, []string{"NewWriter"}, true}
	}
	W.out = bufio.NewWriter(sink)
	W.closer = closer
	W.writeable = true
	return W, nil
}

//WNext writes the given frame as the next step of the trajectory. The
//columns written are id, type, then x y z, plus element, q and vx vy vz
//when the frame carries symbols, charges or velocities. Triclinic cells
//get the tilt padding of their bounds restored, so a written file reads
//back to the same cell.
func (W *DumpW) WNext(frame *traj.Frame) error {
	if !W.writeable {
		return Error{TrajUnIni, W.filename, []string{"WNext"}, true}
	}
	if frame == nil {
		return Error{NilFrame, W.filename, []string{"WNext"}, true}
	}
	if err := frame.Corrupted(); err != nil {
		return Error{WrongFormat + ": " + err.Error(), W.filename, []string{"WNext"}, true}
	}
	if frame.Len() > 0 && frame.Coords == nil {
		return Error{WrongFormat + ": frame has atoms but no coordinates", W.filename, []string{"WNext"}, true}
	}
	out := W.out
	fmt.Fprintf(out, "ITEM: TIMESTEP\n%d\n", frame.Step)
	fmt.Fprintf(out, "ITEM: NUMBER OF ATOMS\n%d\n", frame.Len())
	W.writeBounds(frame.Cell)
	names := []string{"id", "type"}
	hasElement := false
	hasCharge := false
	for _, at := range frame.Atoms {
		if at.Symbol != "" {
			hasElement = true
		}
		if at.Charge != 0 {
			hasCharge = true
		}
	}
	if hasElement {
		names = append(names, "element")
	}
	names = append(names, "x", "y", "z")
	if hasCharge {
		names = append(names, "q")
	}
	if frame.Vel != nil {
		names = append(names, "vx", "vy", "vz")
	}
	fmt.Fprintf(out, "ITEM: ATOMS %s\n", strings.Join(names, " "))
	for i := 0; i < frame.Len(); i++ {
		at := frame.Atoms[i]
		id := at.Id
		if id <= 0 {
			id = i + 1
		}
		atype := at.Type
		if atype == "" {
			atype = "1"
		}
		fmt.Fprintf(out, "%d %s", id, atype)
		if hasElement {
			fmt.Fprintf(out, " %s", at.Symbol)
		}
		fmt.Fprintf(out, " %g %g %g", frame.Coords.At(i, 0), frame.Coords.At(i, 1), frame.Coords.At(i, 2))
		if hasCharge {
			fmt.Fprintf(out, " %g", at.Charge)
		}
		if frame.Vel != nil {
			fmt.Fprintf(out, " %g %g %g", frame.Vel.At(i, 0), frame.Vel.At(i, 1), frame.Vel.At(i, 2))
		}
		fmt.Fprintln(out)
	}
	if err := out.Flush(); err != nil {
		return Error{err.Error(), W.filename, []string{"WNext"}, true}
	}
	W.nwritten++
	return nil
}

//writeBounds writes the BOX BOUNDS item for the cell, restoring, for
//triclinic cells, the axis-aligned bounding-box padding the format stores.
//The origin of the written box is always zero.
func (W *DumpW) writeBounds(cell *traj.UnitCell) {
	out := W.out
	if cell == nil {
		cell = traj.NewInfinite()
	}
	M := cell.Matrix()
	if cell.Shape() != traj.Triclinic {
		fmt.Fprintf(out, "ITEM: BOX BOUNDS pp pp pp\n")
		for i := 0; i < 3; i++ {
			fmt.Fprintf(out, "%g %g\n", 0.0, M.At(i, i))
		}
		return
	}
	lx, ly, lz := M.At(0, 0), M.At(1, 1), M.At(2, 2)
	xy, xz, yz := M.At(1, 0), M.At(2, 0), M.At(2, 1)
	xlo := math.Min(0, math.Min(xy, math.Min(xz, xy+xz)))
	xhi := lx + math.Max(0, math.Max(xy, math.Max(xz, xy+xz)))
	ylo := math.Min(0, yz)
	yhi := ly + math.Max(0, yz)
	fmt.Fprintf(out, "ITEM: BOX BOUNDS xy xz yz pp pp pp\n")
	fmt.Fprintf(out, "%g %g %g\n", xlo, xhi, xy)
	fmt.Fprintf(out, "%g %g %g\n", ylo, yhi, xz)
	fmt.Fprintf(out, "%g %g %g\n", 0.0, lz, yz)
}

//Close flushes pending data and closes the underlying file. Using the
//writer after Close is an error.
func (W *DumpW) Close() {
	if !W.writeable {
		return
	}
	W.out.Flush()
	if W.closer != nil {
		W.closer.Close()
	}
	W.writeable = false
}
