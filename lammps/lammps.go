/*
 * lammps.go, part of gotraj
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package lammps

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	traj "github.com/rmera/gotraj"
	v3 "github.com/rmera/gotraj/v3"
)

//The stable prefixes identifying which parsing phase failed. They are part
//of the error-message contract of the format and must not be reworded.
const (
	nextStepPrefix  = "can not read next step as LAMMPS format: "
	boxHeaderPrefix = "can not read box header in LAMMPS format: "
	itemPrefix      = "ITEM: "
	timestepMarker  = "ITEM: TIMESTEP"
)

//A stepEntry locates one step of the trajectory: its step number, and the
//byte offset of the line immediately following the "ITEM: TIMESTEP" marker.
//The step number is filled leniently while scanning (-1 if the line after
//the marker is not an integer; the error surfaces when the step is read).
type stepEntry struct {
	step int
	pos  int64
}

//DumpObj is the handle for a LAMMPS "atom dump" trajectory, file-backed or
//in-memory. It owns a lazily-grown index of step offsets, so reading an
//arbitrary step ordinal never re-scans already visited parts of the input.
//A DumpObj must not be used from several goroutines at the same time
//without external serialization.
type DumpObj struct {
	filename  string
	source    io.ReadSeeker
	closer    io.Closer //nil for in-memory trajectories
	reader    *bufio.Reader
	offset    int64 //offset of the next byte the reader will deliver
	streamPos int64 //where the next sequential read starts
	index     []stepEntry
	scanPos   int64 //where the index scan resumes
	complete  bool  //the whole input has been indexed
	current   int   //ordinal of the next sequential step
	natoms    int   //atoms in the last read frame
	readable  bool
}

//New opens the dump file with the given name for reading. Files compressed
//with gzip (.gz), zstd (.zst) or bzip2 (.bz2) are decompressed into memory
//first, as random access by step needs a seekable source.
func New(filename string) (*DumpObj, error) {
	D := new(DumpObj)
	D.filename = filename
	source, closer, err := prepSource(filename)
	if err != nil {
		return nil, Error{UnableToOpen + ": " + err.Error(), filename, []string{"New"}, true}
	}
	D.source = source
	D.closer = closer
	D.reader = bufio.NewReader(D.source)
	D.readable = true
	return D, nil
}

//NewFromBytes opens an in-memory dump trajectory for reading. The buffer is
//parsed with exactly the same logic as a file.
func NewFromBytes(data []byte) (*DumpObj, error) {
	D := new(DumpObj)
	D.filename = "in-memory trajectory"
	D.source = bytes.NewReader(data)
	D.reader = bufio.NewReader(D.source)
	D.readable = true
	return D, nil
}

//Readable returns true if the object is ready to be read from,
//false otherwise. It doesn't guarantee that there is something
//to read.
func (D *DumpObj) Readable() bool {
	return D.readable
}

//Len returns the number of atoms in the last frame read. Note that, unlike
//in most trajectory formats, the number of atoms per frame is not fixed in
//a dump file. It returns 0 if no frame has been read yet.
func (D *DumpObj) Len() int {
	return D.natoms
}

//Close closes the underlying file, if any, and marks the object as
//unreadable. The step index is discarded with the object.
func (D *DumpObj) Close() {
	if !D.readable {
		return
	}
	if D.closer != nil {
		D.closer.Close()
	}
	D.readable = false
}

//NSteps returns the total number of steps in the trajectory. The first call
//scans the not-yet-indexed remainder of the input; the count is cached
//afterwards.
func (D *DumpObj) NSteps() (int, error) {
	if !D.readable {
		return 0, Error{TrajUnIni, D.filename, []string{"NSteps"}, true}
	}
	if err := D.scan(-1); err != nil {
		return 0, errDecorate(err, "NSteps")
	}
	return len(D.index), nil
}

//ReadStep reads and returns the frame at the 0-based step ordinal n. Note
//that the ordinal is the position of the step in the file, not the
//simulation step number recorded in it. Re-reading an already visited
//ordinal reuses the step index and never re-scans from the start.
func (D *DumpObj) ReadStep(n int) (*traj.Frame, error) {
	if !D.readable {
		return nil, Error{TrajUnIni, D.filename, []string{"ReadStep"}, true}
	}
	if n < 0 {
		return nil, Error{fmt.Sprintf("can not read step %d in LAMMPS format: step ordinals start at 0", n), D.filename, []string{"ReadStep"}, true}
	}
	if err := D.scan(n); err != nil {
		return nil, errDecorate(err, "ReadStep")
	}
	if n >= len(D.index) {
		return nil, Error{fmt.Sprintf("can not read step %d in LAMMPS format: the trajectory only contains %d steps", n, len(D.index)), D.filename, []string{"ReadStep"}, true}
	}
	if err := D.seek(D.index[n].pos); err != nil {
		return nil, Error{err.Error(), D.filename, []string{"ReadStep"}, true}
	}
	frame, err := D.parseStepBody(nil)
	if err != nil {
		return nil, errDecorate(err, "ReadStep")
	}
	D.current = n + 1
	D.streamPos = D.offset
	D.natoms = frame.Len()
	return frame, nil
}

//ReadNext reads and returns the next sequential frame of the trajectory.
//At a clean end of input it returns a non-critical error implementing
//traj.LastFrameError. UNITS and TIME entries found before the TIMESTEP
//marker belong to the frame that follows them.
func (D *DumpObj) ReadNext() (*traj.Frame, error) {
	if !D.readable {
		return nil, Error{TrajUnIni, D.filename, []string{"ReadNext"}, true}
	}
	if err := D.seek(D.streamPos); err != nil {
		return nil, Error{err.Error(), D.filename, []string{"ReadNext"}, true}
	}
	var props map[string]traj.Property
	first := true
	for {
		line, err := D.nextLine()
		if err != nil {
			if first {
				return nil, newlastFrameError(D.filename, "ReadNext")
			}
			return nil, Error{nextStepPrefix + "expected an ITEM entry", D.filename, []string{"ReadNext"}, true}
		}
		it, ok := parseItem(line)
		if !ok {
			return nil, Error{nextStepPrefix + "expected an ITEM entry", D.filename, []string{"ReadNext"}, true}
		}
		first = false
		switch it.name {
		case "TIME":
			t, err := D.propertyLine(nextStepPrefix)
			if err != nil {
				return nil, err
			}
			f, err2 := strconv.ParseFloat(t, 64)
			if err2 != nil {
				return nil, Error{nextStepPrefix + fmt.Sprintf("can not parse '%s' as a number", t), D.filename, []string{"ReadNext"}, true}
			}
			props = setProp(props, "time", traj.FloatProperty(f))
		case "UNITS":
			u, err := D.propertyLine(nextStepPrefix)
			if err != nil {
				return nil, err
			}
			props = setProp(props, "lammps_units", traj.StringProperty(u))
		case "TIMESTEP":
			appended := false
			if D.current == len(D.index) && !D.complete {
				D.index = append(D.index, stepEntry{step: -1, pos: D.offset})
				appended = true
			}
			frame, err := D.parseStepBody(props)
			if err != nil {
				return nil, errDecorate(err, "ReadNext")
			}
			if appended {
				D.index[len(D.index)-1].step = frame.Step
				if D.offset > D.scanPos {
					D.scanPos = D.offset
				}
			}
			D.current++
			D.streamPos = D.offset
			D.natoms = frame.Len()
			return frame, nil
		default:
			return nil, Error{nextStepPrefix + fmt.Sprintf("expected 'TIMESTEP' got '%s'", it.name), D.filename, []string{"ReadNext"}, true}
		}
	}
}

//Next reads the next frame and fills the given matrix with its
//coordinates, or discards the frame if the matrix is nil. If a box slice
//with at least 9 elements is given, it is filled with the row-major cell
//basis vectors. Next, together with Readable and Len, implements
//traj.Traj.
func (D *DumpObj) Next(c *v3.Matrix, box ...[]float64) error {
	frame, err := D.ReadNext()
	if err != nil {
		return err
	}
	if c != nil && frame.Coords != nil {
		if c.NVecs() < frame.Len() {
			return Error{NotEnoughSpace, D.filename, []string{"Next"}, true}
		}
		for i := 0; i < frame.Len(); i++ {
			for j := 0; j < 3; j++ {
				c.Set(i, j, frame.Coords.At(i, j))
			}
		}
	}
	if len(box) > 0 && len(box[0]) >= 9 {
		M := frame.Cell.Matrix()
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				box[0][3*i+j] = M.At(i, j)
			}
		}
	}
	return nil
}

//NextConc takes a slice of matrices and reads as many frames as elements
//the list has from the trajectory. The frames are discarded if the
//corresponding element of the slice is nil. The function returns a slice
//of channels through each of which a *v3.Matrix will be transmitted.
func (D *DumpObj) NextConc(frames []*v3.Matrix) ([]chan *v3.Matrix, error) {
	if !D.Readable() {
		return nil, Error{TrajUnIni, D.filename, []string{"NextConc"}, true}
	}
	framechans := make([]chan *v3.Matrix, len(frames))
	for key, v := range frames {
		if err := D.Next(v); err != nil {
			return nil, errDecorate(err, "NextConc")
		}
		framechans[key] = make(chan *v3.Matrix)
		go func(keep *v3.Matrix, pipe chan *v3.Matrix) {
			pipe <- keep
		}(v, framechans[key])
	}
	return framechans, nil
}

/*****The step index*****/

//scan extends the step index until it holds more than target entries, or
//until the end of the input. A negative target indexes the whole input.
//Only lines confirmed to be "ITEM: TIMESTEP" markers are ever recorded, so
//a failed read can not corrupt the index.
func (D *DumpObj) scan(target int) error {
	if D.complete || (target >= 0 && target < len(D.index)) {
		return nil
	}
	if err := D.seek(D.scanPos); err != nil {
		return Error{err.Error(), D.filename, []string{"scan"}, true}
	}
	for {
		line, err := D.nextLine()
		if err != nil {
			D.complete = true
			D.scanPos = D.offset
			return nil
		}
		if line != timestepMarker {
			continue
		}
		//a sequential read may have indexed this same marker already
		if l := len(D.index); l > 0 && D.offset <= D.index[l-1].pos {
			continue
		}
		entry := stepEntry{step: -1, pos: D.offset}
		if stepline, err2 := D.nextLine(); err2 == nil {
			if n, err3 := strconv.Atoi(strings.TrimSpace(stepline)); err3 == nil {
				entry.step = n
			}
		}
		D.index = append(D.index, entry)
		D.scanPos = D.offset
		if target >= 0 && target < len(D.index) {
			return nil
		}
	}
}

//seek repositions the reader at the given absolute byte offset.
func (D *DumpObj) seek(pos int64) error {
	if _, err := D.source.Seek(pos, io.SeekStart); err != nil {
		return err
	}
	D.reader.Reset(D.source)
	D.offset = pos
	return nil
}

//nextLine returns the next line of the input, without its line terminator,
//keeping track of the byte offset. A final line without a terminator is
//still returned; io.EOF is only returned when there is no data left.
func (D *DumpObj) nextLine() (string, error) {
	raw, err := D.reader.ReadString('\n')
	D.offset += int64(len(raw))
	if err != nil {
		if err == io.EOF && raw != "" {
			return strings.TrimRight(raw, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(raw, "\r\n"), nil
}

/*****The section dispatcher*****/

//item is one "ITEM: <NAME> [<args>...]" section marker.
type item struct {
	name string
	args []string
}

//parseItem classifies a line as a section marker. The multi-word names of
//the grammar are matched literally; for unknown markers the whole text
//after the prefix becomes the name, so diagnostics can quote it.
func parseItem(line string) (item, bool) {
	if !strings.HasPrefix(line, itemPrefix) {
		return item{}, false
	}
	rest := line[len(itemPrefix):]
	switch {
	case rest == "TIMESTEP" || rest == "TIME" || rest == "UNITS" || rest == "NUMBER OF ATOMS":
		return item{name: rest}, true
	case strings.HasPrefix(rest, "BOX BOUNDS"):
		return item{name: "BOX BOUNDS", args: strings.Fields(rest[len("BOX BOUNDS"):])}, true
	case strings.HasPrefix(rest, "ATOMS"):
		return item{name: "ATOMS", args: strings.Fields(rest[len("ATOMS"):])}, true
	}
	return item{name: strings.TrimSpace(rest)}, true
}

//propertyLine reads the single data line of a TIME or UNITS section.
func (D *DumpObj) propertyLine(prefix string) (string, error) {
	line, err := D.nextLine()
	if err != nil {
		return "", Error{prefix + "unexpected end of input", D.filename, nil, true}
	}
	return strings.TrimSpace(line), nil
}

func setProp(props map[string]traj.Property, name string, p traj.Property) map[string]traj.Property {
	if props == nil {
		props = make(map[string]traj.Property)
	}
	props[name] = p
	return props
}

//parseStepBody parses one step starting right after its "ITEM: TIMESTEP"
//marker, accumulating into a fresh Frame. The given properties, if any,
//were collected before the marker and belong to this step. A step either
//parses completely or an error is returned and no frame at all.
func (D *DumpObj) parseStepBody(props map[string]traj.Property) (*traj.Frame, error) {
	stepline, err := D.nextLine()
	if err != nil {
		return nil, Error{nextStepPrefix + "unexpected end of input", D.filename, nil, true}
	}
	step, err := strconv.Atoi(strings.TrimSpace(stepline))
	if err != nil || step < 0 {
		return nil, Error{nextStepPrefix + fmt.Sprintf("can not parse '%s' as a step number", strings.TrimSpace(stepline)), D.filename, nil, true}
	}
	natoms := -1
	var cell *traj.UnitCell
	var origin [3]float64
	//everything until BOX BOUNDS is the box header
	for cell == nil {
		line, err := D.nextLine()
		if err != nil {
			return nil, Error{boxHeaderPrefix + "missing 'BOX BOUNDS' item in LAMMPS format", D.filename, nil, true}
		}
		it, ok := parseItem(line)
		if !ok {
			return nil, Error{boxHeaderPrefix + fmt.Sprintf("expected an ITEM entry in LAMMPS format, got '%s'", line), D.filename, nil, true}
		}
		switch it.name {
		case "TIMESTEP", "ATOMS":
			return nil, Error{boxHeaderPrefix + "missing 'BOX BOUNDS' item in LAMMPS format", D.filename, nil, true}
		case "NUMBER OF ATOMS":
			nline, err := D.propertyLine(boxHeaderPrefix)
			if err != nil {
				return nil, err
			}
			n, err2 := strconv.Atoi(nline)
			if err2 != nil {
				return nil, Error{boxHeaderPrefix + fmt.Sprintf("can not parse '%s' as the number of atoms", nline), D.filename, nil, true}
			}
			if n < 0 {
				return nil, Error{boxHeaderPrefix + fmt.Sprintf("the number of atoms can not be negative, got %d", n), D.filename, nil, true}
			}
			natoms = n
		case "TIME":
			t, err := D.propertyLine(boxHeaderPrefix)
			if err != nil {
				return nil, err
			}
			f, err2 := strconv.ParseFloat(t, 64)
			if err2 != nil {
				return nil, Error{boxHeaderPrefix + fmt.Sprintf("can not parse '%s' as a number", t), D.filename, nil, true}
			}
			props = setProp(props, "time", traj.FloatProperty(f))
		case "UNITS":
			u, err := D.propertyLine(boxHeaderPrefix)
			if err != nil {
				return nil, err
			}
			props = setProp(props, "lammps_units", traj.StringProperty(u))
		case "BOX BOUNDS":
			cell, origin, err = D.parseBoxBounds(it.args)
			if err != nil {
				return nil, err
			}
		default:
			//unknown marker: skipped. Its payload lines, if any, will fail
			//the expected-an-ITEM-entry check above.
		}
	}
	if natoms < 0 {
		natoms = 0
	}
	//after the box only the ATOMS section is legal
	line, err := D.nextLine()
	if err != nil {
		return nil, Error{nextStepPrefix + "expected an ITEM entry", D.filename, nil, true}
	}
	it, ok := parseItem(line)
	if !ok {
		return nil, Error{nextStepPrefix + "expected an ITEM entry", D.filename, nil, true}
	}
	if it.name != "ATOMS" {
		return nil, Error{nextStepPrefix + fmt.Sprintf("expected 'ATOMS' got '%s'", it.name), D.filename, nil, true}
	}
	atoms, coords, vel, err := D.parseAtomsSection(it.args, natoms, cell, origin)
	if err != nil {
		return nil, err
	}
	frame := new(traj.Frame)
	frame.Step = step
	frame.Cell = cell
	frame.Atoms = atoms
	frame.Coords = coords
	frame.Vel = vel
	for k, v := range props {
		frame.SetProp(k, v)
	}
	return frame, nil
}

/*****The box-bounds parser*****/

//depadBounds removes the tilt's axis-aligned bounding-box padding from the
//stored lo/hi values, recovering the true geometric bounds. The stored x
//bounds absorb min/max over {0, xy, xz, xy+xz} and the stored y bounds
//min/max over {0, yz}; z is never padded.
func depadBounds(lo, hi, tilt [3]float64) (dlo, dhi [3]float64) {
	xy, xz, yz := tilt[0], tilt[1], tilt[2]
	dlo[0] = lo[0] - math.Min(0, math.Min(xy, math.Min(xz, xy+xz)))
	dhi[0] = hi[0] - math.Max(0, math.Max(xy, math.Max(xz, xy+xz)))
	dlo[1] = lo[1] - math.Min(0, yz)
	dhi[1] = hi[1] - math.Max(0, yz)
	dlo[2] = lo[2]
	dhi[2] = hi[2]
	return dlo, dhi
}

//parseBoxBounds parses the 3 numeric lines following a "ITEM: BOX BOUNDS"
//marker into a canonical cell, plus the cartesian origin of the box (the
//lower bounds), which scaled coordinates are measured from. The tilt flag
//tokens "xy xz yz" are accepted anywhere among the header flags: both
//historical orderings (before and after the periodicity flags) are legal.
func (D *DumpObj) parseBoxBounds(flags []string) (*traj.UnitCell, [3]float64, error) {
	var origin [3]float64
	has := func(tok string) bool {
		for _, v := range flags {
			if v == tok {
				return true
			}
		}
		return false
	}
	triclinic := has("xy") && has("xz") && has("yz")
	expected := 2
	if triclinic {
		expected = 3
	}
	var lo, hi, tilt [3]float64
	for i := 0; i < 3; i++ {
		line, err := D.nextLine()
		if err != nil {
			return nil, origin, Error{boxHeaderPrefix + "unexpected end of input while reading box dimensions in LAMMPS format", D.filename, nil, true}
		}
		fields := strings.Fields(line)
		if len(fields) != expected {
			return nil, origin, Error{boxHeaderPrefix + fmt.Sprintf("incomplete box dimensions in LAMMPS format, expected %d but got %d", expected, len(fields)), D.filename, nil, true}
		}
		if lo[i], err = D.boxNumber(fields[0]); err != nil {
			return nil, origin, err
		}
		if hi[i], err = D.boxNumber(fields[1]); err != nil {
			return nil, origin, err
		}
		if triclinic {
			if tilt[i], err = D.boxNumber(fields[2]); err != nil {
				return nil, origin, err
			}
		}
	}
	if !triclinic {
		var lengths [3]float64
		for i := 0; i < 3; i++ {
			if hi[i] < lo[i] {
				return nil, origin, Error{boxHeaderPrefix + "invalid box bounds in LAMMPS format: high bound smaller than low bound", D.filename, nil, true}
			}
			lengths[i] = hi[i] - lo[i]
		}
		cell, err := traj.NewCell(lengths, [3]float64{90, 90, 90})
		if err != nil {
			return nil, origin, Error{boxHeaderPrefix + err.Error(), D.filename, nil, true}
		}
		return cell, lo, nil
	}
	dlo, dhi := depadBounds(lo, hi, tilt)
	for i := 0; i < 3; i++ {
		if dhi[i] < dlo[i] {
			return nil, origin, Error{boxHeaderPrefix + "invalid box bounds in LAMMPS format: high bound smaller than low bound", D.filename, nil, true}
		}
	}
	a := [3]float64{dhi[0] - dlo[0], 0, 0}
	b := [3]float64{tilt[0], dhi[1] - dlo[1], 0}
	c := [3]float64{tilt[1], tilt[2], dhi[2] - dlo[2]}
	cell, err := traj.CellFromVectors(a, b, c)
	if err != nil {
		return nil, origin, Error{boxHeaderPrefix + err.Error(), D.filename, nil, true}
	}
	return cell, dlo, nil
}

func (D *DumpObj) boxNumber(tok string) (float64, error) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, Error{boxHeaderPrefix + fmt.Sprintf("can not parse '%s' as a number", tok), D.filename, nil, true}
	}
	return f, nil
}

/*****The atom-columns parser*****/

//the position representations a step may declare, in resolution priority
//order: the first group whose three axis columns are all present wins and
//the others are ignored.
var posCandidates = []struct {
	kind int
	axes [3]string
}{
	{posUnwrapped, [3]string{"xu", "yu", "zu"}},
	{posScaledUnwrapped, [3]string{"xsu", "ysu", "zsu"}},
	{posWrapped, [3]string{"x", "y", "z"}},
	{posScaled, [3]string{"xs", "ys", "zs"}},
}

const (
	posNone = iota
	posWrapped
	posUnwrapped
	posScaled
	posScaledUnwrapped
)

//parseAtomsSection parses the exactly natoms data lines of an ATOMS
//section, according to the column schema discovered in its marker. Atoms
//are stored in first-seen order; the id column is only used for duplicate
//detection.
func (D *DumpObj) parseAtomsSection(names []string, natoms int, cell *traj.UnitCell, origin [3]float64) ([]*traj.Atom, *v3.Matrix, *v3.Matrix, error) {
	cols := make(map[string]int, len(names))
	for i, n := range names {
		cols[n] = i
	}
	groupIn := func(axes [3]string) bool {
		for _, a := range axes {
			if _, ok := cols[a]; !ok {
				return false
			}
		}
		return true
	}
	kind := posNone
	var axes [3]string
	for _, cand := range posCandidates {
		if groupIn(cand.axes) {
			kind = cand.kind
			axes = cand.axes
			break
		}
	}
	useImages := kind == posWrapped && groupIn([3]string{"ix", "iy", "iz"})
	_, hasVx := cols["vx"]
	_, hasVy := cols["vy"]
	_, hasVz := cols["vz"]
	hasVel := hasVx || hasVy || hasVz
	var coords, vel *v3.Matrix
	if natoms > 0 {
		coords = v3.Zeros(natoms)
		if hasVel {
			vel = v3.Zeros(natoms)
		}
	}
	H := cell.Matrix()
	atoms := make([]*traj.Atom, 0, natoms)
	seen := make(map[int]bool, natoms)
	for i := 0; i < natoms; i++ {
		line, err := D.nextLine()
		if err != nil {
			return nil, nil, nil, Error{fmt.Sprintf("unexpected end of input in LAMMPS format: expected %d atom lines, got %d", natoms, i), D.filename, nil, true}
		}
		fields := strings.Fields(line)
		if len(fields) != len(names) {
			return nil, nil, nil, Error{fmt.Sprintf("LAMMPS line has wrong number of fields: expected %d got %d", len(names), len(fields)), D.filename, nil, true}
		}
		at := new(traj.Atom)
		if j, ok := cols["id"]; ok {
			id, err := strconv.Atoi(fields[j])
			if err != nil {
				return nil, nil, nil, Error{fmt.Sprintf("can not parse '%s' as an atom id in LAMMPS format", fields[j]), D.filename, nil, true}
			}
			if seen[id] {
				return nil, nil, nil, Error{fmt.Sprintf("found atoms with the same ID in LAMMPS format: %d is already present", id), D.filename, nil, true}
			}
			seen[id] = true
			at.Id = id
		}
		if j, ok := cols["type"]; ok {
			at.Type = fields[j]
		}
		if j, ok := cols["element"]; ok {
			at.Symbol = fields[j]
			if at.Type == "" {
				at.Type = at.Symbol
			}
		}
		if j, ok := cols["mass"]; ok {
			if at.Mass, err = D.atomNumber(fields[j], "mass"); err != nil {
				return nil, nil, nil, err
			}
		} else if at.Symbol != "" {
			if m, ok := traj.MassFromSymbol(at.Symbol); ok {
				at.Mass = m
			}
		}
		j, ok := cols["q"]
		if !ok {
			j, ok = cols["charge"]
		}
		if ok {
			if at.Charge, err = D.atomNumber(fields[j], "charge"); err != nil {
				return nil, nil, nil, err
			}
		}
		var p [3]float64
		if kind != posNone {
			for k := 0; k < 3; k++ {
				if p[k], err = D.atomNumber(fields[cols[axes[k]]], "coordinate"); err != nil {
					return nil, nil, nil, err
				}
			}
		}
		switch kind {
		case posScaled, posScaledUnwrapped:
			s := p
			for k := 0; k < 3; k++ {
				p[k] = origin[k] + s[0]*H.At(0, k) + s[1]*H.At(1, k) + s[2]*H.At(2, k)
			}
		case posWrapped:
			if useImages {
				var img [3]float64
				for k, name := range [3]string{"ix", "iy", "iz"} {
					n, err := strconv.Atoi(fields[cols[name]])
					if err != nil {
						return nil, nil, nil, Error{fmt.Sprintf("can not parse '%s' as an image flag in LAMMPS format", fields[cols[name]]), D.filename, nil, true}
					}
					img[k] = float64(n)
				}
				for k := 0; k < 3; k++ {
					p[k] += img[0]*H.At(0, k) + img[1]*H.At(1, k) + img[2]*H.At(2, k)
				}
			}
		}
		for k := 0; k < 3; k++ {
			coords.Set(i, k, p[k])
		}
		if hasVel {
			for k, name := range [3]string{"vx", "vy", "vz"} {
				j, ok := cols[name]
				if !ok {
					continue //missing axes stay at 0
				}
				v, err := D.atomNumber(fields[j], "velocity")
				if err != nil {
					return nil, nil, nil, err
				}
				vel.Set(i, k, v)
			}
		}
		atoms = append(atoms, at)
	}
	return atoms, coords, vel, nil
}

func (D *DumpObj) atomNumber(tok, what string) (float64, error) {
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, Error{fmt.Sprintf("can not parse '%s' as a %s in LAMMPS format", tok, what), D.filename, nil, true}
	}
	return f, nil
}

//Errors

//errDecorate is a helper function that asserts that the error
//implements traj.Error and decorates the error with the caller's name before returning it.
//if used with a non-traj.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(traj.Error)
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for LAMMPS dump trajectory errors. It fulfills traj.Error and traj.TrajError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("LAMMPS dump file %s error: %s", err.filename, err.message)
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

//FileName returns the file to which the failing trajectory was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "lammps") associated to the error
func (err Error) Format() string { return "lammps" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIni      = "Traj object uninitialized to read"
	ReadError      = "Error reading frame"
	UnableToOpen   = "Unable to open file"
	WrongFormat    = "Wrong format in the LAMMPS dump file or frame"
	NotEnoughSpace = "Not enough space in passed blocks"
	NilFrame       = "Given nil frame"
	EOF            = "EOF"
)

//lastFrameError implements traj.LastFrameError
type lastFrameError struct {
	deco     []string
	fileName string
}

//lastFrameError does nothing
func (E lastFrameError) NormalLastFrameTermination() {}

func (E lastFrameError) FileName() string { return E.fileName }

func (E lastFrameError) Error() string { return "EOF" }

func (E lastFrameError) Critical() bool { return false }

func (E lastFrameError) Format() string { return "lammps" }

func (E lastFrameError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastFrameError(filename string, caller string) *lastFrameError {
	e := new(lastFrameError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
