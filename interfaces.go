/*
 * interfaces.go, part of gotraj.
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

import v3 "github.com/rmera/gotraj/v3"

// Traj is the interface for any trajectory object. Every format package in
// the library implements it, so analyses can be carried out exactly the same
// over any supported format.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//reads the next frame and fills the matrix with its coordinates, or
	//discards the frame if the matrix is nil. It can also fill the
	//(optional) box with the box vectors, if present in the frame.
	Next(output *v3.Matrix, box ...[]float64) error

	//Returns the number of atoms per frame
	Len() int
}

// ConcTraj is an interface for a trajectory that can be read concurrently.
type ConcTraj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	/*NextConc takes a slice of matrices and reads as many frames as
	elements the list has from the trajectory. The frames are discarded
	if the corresponding element of the slice is nil. The function returns
	a slice of channels through each of which a *v3.Matrix will be
	transmitted*/
	NextConc(frames []*v3.Matrix) ([]chan *v3.Matrix, error)

	//Returns the number of atoms per frame
	Len() int
}

// FrameTraj is a trajectory that can return whole frames, including the
// unit cell, per-atom data and frame-level properties, not only the
// coordinates. Seekable formats additionally allow random access by step
// ordinal.
type FrameTraj interface {
	Traj

	//reads the next frame of the trajectory
	ReadNext() (*Frame, error)

	//reads the frame at the given 0-based step ordinal
	ReadStep(n int) (*Frame, error)

	//the total number of steps in the trajectory
	NSteps() (int, error)
}

//Errors

//This error predates the "wrapping" error system of Go (i.e. the "%w" directive and the errors package). We should avoid
//using the Decorate method and/or make it use the "%w" directive internally.

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //This is the new thing for errors. It allows you to add information when you pass it up. Each call also returns the "decoration" slice of strins resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
	//The decorate slice should contain a list of functions in the calling stack, plus, for each function any relevant information, or nothing. If information is to be added to an element of the slice, it should be in this format: "FunctionName: Extra info"
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so  they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's

}
