/*
 * msd.go, part of gotraj.
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

//Package trajstat implements simple statistical analyses over
//trajectories: mean square displacements, self-diffusion coefficients and
//cell volumes, with plotting helpers for the resulting time series.
package trajstat

import (
	"fmt"

	traj "github.com/rmera/gotraj"
	v3 "github.com/rmera/gotraj/v3"
	"gonum.org/v1/gonum/stat"
)

//MSD returns the mean square displacement of the trajectory as a function
//of the lag, in frames, averaged over all atoms and all time origins.
//natoms is the number of atoms per frame, and skip the number of frames
//to discard between used ones (0 uses every frame). The trajectory should
//contain unwrapped coordinates, otherwise jumps across the periodic
//boundaries will contaminate the result.
func MSD(t traj.Traj, natoms, skip int) ([]float64, error) {
	if natoms <= 0 {
		return nil, fmt.Errorf("trajstat: MSD needs a positive number of atoms, got %d", natoms)
	}
	if skip < 0 {
		skip = 0
	}
	var snaps []*v3.Matrix
	coord := v3.Zeros(natoms)
	for i := 0; ; i++ {
		err := t.Next(coord)
		if err != nil {
			if _, ok := err.(traj.LastFrameError); ok {
				break
			}
			return nil, err
		}
		if i%(skip+1) != 0 {
			continue
		}
		kept := v3.Zeros(natoms)
		kept.Copy(coord)
		snaps = append(snaps, kept)
	}
	if len(snaps) < 2 {
		return nil, fmt.Errorf("trajstat: MSD needs at least 2 frames, got %d", len(snaps))
	}
	msd := make([]float64, len(snaps))
	for lag := 1; lag < len(snaps); lag++ {
		var acc float64
		var count int
		for origin := 0; origin+lag < len(snaps); origin++ {
			a := snaps[origin]
			b := snaps[origin+lag]
			for i := 0; i < natoms; i++ {
				for j := 0; j < 3; j++ {
					d := b.At(i, j) - a.At(i, j)
					acc += d * d
				}
				count++
			}
		}
		msd[lag] = acc / float64(count)
	}
	return msd, nil
}

//Diffusion fits the Einstein relation msd = 6Dt to the given mean square
//displacement curve, where dt is the time between consecutive points of
//the curve, and returns the self-diffusion coefficient D together with the
//R-squared of the fit. The zero-lag point is excluded from the fit.
func Diffusion(msd []float64, dt float64) (float64, float64, error) {
	if len(msd) < 3 {
		return 0, 0, fmt.Errorf("trajstat: at least 3 points are needed to fit a diffusion coefficient, got %d", len(msd))
	}
	if dt <= 0 {
		return 0, 0, fmt.Errorf("trajstat: the time between points must be positive, got %f", dt)
	}
	xs := make([]float64, 0, len(msd)-1)
	ys := make([]float64, 0, len(msd)-1)
	for i := 1; i < len(msd); i++ {
		xs = append(xs, float64(i)*dt)
		ys = append(ys, msd[i])
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	r2 := stat.RSquared(xs, ys, nil, alpha, beta)
	return beta / 6, r2, nil
}

//Volumes returns the cell volume of each given frame.
func Volumes(frames []*traj.Frame) []float64 {
	vols := make([]float64, len(frames))
	for i, f := range frames {
		if f.Cell != nil {
			vols[i] = f.Cell.Volume()
		}
	}
	return vols
}
