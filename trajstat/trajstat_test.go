/*
 * trajstat_test.go, part of gotraj.
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

package trajstat

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	traj "github.com/rmera/gotraj"
	"github.com/rmera/gotraj/lammps"
)

//one atom moving 1 length unit per step along x
func linearDump(steps int) string {
	b := new(strings.Builder)
	for i := 0; i < steps; i++ {
		fmt.Fprintf(b, "ITEM: TIMESTEP\n%d\n", i)
		fmt.Fprintf(b, "ITEM: NUMBER OF ATOMS\n1\nITEM: BOX BOUNDS pp pp pp\n0 100\n0 100\n0 100\n")
		fmt.Fprintf(b, "ITEM: ATOMS id type xu yu zu\n1 1 %d 0 0\n", i)
	}
	return b.String()
}

func TestMSD(Te *testing.T) {
	D, err := lammps.NewFromBytes([]byte(linearDump(5)))
	if err != nil {
		Te.Fatal(err)
	}
	defer D.Close()
	msd, err := MSD(D, 1, 0)
	if err != nil {
		Te.Fatal(err)
	}
	if len(msd) != 5 {
		Te.Fatalf("expected 5 points, got %d", len(msd))
	}
	//ballistic motion: msd(k) = k*k, for every time origin
	for k := 0; k < 5; k++ {
		want := float64(k * k)
		if math.Abs(msd[k]-want) > 1e-9 {
			Te.Errorf("lag %d: expected %f got %f", k, want, msd[k])
		}
	}
}

func TestDiffusion(Te *testing.T) {
	//a perfect Einstein line, msd = 6*D*t with D=1 and dt=0.5
	msd := make([]float64, 6)
	for i := range msd {
		msd[i] = 6 * float64(i) * 0.5
	}
	d, r2, err := Diffusion(msd, 0.5)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(d-1) > 1e-9 {
		Te.Errorf("expected D=1, got %f", d)
	}
	if math.Abs(r2-1) > 1e-9 {
		Te.Errorf("expected a perfect fit, got R2=%f", r2)
	}
	if _, _, err = Diffusion(msd[:2], 0.5); err == nil {
		Te.Error("expected an error for a too-short curve")
	}
}

func TestVolumes(Te *testing.T) {
	cell, err := traj.NewCell([3]float64{10, 20, 30}, [3]float64{90, 90, 90})
	if err != nil {
		Te.Fatal(err)
	}
	f := traj.NewFrame(0)
	f.Cell = cell
	vols := Volumes([]*traj.Frame{f, traj.NewFrame(0)})
	if math.Abs(vols[0]-6000) > 1e-9 {
		Te.Errorf("expected a volume of 6000, got %f", vols[0])
	}
	if vols[1] != 0 {
		Te.Errorf("expected a zero volume for an infinite cell, got %f", vols[1])
	}
}

func TestTimeSeriesPlot(Te *testing.T) {
	fname := filepath.Join(Te.TempDir(), "msd.png")
	vals := []float64{0, 1, 4, 9, 16}
	if err := TimeSeriesPlot(vals, 0.5, "MSD", "t", "msd", fname); err != nil {
		Te.Fatal(err)
	}
	info, err := os.Stat(fname)
	if err != nil {
		Te.Fatal(err)
	}
	if info.Size() == 0 {
		Te.Error("the plot file is empty")
	}
}
