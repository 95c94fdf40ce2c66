/*
 * plot.go, part of gotraj.
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

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//TimeSeriesPlot plots the given values against time, with dt the time
//between consecutive values, and saves the plot to the named file. The
//image format is taken from the file extension (png, pdf, svg, etc, as
//supported by the plotting library).
func TimeSeriesPlot(vals []float64, dt float64, title, xlabel, ylabel, filename string) error {
	if len(vals) == 0 {
		return fmt.Errorf("trajstat: nothing to plot")
	}
	if dt <= 0 {
		dt = 1
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	pts := make(plotter.XYs, len(vals))
	for i, v := range vals {
		pts[i].X = float64(i) * dt
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, filename)
}
