/*
 * plot.go, part of gaussian-wranger.
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
 */

// Package chemplot turns tabulated results from the gaussian-wranger
// tools into figures, currently free-energy profiles along a reaction
// or simulation coordinate.
package chemplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series is one labeled curve: parallel X and Y values.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// xys converts a Series to the plotter representation, checking that
// the value slices are parallel.
func (s *Series) xys() (plotter.XYs, error) {
	if len(s.X) != len(s.Y) {
		return nil, fmt.Errorf("chemplot: series %q has %d x values but %d y values", s.Name, len(s.X), len(s.Y))
	}
	pts := make(plotter.XYs, len(s.X))
	for i := range s.X {
		pts[i].X = s.X[i]
		pts[i].Y = s.Y[i]
	}
	return pts, nil
}

// DeltaG draws every series as connected points on one canvas and
// saves it to filename; the format follows the file extension (.png,
// .pdf, .svg...). Typical use is relative free energies (kcal/mol)
// against a reaction coordinate or temperature.
func DeltaG(series []Series, title, xlabel, ylabel, filename string) error {
	if len(series) == 0 {
		return fmt.Errorf("chemplot: nothing to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	args := make([]interface{}, 0, 2*len(series))
	for i := range series {
		pts, err := series[i].xys()
		if err != nil {
			return err
		}
		args = append(args, series[i].Name, pts)
	}
	if err := plotutil.AddLinePoints(p, args...); err != nil {
		return fmt.Errorf("chemplot: %w", err)
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("chemplot: %w", err)
	}
	return nil
}
