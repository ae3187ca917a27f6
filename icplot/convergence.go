/*
 * convergence.go, part of goic.
 *
 * Copyright 2024 Raul Mera rauldotmeraatusachdotcl
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
 */

// Package icplot draws the convergence of back-transformations from internal
// to cartesian coordinates.
package icplot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	ic "github.com/rmera/goic"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// smallest value that can be drawn in the logarithmic axis.
const floor = 1e-16

// Size of the saved plots.
var (
	Width  = 5 * vg.Inch
	Height = 4 * vg.Inch
)

// ConvergencePlot returns a plot of the RMS of the cartesian step against
// the cycle number for res, in a logarithmic scale, with the convergence threshold
// as a horizontal line.
func ConvergencePlot(res *ic.Result, title string) (*plot.Plot, error) {
	if res == nil || len(res.RMS) == 0 {
		return nil, fmt.Errorf("icplot: no cycles to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Cycle"
	p.Y.Label.Text = "RMS(Δx) / bohr"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	pts := make(plotter.XYs, len(res.RMS))
	for i, v := range res.RMS {
		pts[i].X = float64(i + 1)
		pts[i].Y = math.Max(v, floor)
	}
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return nil, err
	}
	line.Color = color.RGBA{B: 200, A: 255}
	points.GlyphStyle.Color = line.Color
	p.Add(line, points)
	p.Legend.Add("RMS", line, points)

	if res.Threshold > 0 {
		th := plotter.NewFunction(func(float64) float64 { return res.Threshold })
		th.Color = color.RGBA{R: 220, A: 255}
		th.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(th)
		p.Legend.Add("threshold", th)
		p.Y.Min = math.Min(p.Y.Min, res.Threshold/10)
		p.Y.Max = math.Max(p.Y.Max, res.Threshold*10)
	}
	p.X.Min = 1
	p.X.Max = math.Max(float64(len(res.RMS)), 2)
	return p, nil
}

// WriteConvergence writes the plot for res to w, in the given
// format ("png", "svg", "pdf"...).
func WriteConvergence(w io.Writer, res *ic.Result, title, format string) error {
	p, err := ConvergencePlot(res, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Width, Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveConvergence saves the plot for res to filename. The format is
// taken from the extension.
func SaveConvergence(res *ic.Result, title, filename string) error {
	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext == "" {
		return fmt.Errorf("icplot: can't get format from file name %q", filename)
	}
	p, err := ConvergencePlot(res, title)
	if err != nil {
		return err
	}
	return p.Save(Width, Height, filename)
}
