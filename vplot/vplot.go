// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package vplot renders the membrane potential of a wb.Series as a line plot,
// with time (msec) on the x axis and V (mV) on the y axis.
package vplot

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/emer/wbneuron/wb"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ErrEmpty is returned when plotting a series without samples
var ErrEmpty = errors.New("vplot: series has no samples")

// Params are the plot appearance parameters
type Params struct {
	Title     string  `desc:"plot title -- none if empty"`
	XLabel    string  `def:"time [ms]" desc:"x axis label"`
	YLabel    string  `def:"V [mV]" desc:"y axis label"`
	Width     float64 `def:"8" min:"1" desc:"width of saved image, in inches"`
	Height    float64 `def:"6" min:"1" desc:"height of saved image, in inches"`
	LineWidth float64 `def:"2" min:"0" desc:"width of the voltage trace, in points"`
}

func (vp *Params) Defaults() {
	vp.XLabel = "time [ms]"
	vp.YLabel = "V [mV]"
	vp.Width = 8
	vp.Height = 6
	vp.LineWidth = 2
}

// Plot returns a new plot of the voltage trace in sr
func (vp *Params) Plot(sr *wb.Series) (*plot.Plot, error) {
	if sr.Len() == 0 {
		return nil, ErrEmpty
	}
	p := plot.New()
	p.Title.Text = vp.Title
	p.X.Label.Text = vp.XLabel
	p.Y.Label.Text = vp.YLabel

	ln, err := plotter.NewLine(sr)
	if err != nil {
		return nil, fmt.Errorf("vplot: voltage trace: %w", err)
	}
	ln.LineStyle.Width = vg.Points(vp.LineWidth)
	ln.LineStyle.Color = color.Black
	p.Add(ln)
	return p, nil
}

// Save saves the plot of sr to fname, in the format given by its
// extension (.png, .svg, .pdf, .eps, .jpg, .tif).
func (vp *Params) Save(sr *wb.Series, fname string) error {
	p, err := vp.Plot(sr)
	if err != nil {
		return err
	}
	if err := p.Save(vg.Length(vp.Width)*vg.Inch, vg.Length(vp.Height)*vg.Inch, fname); err != nil {
		return fmt.Errorf("vplot: saving %s: %w", fname, err)
	}
	return nil
}
