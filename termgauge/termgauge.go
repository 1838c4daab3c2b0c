// Copyright 2026 The TempSensor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package termgauge renders temperature readings as a colored horizontal bar
// on an ANSI terminal (stdout).
//
// Useful while bringing up a sensor at the bench: pipe readings in and watch
// the bar move without any display hardware attached.
package termgauge

import (
	"bytes"
	"fmt"
	"image/color"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
)

// Opts represents the options available for the gauge.
type Opts struct {
	// Width is the bar length in character cells. Default is 40.
	Width int
	// Min and Max bound the displayed range. They default to the -55°C to
	// +125°C operating range of common I²C temperature sensors.
	Min, Max physic.Temperature
	// Palette used for terminal color quantization.
	Palette *ansi256.Palette
	// Writer overrides the default colorable stdout. Mostly for tests.
	Writer io.Writer

	_ struct{}
}

// Dev is a temperature gauge that draws to the console.
type Dev struct {
	w        io.Writer
	width    int
	min, max physic.Temperature
	palette  ansi256.Palette

	buf bytes.Buffer
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	if opts == nil {
		opts = &Opts{}
	}
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	width := opts.Width
	if width <= 0 {
		width = 40
	}
	min, max := opts.Min, opts.Max
	if min == 0 && max == 0 {
		min = physic.ZeroCelsius - 55*physic.Kelvin
		max = physic.ZeroCelsius + 125*physic.Kelvin
	}
	return &Dev{
		w:       w,
		width:   width,
		min:     min,
		max:     max,
		palette: *p,
	}
}

func (d *Dev) String() string {
	return "TermGauge"
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the shell is not left colored.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// Update redraws the gauge in place for the given temperature. Values outside
// the configured range pin the bar to its ends.
func (d *Dev) Update(t physic.Temperature) error {
	// This code is designed to minimize the amount of memory allocated per call.
	d.buf.Reset()
	_, _ = d.buf.WriteString("\r\033[0m")
	filled := d.cells(t)
	for i := 0; i < d.width; i++ {
		_, _ = io.WriteString(&d.buf, d.palette.Block(d.cellColor(i, filled)))
	}
	fmt.Fprintf(&d.buf, "\033[0m %7.2f°C", t.Celsius())
	_, err := d.buf.WriteTo(d.w)
	return err
}

// cells returns how many cells of the bar are lit for t.
func (d *Dev) cells(t physic.Temperature) int {
	if t <= d.min {
		return 1
	}
	if t >= d.max {
		return d.width
	}
	n := int(int64(t-d.min) * int64(d.width) / int64(d.max-d.min))
	if n < 1 {
		n = 1
	}
	return n
}

// cellColor grades lit cells from blue at the cold end to red at the hot end;
// unlit cells are dim gray.
func (d *Dev) cellColor(i, filled int) color.NRGBA {
	if i >= filled {
		return color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	}
	f := 0.0
	if d.width > 1 {
		f = float64(i) / float64(d.width-1)
	}
	return color.NRGBA{
		R: byte(255 * f),
		G: 32,
		B: byte(255 * (1 - f)),
		A: 255,
	}
}

var _ conn.Resource = &Dev{}
