// Copyright 2026 The TempSensor Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tempchart renders a recorded temperature series to an image.Image,
// ready for a dashboard, an e-paper panel or a PNG on disk.
package tempchart

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"periph.io/x/conn/v3/physic"
)

// Sample is one temperature measurement.
type Sample struct {
	Time        time.Time
	Temperature physic.Temperature
}

// Opts represents the options available for rendering.
type Opts struct {
	// Width and Height of the produced image in pixels.
	Width, Height int
	// FontTTF optionally holds TTF bytes for the axis labels. The fixed
	// basicfont face is used when empty.
	FontTTF []byte
	// FontSize in points, only used with FontTTF. Default is 13.
	FontSize float64

	_ struct{}
}

// DefaultOpts is the recommended rendering configuration.
var DefaultOpts = Opts{Width: 400, Height: 240}

const (
	marginLeft   = 48
	marginRight  = 8
	marginTop    = 8
	marginBottom = 20
)

// Render draws the sample series as a line chart. At least two samples are
// required. Samples are drawn in slice order; the horizontal axis is scaled
// by timestamp, or by index when all timestamps coincide.
func Render(samples []Sample, opts *Opts) (image.Image, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if len(samples) < 2 {
		return nil, errors.New("tempchart: need at least two samples")
	}
	w, h := opts.Width, opts.Height
	if w == 0 {
		w = DefaultOpts.Width
	}
	if h == 0 {
		h = DefaultOpts.Height
	}
	if w <= marginLeft+marginRight || h <= marginTop+marginBottom {
		return nil, fmt.Errorf("tempchart: canvas %dx%d is too small", w, h)
	}
	face, err := labelFace(opts)
	if err != nil {
		return nil, err
	}

	minT, maxT := samples[0].Temperature, samples[0].Temperature
	for _, s := range samples[1:] {
		if s.Temperature < minT {
			minT = s.Temperature
		}
		if s.Temperature > maxT {
			maxT = s.Temperature
		}
	}
	if minT == maxT {
		// A flat series still needs a non-zero vertical span.
		minT -= physic.Kelvin
		maxT += physic.Kelvin
	}
	t0 := samples[0].Time
	tSpan := samples[len(samples)-1].Time.Sub(t0)

	plotW := float64(w - marginLeft - marginRight)
	plotH := float64(h - marginTop - marginBottom)
	x := func(i int) float64 {
		if tSpan <= 0 {
			return float64(marginLeft) + plotW*float64(i)/float64(len(samples)-1)
		}
		return float64(marginLeft) + plotW*float64(samples[i].Time.Sub(t0))/float64(tSpan)
	}
	y := func(t physic.Temperature) float64 {
		f := float64(t-minT) / float64(maxT-minT)
		return float64(marginTop) + plotH*(1-f)
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face)

	// Frame and horizontal grid with labels at the range ends.
	dc.SetRGB(0.75, 0.75, 0.75)
	dc.SetLineWidth(1)
	dc.DrawRectangle(float64(marginLeft), float64(marginTop), plotW, plotH)
	dc.Stroke()
	dc.DrawLine(float64(marginLeft), y((minT+maxT)/2), float64(w-marginRight), y((minT+maxT)/2))
	dc.Stroke()

	dc.SetRGB(0.2, 0.2, 0.2)
	dc.DrawStringAnchored(fmt.Sprintf("%.1f", maxT.Celsius()), float64(marginLeft)-4, y(maxT), 1, 0.4)
	dc.DrawStringAnchored(fmt.Sprintf("%.1f", minT.Celsius()), float64(marginLeft)-4, y(minT), 1, 0.4)
	dc.DrawStringAnchored("°C", float64(marginLeft)-4, y((minT+maxT)/2), 1, 0.4)
	if tSpan > 0 {
		dc.DrawStringAnchored(tSpan.Round(time.Second).String(), float64(w-marginRight), float64(h-marginBottom)+12, 1, 0.4)
	}

	// The series itself.
	dc.SetRGB(0.8, 0.1, 0.1)
	dc.SetLineWidth(1.5)
	dc.MoveTo(x(0), y(samples[0].Temperature))
	for i := 1; i < len(samples); i++ {
		dc.LineTo(x(i), y(samples[i].Temperature))
	}
	dc.Stroke()

	return dc.Image(), nil
}

func labelFace(opts *Opts) (font.Face, error) {
	if len(opts.FontTTF) == 0 {
		return basicfont.Face7x13, nil
	}
	f, err := truetype.Parse(opts.FontTTF)
	if err != nil {
		return nil, fmt.Errorf("tempchart: %v", err)
	}
	size := opts.FontSize
	if size <= 0 {
		size = 13
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}
