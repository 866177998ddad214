// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"strings"

	"github.com/gogpu/zoom"
	xdraw "golang.org/x/image/draw"
)

// ErrSingular is returned when the transform collapses the image onto a line
// or a point and cannot be inverted for sampling.
var ErrSingular = errors.New("render: singular transform")

// ErrUnknownInterp is returned by ParseInterp for an unrecognized name.
var ErrUnknownInterp = errors.New("render: unknown interpolation")

// Interp selects the resampling kernel.
type Interp int

// Interpolation modes.
const (
	// InterpBilinear is the default.
	InterpBilinear Interp = iota
	InterpNearest
	InterpApprox
	InterpCatmullRom
)

var interpNames = map[Interp]string{
	InterpBilinear:   "bilinear",
	InterpNearest:    "nearest",
	InterpApprox:     "approx",
	InterpCatmullRom: "catmullrom",
}

// String returns the mode name accepted by ParseInterp.
func (i Interp) String() string {
	if s, ok := interpNames[i]; ok {
		return s
	}
	return fmt.Sprintf("Interp(%d)", int(i))
}

// ParseInterp maps a name such as "nearest" or "catmullrom" to an Interp.
func ParseInterp(name string) (Interp, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, v := range interpNames {
		if v == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownInterp, name)
}

func (i Interp) transformer() xdraw.Transformer {
	switch i {
	case InterpNearest:
		return xdraw.NearestNeighbor
	case InterpApprox:
		return xdraw.ApproxBiLinear
	case InterpCatmullRom:
		return xdraw.CatmullRom
	default:
		return xdraw.BiLinear
	}
}

// NewCanvas creates a transparent RGBA destination of the given size.
func NewCanvas(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// Frame clears dst to the background colour and draws src through p.
//
// p maps source pixel coordinates to destination pixel coordinates, the same
// convention as a CSS transform applied to an element whose origin is the
// top-left corner.
func Frame(dst xdraw.Image, src image.Image, p zoom.Params, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !p.IsFinite() {
		return fmt.Errorf("render: non-finite transform %v", p)
	}
	if math.Abs(p.Det()) < 1e-12 {
		return fmt.Errorf("%w: %v", ErrSingular, p)
	}

	if o.background != nil {
		xdraw.Draw(dst, dst.Bounds(), image.NewUniform(o.background), image.Point{}, xdraw.Src)
	}

	l := zoom.Logger()
	if l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("render: frame",
			"transform", p.CSS(),
			"interp", o.interp.String(),
			"src", src.Bounds().String(),
			"dst", dst.Bounds().String())
	}

	o.interp.transformer().Transform(dst, p.Aff3(), src, src.Bounds(), xdraw.Over, nil)
	return nil
}

// options holds Frame configuration.
type options struct {
	interp     Interp
	background color.Color
}

func defaultOptions() options {
	return options{
		interp:     InterpBilinear,
		background: color.Transparent,
	}
}

// Option configures Frame.
type Option func(*options)

// WithInterp selects the resampling kernel.
func WithInterp(i Interp) Option {
	return func(o *options) {
		o.interp = i
	}
}

// WithBackground sets the colour dst is cleared to before drawing.
// A nil colour leaves dst untouched so frames can be layered.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}
