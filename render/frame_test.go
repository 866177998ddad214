// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"image/color"
	"math"
	"path/filepath"
	"testing"

	"github.com/gogpu/zoom"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

// checker returns a w x h image with a red top-left pixel and blue elsewhere.
func checker(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, blue)
		}
	}
	img.SetRGBA(0, 0, red)
	return img
}

func TestFrame_Translate(t *testing.T) {
	src := checker(4, 4)
	dst := NewCanvas(8, 8)

	err := Frame(dst, src, zoom.Translate(2, 1),
		WithInterp(InterpNearest),
		WithBackground(color.Black))
	if err != nil {
		t.Fatalf("Frame error: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"moved red pixel", 2, 1, red},
		{"moved blue pixel", 5, 4, blue},
		{"background left", 1, 1, color.RGBA{A: 255}},
		{"background below", 2, 5, color.RGBA{A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dst.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("dst(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFrame_Scale(t *testing.T) {
	src := checker(2, 2)
	dst := NewCanvas(4, 4)

	if err := Frame(dst, src, zoom.Scale(2, 2), WithInterp(InterpNearest)); err != nil {
		t.Fatalf("Frame error: %v", err)
	}
	for _, p := range []image.Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}} {
		if got := dst.RGBAAt(p.X, p.Y); got != red {
			t.Errorf("dst%v = %v, want red", p, got)
		}
	}
	if got := dst.RGBAAt(3, 3); got != blue {
		t.Errorf("dst(3, 3) = %v, want blue", got)
	}
}

func TestFrame_NilBackgroundKeepsDestination(t *testing.T) {
	src := checker(1, 1)
	dst := NewCanvas(3, 1)
	green := color.RGBA{G: 255, A: 255}
	dst.SetRGBA(2, 0, green)

	if err := Frame(dst, src, zoom.Identity(), WithBackground(nil), WithInterp(InterpNearest)); err != nil {
		t.Fatal(err)
	}
	if got := dst.RGBAAt(2, 0); got != green {
		t.Errorf("dst(2, 0) = %v, want untouched green", got)
	}
}

func TestFrame_Rejects(t *testing.T) {
	src := checker(2, 2)
	dst := NewCanvas(2, 2)

	if err := Frame(dst, src, zoom.Scale(0, 1)); !errors.Is(err, ErrSingular) {
		t.Errorf("singular Frame error = %v, want ErrSingular", err)
	}
	if err := Frame(dst, src, zoom.Scale(math.Inf(1), 1)); err == nil {
		t.Error("non-finite Frame returned nil error")
	}
}

func TestInterp(t *testing.T) {
	for _, i := range []Interp{InterpNearest, InterpApprox, InterpBilinear, InterpCatmullRom} {
		got, err := ParseInterp(i.String())
		if err != nil {
			t.Fatalf("ParseInterp(%q) error: %v", i, err)
		}
		if got != i {
			t.Errorf("ParseInterp(%q) = %v, want %v", i, got, i)
		}
		if i.transformer() == nil {
			t.Errorf("%v has no transformer", i)
		}
	}
	if got, _ := ParseInterp(" CatmullRom "); got != InterpCatmullRom {
		t.Errorf("ParseInterp is not case-insensitive: %v", got)
	}
	if _, err := ParseInterp("lanczos"); !errors.Is(err, ErrUnknownInterp) {
		t.Errorf("ParseInterp(lanczos) error = %v, want ErrUnknownInterp", err)
	}
	if got := Interp(42).String(); got != "Interp(42)" {
		t.Errorf("unknown Interp String = %q", got)
	}
}

func TestSavePNG_LoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	src := checker(3, 2)

	if err := SavePNG(path, src); err != nil {
		t.Fatalf("SavePNG error: %v", err)
	}
	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage error: %v", err)
	}
	if img.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", img.Bounds(), src.Bounds())
	}
	r, g, b, a := img.At(0, 0).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("pixel (0, 0) = %d %d %d %d, want opaque red", r, g, b, a)
	}
}

func TestLoadImage_Missing(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("LoadImage of a missing file returned nil error")
	}
}
