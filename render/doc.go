// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render applies a zoom view transform to raster images.
//
// A host UI usually hands the transform to its own compositor (for example as a
// CSS matrix() value). This package is the headless equivalent: it draws a
// source image into a destination through the transform using the resampling
// kernels of golang.org/x/image/draw.
//
// # Usage
//
//	src, _ := render.LoadImage("photo.jpg")
//	dst := render.NewCanvas(800, 600)
//	if err := render.Frame(dst, src, viewer.Transform(), render.WithInterp(render.InterpBilinear)); err != nil {
//	    return err
//	}
//	_ = render.SavePNG("frame.png", dst)
//
// # Interpolation
//
//   - InterpNearest: closest pixel, blocky when zoomed in
//   - InterpApprox: fast approximate bilinear
//   - InterpBilinear: bilinear
//   - InterpCatmullRom: bicubic Catmull-Rom, highest quality and slowest
package render
