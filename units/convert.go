// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"github.com/tiemvanderdeure/makie/math32"
)

// The conversion graph. Pixel is the hub: DPI relates every physical
// unit to device pixels, and only the pixel/scene edge needs the
// display's screen/world transform. Pairs with no method here have no
// defined conversion and do not compile.

// ToPx converts physical millimeters to device pixels,
// at the context's current horizontal DPI.
func (v Millimeter) ToPx(ctx Context) (Pixel, error) {
	dpi, err := ctx.DPI()
	if err != nil {
		return 0, err
	}
	return Pixel(dpi.X / MmPerInch * float32(v)), nil
}

// ToMm converts device pixels to physical millimeters,
// at the context's current horizontal DPI.
func (v Pixel) ToMm(ctx Context) (Millimeter, error) {
	dpi, err := ctx.DPI()
	if err != nil {
		return 0, err
	}
	return Millimeter(MmPerInch / dpi.X * float32(v)), nil
}

// ToPx converts density-independent pixels to device pixels,
// at the context's current horizontal DPI.
func (v Dip) ToPx(ctx Context) (Pixel, error) {
	dpi, err := ctx.DPI()
	if err != nil {
		return 0, err
	}
	return Pixel(dpi.X * (float32(v) * DipInInch)), nil
}

// ToMm converts density-independent pixels to physical millimeters.
// This is a pure scalar conversion: a dip has a fixed physical size,
// so no display state is involved.
func (v Dip) ToMm() Millimeter {
	return Millimeter(float32(v) * DipInMm)
}

// ToScene converts density-independent pixels to scene units,
// composed through millimeters.
func (v Dip) ToScene(ctx Context) (Scene, error) {
	return v.ToMm().ToScene(ctx)
}

// ToScene converts physical millimeters to scene units,
// composed through device pixels.
func (v Millimeter) ToScene(ctx Context) (Scene, error) {
	px, err := v.ToPx(ctx)
	if err != nil {
		return 0, err
	}
	return px.ToScene(ctx)
}

// ToScene converts a device pixel distance to the scene-space
// displacement it induces along the horizontal axis. It measures a
// displacement, not an absolute position: the pixel offset is taken
// from the viewport origin, mapped into world coordinates, and the
// world image of the origin is subtracted.
func (v Pixel) ToScene(ctx Context) (Scene, error) {
	d, err := PxToScene(ctx, math32.Vec2(float32(v), 0))
	if err != nil {
		return 0, err
	}
	return Scene(d.X), nil
}

// ToPx converts a scene unit distance to the device pixel displacement
// it induces along the horizontal axis, the inverse of [Pixel.ToScene].
func (v Scene) ToPx(ctx Context) (Pixel, error) {
	d, err := SceneToPx(ctx, math32.Vec2(float32(v), 0))
	if err != nil {
		return 0, err
	}
	return Pixel(d.X), nil
}

// ToMm converts scene units to physical millimeters,
// composed through device pixels.
func (v Scene) ToMm(ctx Context) (Millimeter, error) {
	px, err := v.ToPx(ctx)
	if err != nil {
		return 0, err
	}
	return px.ToMm(ctx)
}

// PxToScene converts a pixel offset vector to the scene-space
// displacement it induces: both the viewport origin and the origin
// plus the offset are mapped into world coordinates, and the
// difference isolates the delta.
func PxToScene(ctx Context, offset math32.Vector2) (math32.Vector2, error) {
	vp, err := ctx.Viewport()
	if err != nil {
		return math32.Vector2{}, err
	}
	w0, err := ctx.ToWorld(vp.Min)
	if err != nil {
		return math32.Vector2{}, err
	}
	w1, err := ctx.ToWorld(vp.Min.Add(offset))
	if err != nil {
		return math32.Vector2{}, err
	}
	return w1.Sub(w0), nil
}

// SceneToPx converts a scene-space offset vector to the pixel
// displacement it induces, the inverse of [PxToScene].
func SceneToPx(ctx Context, offset math32.Vector2) (math32.Vector2, error) {
	vp, err := ctx.Viewport()
	if err != nil {
		return math32.Vector2{}, err
	}
	w0, err := ctx.ToWorld(vp.Min)
	if err != nil {
		return math32.Vector2{}, err
	}
	s0, err := ctx.ToScreen(w0)
	if err != nil {
		return math32.Vector2{}, err
	}
	s1, err := ctx.ToScreen(w0.Add(offset))
	if err != nil {
		return math32.Vector2{}, err
	}
	return s1.Sub(s0), nil
}
