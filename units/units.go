// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package units implements the measurement spaces of the plotting system
(scene data units, device pixels, density-independent pixels, and
physical millimeters) and the DPI-aware conversions between them.

Each unit is a distinct tagged float32 type, so values of different
units cannot be mixed without an explicit conversion: the compiler
rejects cross-unit arithmetic and there is no implicit construction of
a unit value from a bare number. Conversions that depend on the
display (its DPI or its screen/world transform) take a [Context] and
re-query it on every call, because DPI can change when a window moves
between monitors; converted values must not be cached across display
changes.

Pixel is the hub unit: DPI ties every physical unit to device pixels,
while scene units additionally require the display's screen/world
transform, so most conversions route through pixels.
*/
package units

import "fmt"

// Standard physical conversion factors. These are fixed constants,
// never recomputed from a display.
const (
	// DipPerInch is the number of density-independent pixels per inch.
	DipPerInch = 160.0

	// MmPerInch is the number of millimeters per inch.
	MmPerInch = 25.4

	// DipInInch is the fixed physical size of one dip in inches.
	DipInInch = 1.0 / DipPerInch

	// DipInMm is the fixed physical size of one dip in millimeters.
	DipInMm = 0.15875
)

// Scene is a distance in the scene's own data units, after any
// plot-level transform but before projection to the screen.
type Scene float32

// Pixel is a distance in physical device pixels.
type Pixel float32

// Dip is a distance in density-independent pixels,
// each of fixed physical size [DipInInch] (1/160 inch).
type Dip float32

// Millimeter is a physical distance on the display surface.
type Millimeter float32

// Unit values for ergonomic literal construction with untyped
// constants: 5 * units.Mm is 5 millimeters, 96 * units.Px is
// 96 pixels.
const (
	// Px is one device pixel.
	Px Pixel = 1

	// Dp is one density-independent pixel.
	Dp Dip = 1

	// Mm is one millimeter.
	Mm Millimeter = 1
)

// Unit is the set of tagged unit types.
type Unit interface {
	~float32
}

// Number returns the raw numeric payload of a tagged unit value.
// A plain float32 or float64 passes through unchanged, so generic
// code can treat tagged and untagged values uniformly. The reverse
// direction is never implicit: constructing a unit value from a bare
// number always requires an explicit conversion such as Pixel(x).
func Number[T ~float32 | ~float64](v T) float32 {
	return float32(v)
}

// Mul multiplies a unit value by a plain scalar, preserving the unit.
// For untyped constant scalars, the built-in operator does the same
// in either order: u * 2 and 2 * u. Multiplying two unit values of
// different units is not defined anywhere in this package; such an
// expression does not compile.
func Mul[T Unit](u T, s float32) T {
	return T(float32(u) * s)
}

// String renders a dip value with its unit suffix, e.g. "5dip".
func (v Dip) String() string {
	return fmt.Sprintf("%gdip", float32(v))
}
