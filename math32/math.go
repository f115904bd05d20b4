// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the float32 vector, matrix, and scalar math
// used by the unit conversion layer: 2D points and offsets, affine
// screen/world transforms, and viewport rectangles.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// These are mostly thin wrappers around chewxy/math32, which has
// optimized float32 implementations.

// Mathematical constants.
const (
	Pi = math.Pi

	// MaxFloat32 is the largest finite float32 value.
	MaxFloat32 = math.MaxFloat32
)

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// Infinity is positive infinity.
var Infinity = float32(math.Inf(1))

// DegToRad converts a number from degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number from radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Atan2 returns the arc tangent of y/x, using the signs
// of the two to determine the quadrant of the return value.
func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// IsNaN reports whether f is a "not-a-number" value.
func IsNaN(f float32) bool {
	return math32.IsNaN(f)
}

// IsInf reports whether f is an infinity, according to sign.
func IsInf(f float32, sign int) bool {
	return math32.IsInf(f, sign)
}

// Min returns the smaller of a or b.
func Min(a, b float32) float32 {
	return math32.Min(a, b)
}

// Max returns the larger of a or b.
func Max(a, b float32) float32 {
	return math32.Max(a, b)
}
