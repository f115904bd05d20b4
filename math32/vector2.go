// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Vector2 is a 2D vector or point with X and Y components.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with both components set to scalar.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{scalar, scalar}
}

// Set sets this vector's X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetScalar sets both components to the given scalar value.
func (v *Vector2) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
}

// String implements the fmt.Stringer interface.
func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Add adds the other given vector to this one and returns the result.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// AddScalar adds the given scalar to each component and returns the result.
func (v Vector2) AddScalar(scalar float32) Vector2 {
	return Vec2(v.X+scalar, v.Y+scalar)
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// SubScalar subtracts the given scalar from each component and returns the result.
func (v Vector2) SubScalar(scalar float32) Vector2 {
	return Vec2(v.X-scalar, v.Y-scalar)
}

// Mul multiplies this vector componentwise by the other given vector
// and returns the result.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vec2(v.X*other.X, v.Y*other.Y)
}

// MulScalar multiplies each component by the given scalar and returns the result.
func (v Vector2) MulScalar(scalar float32) Vector2 {
	return Vec2(v.X*scalar, v.Y*scalar)
}

// Div divides this vector componentwise by the other given vector
// and returns the result.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vec2(v.X/other.X, v.Y/other.Y)
}

// DivScalar divides each component by the given scalar and returns the result.
func (v Vector2) DivScalar(scalar float32) Vector2 {
	if scalar == 0 {
		return Vector2{}
	}
	return v.MulScalar(1 / scalar)
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vec2(-v.X, -v.Y)
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normal returns this vector divided by its length (its unit vector).
func (v Vector2) Normal() Vector2 {
	return v.DivScalar(v.Length())
}

// DistanceTo returns the distance between this point and the other given point.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return v.Sub(other).Length()
}
