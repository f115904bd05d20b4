// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box2 represents a 2D rectangle defined by two points:
// the point with minimum coordinates and the point with
// maximum coordinates. It is used for viewport geometry.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values.
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// SetEmpty sets this box to empty (min / max +/- Infinity).
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns whether this box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return (b.Max.X < b.Min.X) || (b.Max.Y < b.Min.Y)
}

// Size returns the width and height of this box.
func (b Box2) Size() Vector2 {
	if b.IsEmpty() {
		return Vector2{}
	}
	return b.Max.Sub(b.Min)
}

// Canon returns the canonical version of this box, with minimum
// and maximum coordinates swapped as needed so that it is well-formed.
func (b Box2) Canon() Box2 {
	if b.Max.X < b.Min.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// ExpandByPoint expands this box to include the given point.
func (b *Box2) ExpandByPoint(p Vector2) {
	b.Min.X = Min(b.Min.X, p.X)
	b.Min.Y = Min(b.Min.Y, p.Y)
	b.Max.X = Max(b.Max.X, p.X)
	b.Max.Y = Max(b.Max.Y, p.Y)
}

// ContainsPoint returns whether this box contains the given point.
func (b Box2) ContainsPoint(p Vector2) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X && p.Y >= b.Min.Y && p.Y <= b.Max.Y
}
