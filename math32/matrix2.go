// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix2 is a 2x3 affine transformation matrix, as used for the
// screen/world transform of a display: the first two columns rotate
// and scale, the third translates.
//
//	| XX XY X0 |
//	| YX YY Y0 |
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{XX: 1, YY: 1}
}

// Translate2D returns a new [Matrix2] that translates by the given offsets.
func Translate2D(x, y float32) Matrix2 {
	m := Identity2()
	m.X0 = x
	m.Y0 = y
	return m
}

// Scale2D returns a new [Matrix2] that scales by the given factors.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{XX: x, YY: y}
}

// Rotate2D returns a new [Matrix2] that rotates by the given angle in radians.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{XX: c, YX: s, XY: -s, YY: c}
}

// Mul returns this matrix multiplied by the other given matrix.
// Note that the multiplication order is the reverse of the "logical"
// application order: Translate2D(1, 1).Mul(Scale2D(2, 2)) scales first,
// then translates.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	return Matrix2{
		XX: m.XX*o.XX + m.XY*o.YX,
		YX: m.YX*o.XX + m.YY*o.YX,
		XY: m.XX*o.XY + m.XY*o.YY,
		YY: m.YX*o.XY + m.YY*o.YY,
		X0: m.XX*o.X0 + m.XY*o.Y0 + m.X0,
		Y0: m.YX*o.X0 + m.YY*o.Y0 + m.Y0,
	}
}

// MulVector2AsPoint multiplies the given point by this matrix,
// including the translation component.
func (m Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	return Vec2(m.XX*v.X+m.XY*v.Y+m.X0, m.YX*v.X+m.YY*v.Y+m.Y0)
}

// MulVector2AsVector multiplies the given vector by this matrix,
// without the translation component, for vectors that represent
// offsets or directions rather than positions.
func (m Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	return Vec2(m.XX*v.X+m.XY*v.Y, m.YX*v.X+m.YY*v.Y)
}

// Determinant returns the determinant of the linear part of this matrix.
func (m Matrix2) Determinant() float32 {
	return m.XX*m.YY - m.XY*m.YX
}

// Inverse returns the inverse of this matrix, such that
// m.Mul(m.Inverse()) is the identity. A singular matrix
// (zero determinant) returns the zero matrix.
func (m Matrix2) Inverse() Matrix2 {
	det := m.Determinant()
	if det == 0 {
		return Matrix2{}
	}
	id := 1 / det
	return Matrix2{
		XX: m.YY * id,
		YX: -m.YX * id,
		XY: -m.XY * id,
		YY: m.XX * id,
		X0: (m.XY*m.Y0 - m.YY*m.X0) * id,
		Y0: (m.YX*m.X0 - m.XX*m.Y0) * id,
	}
}

// ExtractRot extracts the rotation angle in radians from this matrix.
func (m Matrix2) ExtractRot() float32 {
	return Atan2(-m.XY, m.XX)
}
