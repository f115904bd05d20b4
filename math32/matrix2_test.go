// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tiemvanderdeure/makie/base/tolassert"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualVector(t *testing.T, tol float32, vt, va Vector2) {
	t.Helper()
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
}

func TestMatrix2(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.Equal(t, vx, Identity2().MulVector2AsPoint(vx))
	assert.Equal(t, vy, Identity2().MulVector2AsPoint(vy))
	assert.Equal(t, vxy, Identity2().MulVector2AsPoint(vxy))

	assert.Equal(t, vxy, Translate2D(1, 1).MulVector2AsPoint(v0))

	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulVector2AsPoint(vxy))

	tolAssertEqualVector(t, standardTol, vy, Rotate2D(DegToRad(90)).MulVector2AsPoint(vx))
	tolAssertEqualVector(t, standardTol, vx, Rotate2D(DegToRad(-90)).MulVector2AsPoint(vy))
	tolAssertEqualVector(t, standardTol, vxy.Normal(), Rotate2D(DegToRad(45)).MulVector2AsPoint(vx))

	tolAssertEqualVector(t, standardTol, vy, Rotate2D(DegToRad(-90)).Inverse().MulVector2AsPoint(vx))
	tolAssertEqualVector(t, standardTol, vx, Rotate2D(DegToRad(90)).Inverse().MulVector2AsPoint(vy))

	tolAssertEqualVector(t, standardTol, vxy, Rotate2D(DegToRad(-45)).Mul(Rotate2D(DegToRad(45))).MulVector2AsPoint(vxy))
	tolAssertEqualVector(t, standardTol, vxy, Rotate2D(DegToRad(-45)).Mul(Rotate2D(DegToRad(-45)).Inverse()).MulVector2AsPoint(vxy))

	tolassert.EqualTol(t, DegToRad(-90), Rotate2D(DegToRad(-90)).ExtractRot(), standardTol)
	tolassert.EqualTol(t, DegToRad(45), Rotate2D(DegToRad(45)).ExtractRot(), standardTol)

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	// multiplication order is *reverse* of "logical" order:
	tolAssertEqualVector(t, standardTol, Vec2(1, 3), Translate2D(1, 1).Mul(Rotate2D(DegToRad(90))).Mul(Scale2D(2, 2)).MulVector2AsPoint(vx))
}

func TestMatrix2Inverse(t *testing.T) {
	m := Translate2D(10, 20).Mul(Scale2D(2, 4))
	p := Vec2(3, -5)
	tolAssertEqualVector(t, standardTol, p, m.Inverse().MulVector2AsPoint(m.MulVector2AsPoint(p)))

	// vectors ignore translation
	tolAssertEqualVector(t, standardTol, Vec2(6, -20), m.MulVector2AsVector(p))

	// singular matrices invert to zero
	assert.Equal(t, Matrix2{}, Matrix2{}.Inverse())
}
