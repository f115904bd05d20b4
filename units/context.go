// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"fmt"

	"github.com/tiemvanderdeure/makie/base/errors"
	"github.com/tiemvanderdeure/makie/math32"
)

// ErrContextUnavailable is reported when a conversion needs the
// display state but the context cannot supply it, for example an
// uninitialized or destroyed display. It always propagates to the
// caller: defaulting the DPI silently would misrepresent physical
// sizes, so there is no numeric fallback.
var ErrContextUnavailable = errors.New("units: display context unavailable")

// Context supplies the display state that conversions depend on.
// It is owned by the windowing/scene system, not by this package,
// and is treated as read-only but time-varying: every conversion
// re-queries it, because the DPI and the transform can change when
// a window moves to a different display.
type Context interface {
	// DPI returns the horizontal (X) and vertical (Y) pixels per inch
	// of the display.
	DPI() (math32.Vector2, error)

	// ToScreen maps a point in scene (world) coordinates to raw
	// window pixel coordinates. It is the inverse of ToWorld.
	ToScreen(p math32.Vector2) (math32.Vector2, error)

	// ToWorld maps a point in raw window pixel coordinates to scene
	// (world) coordinates. It is the inverse of ToScreen.
	ToWorld(p math32.Vector2) (math32.Vector2, error)

	// Viewport returns the window region the scene renders into,
	// in raw window pixel coordinates. Its Min corner is the pixel
	// origin for displacement conversions.
	Viewport() (math32.Box2, error)
}

// Screen is a concrete [Context] describing one display state:
// its pixel density, the affine world-to-screen transform, and the
// viewport. The windowing system typically maintains one per window
// and updates it in place; tests and the command line tool construct
// one directly.
type Screen struct {
	// Dpi is the horizontal (X) and vertical (Y) pixels per inch.
	Dpi math32.Vector2

	// Transform maps scene (world) coordinates to raw window pixels.
	Transform math32.Matrix2

	// Vp is the viewport in raw window pixel coordinates.
	Vp math32.Box2
}

// Defaults sets standard values: 96 DPI, identity transform,
// and an 800x600 viewport at the window origin.
func (sc *Screen) Defaults() {
	sc.Dpi = math32.Vector2Scalar(96)
	sc.Transform = math32.Identity2()
	sc.Vp = math32.B2(0, 0, 800, 600)
}

// DPI returns the display's pixels per inch,
// or [ErrContextUnavailable] if it has not been set.
func (sc *Screen) DPI() (math32.Vector2, error) {
	if sc == nil || sc.Dpi.X <= 0 || sc.Dpi.Y <= 0 {
		return math32.Vector2{}, fmt.Errorf("%w: dpi not set", ErrContextUnavailable)
	}
	return sc.Dpi, nil
}

// ToScreen maps a scene coordinate to window pixels via the transform.
func (sc *Screen) ToScreen(p math32.Vector2) (math32.Vector2, error) {
	if sc == nil {
		return math32.Vector2{}, fmt.Errorf("%w: no screen", ErrContextUnavailable)
	}
	return sc.Transform.MulVector2AsPoint(p), nil
}

// ToWorld maps a window pixel coordinate to scene coordinates via the
// inverse transform, or [ErrContextUnavailable] if the transform is
// singular.
func (sc *Screen) ToWorld(p math32.Vector2) (math32.Vector2, error) {
	if sc == nil {
		return math32.Vector2{}, fmt.Errorf("%w: no screen", ErrContextUnavailable)
	}
	if sc.Transform.Determinant() == 0 {
		return math32.Vector2{}, fmt.Errorf("%w: singular screen transform", ErrContextUnavailable)
	}
	return sc.Transform.Inverse().MulVector2AsPoint(p), nil
}

// Viewport returns the viewport rectangle,
// or [ErrContextUnavailable] if it is empty.
func (sc *Screen) Viewport() (math32.Box2, error) {
	if sc == nil || sc.Vp.IsEmpty() {
		return math32.Box2{}, fmt.Errorf("%w: empty viewport", ErrContextUnavailable)
	}
	return sc.Vp, nil
}
