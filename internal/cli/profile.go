// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/tiemvanderdeure/makie/math32"
	"github.com/tiemvanderdeure/makie/units"
)

// Profile is a TOML display profile describing the state a conversion
// needs: pixel density, viewport, and the world-to-screen transform.
//
//	[dpi]
//	x = 96
//	y = 96
//
//	[viewport]
//	x = 0
//	y = 0
//	width = 800
//	height = 600
//
//	[transform]
//	scale = [2.0, 2.0]
//	rotate = 0.0      # degrees
//	translate = [0.0, 0.0]
type Profile struct {
	Dpi       DpiConfig       `toml:"dpi"`
	Viewport  ViewportConfig  `toml:"viewport"`
	Transform TransformConfig `toml:"transform"`
}

// DpiConfig is the pixel density section of a profile.
type DpiConfig struct {
	X float32 `toml:"x"`
	Y float32 `toml:"y"`
}

// ViewportConfig is the viewport section of a profile, in pixels.
type ViewportConfig struct {
	X      float32 `toml:"x"`
	Y      float32 `toml:"y"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// TransformConfig is the world-to-screen transform section of a
// profile, applied in scale, rotate, translate order.
type TransformConfig struct {
	Scale     []float32 `toml:"scale"`
	Rotate    float32   `toml:"rotate"`
	Translate []float32 `toml:"translate"`
}

// DefaultProfile returns a profile matching [units.Screen.Defaults]:
// 96 DPI, identity transform, 800x600 viewport.
func DefaultProfile() *Profile {
	return &Profile{
		Dpi:      DpiConfig{X: 96, Y: 96},
		Viewport: ViewportConfig{Width: 800, Height: 600},
	}
}

// LoadProfile reads and parses a TOML display profile.
func LoadProfile(filename string) (*Profile, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading display profile: %w", err)
	}
	p := DefaultProfile()
	if err := toml.Unmarshal(b, p); err != nil {
		return nil, fmt.Errorf("parsing display profile %s: %w", filename, err)
	}
	return p, nil
}

// Screen builds the display context described by the profile.
func (p *Profile) Screen() *units.Screen {
	sc := &units.Screen{
		Dpi: math32.Vec2(p.Dpi.X, p.Dpi.Y),
		Vp: math32.B2(p.Viewport.X, p.Viewport.Y,
			p.Viewport.X+p.Viewport.Width, p.Viewport.Y+p.Viewport.Height),
	}
	m := math32.Identity2()
	if tr := p.Transform.Translate; len(tr) == 2 {
		m = m.Mul(math32.Translate2D(tr[0], tr[1]))
	}
	if p.Transform.Rotate != 0 {
		m = m.Mul(math32.Rotate2D(math32.DegToRad(p.Transform.Rotate)))
	}
	if sl := p.Transform.Scale; len(sl) == 2 {
		m = m.Mul(math32.Scale2D(sl[0], sl[1]))
	}
	sc.Transform = m
	return sc
}
