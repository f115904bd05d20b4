// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiemvanderdeure/makie/base/tolassert"
	"github.com/tiemvanderdeure/makie/math32"
	"github.com/tiemvanderdeure/makie/units"
)

const retinaProfile = `
[dpi]
x = 192
y = 192

[viewport]
x = 100
y = 50
width = 1600
height = 1200

[transform]
scale = [2.0, 2.0]
translate = [10.0, 20.0]
`

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "display.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfile(t *testing.T) {
	p, err := LoadProfile(writeProfile(t, retinaProfile))
	require.NoError(t, err)

	assert.Equal(t, float32(192), p.Dpi.X)
	assert.Equal(t, float32(1600), p.Viewport.Width)

	sc := p.Screen()
	dpi, err := sc.DPI()
	require.NoError(t, err)
	assert.Equal(t, math32.Vector2Scalar(192), dpi)

	vp, err := sc.Viewport()
	require.NoError(t, err)
	assert.Equal(t, math32.B2(100, 50, 1700, 1250), vp)

	// 25.4mm is one inch: 192 px on this display
	px, err := units.Millimeter(25.4).ToPx(sc)
	require.NoError(t, err)
	tolassert.Equal(t, 192, float32(px))

	// the transform scales by 2, so pixel distances halve in scene units
	s, err := units.Pixel(96).ToScene(sc)
	require.NoError(t, err)
	tolassert.Equal(t, 48, float32(s))
}

func TestLoadProfileErrors(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = LoadProfile(writeProfile(t, "not [valid toml"))
	assert.Error(t, err)
}

func TestDefaultProfile(t *testing.T) {
	sc := DefaultProfile().Screen()

	var def units.Screen
	def.Defaults()

	dpi, err := sc.DPI()
	require.NoError(t, err)
	assert.Equal(t, def.Dpi, dpi)

	vp, err := sc.Viewport()
	require.NoError(t, err)
	assert.Equal(t, def.Vp, vp)
	assert.Equal(t, def.Transform, sc.Transform)
}
