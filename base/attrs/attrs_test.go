// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributes(t *testing.T) {
	var at Attributes
	assert.False(t, at.Has("Color"))

	at.Set("Color", "red")
	at.Set("Width", 2.5)
	assert.True(t, at.Has("Color"))

	c, err := Get[string](at, "Color")
	assert.NoError(t, err)
	assert.Equal(t, "red", c)

	_, err = Get[string](at, "Missing")
	assert.Error(t, err)

	_, err = Get[int](at, "Color") // wrong type
	assert.Error(t, err)

	assert.Equal(t, 2.5, GetDefault(at, "Width", 1.0))
	assert.Equal(t, 1.0, GetDefault(at, "Missing", 1.0))
	assert.Equal(t, 1, GetDefault(at, "Color", 1)) // mistyped falls back

	at.Delete("Color")
	assert.False(t, at.Has("Color"))
}

func TestCopy(t *testing.T) {
	src := Attributes{"A": 1, "B": 2}
	var dst Attributes
	dst.Copy(src)
	assert.Equal(t, src, dst)

	dst.Set("A", 3)
	assert.Equal(t, 1, src["A"])

	dst.Copy(nil) // no-op
	assert.Equal(t, 3, dst["A"])
}
