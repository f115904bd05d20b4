// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spaces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tiemvanderdeure/makie/base/observe"
)

// predicates in a fixed order, matching matches below
var predicates = []func(Spacer) bool{IsData, IsPixel, IsRelative, IsClip}

func matches(s Spacer) [4]bool {
	var m [4]bool
	for i, pred := range predicates {
		m[i] = pred(s)
	}
	return m
}

func TestPredicateClosure(t *testing.T) {
	want := map[Space][4]bool{
		DataSpace:     {true, false, false, false},
		PixelSpace:    {false, true, false, false},
		RelativeSpace: {false, false, true, false},
		ClipSpace:     {false, false, false, true},
	}
	for sym, wm := range want {
		// raw symbol
		assert.Equal(t, wm, matches(sym), sym)

		// observable cell holding the symbol
		assert.Equal(t, wm, matches(Observe(observe.New(sym))), sym)

		// plot with the space attribute set
		p := &Plot{}
		p.SetSpace(sym)
		assert.Equal(t, wm, matches(p), sym)
	}
}

func TestUnknownSymbol(t *testing.T) {
	none := [4]bool{}
	for _, sym := range []Space{"", "world", "screen", "Data"} {
		assert.Equal(t, none, matches(sym), sym)
		assert.False(t, sym.Valid(), sym)
	}
	assert.True(t, DataSpace.Valid())
}

func TestPlotDefaultsToData(t *testing.T) {
	p := &Plot{}
	assert.Equal(t, DataSpace, p.Space())
	assert.True(t, IsData(p))
	assert.False(t, IsPixel(p))

	// mistyped attribute also falls back to data
	p.Attributes.Set(SpaceKey, 42)
	assert.True(t, IsData(p))
}

func TestObservableRetarget(t *testing.T) {
	cell := observe.New(DataSpace)
	p := &Plot{}
	p.SetSpaceObservable(Observe(cell))
	assert.True(t, IsData(p))

	var seen Space
	cell.OnChange(func(s Space) { seen = s })
	cell.Set(ClipSpace)
	assert.True(t, IsClip(p))
	assert.False(t, IsData(p))
	assert.Equal(t, ClipSpace, seen)
}
