// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spaces defines the symbolic projection spaces a plot's
// coordinates can be interpreted in: data, pixel, relative, and clip.
// A space is purely classificatory; it carries no numbers and no
// conversion logic. The predicates accept anything that can resolve
// itself to a space symbol, so a raw symbol, an observable cell, and
// a plot all work uniformly.
package spaces

import (
	"github.com/tiemvanderdeure/makie/base/observe"
)

// Space is a symbolic projection space tag.
// An unrecognized symbol is not an error: it simply matches
// none of the known spaces.
type Space string

const (
	// DataSpace means coordinates are in the scene's data units and go
	// through the full data-to-screen projection.
	DataSpace Space = "data"

	// PixelSpace means coordinates are in device pixels relative to
	// the viewport.
	PixelSpace Space = "pixel"

	// RelativeSpace means coordinates are fractions of the viewport,
	// in [0, 1].
	RelativeSpace Space = "relative"

	// ClipSpace means coordinates are in normalized clip coordinates,
	// in [-1, 1].
	ClipSpace Space = "clip"
)

// Spacer resolves to a space symbol. [Space] itself, [Observed]
// cells, and [Plot] all implement it, so the predicates take any of
// the three shapes through one interface.
type Spacer interface {
	Space() Space
}

// Space returns the symbol itself.
func (s Space) Space() Space {
	return s
}

// Valid returns whether the symbol is one of the four known spaces.
func (s Space) Valid() bool {
	switch s {
	case DataSpace, PixelSpace, RelativeSpace, ClipSpace:
		return true
	}
	return false
}

// Observed adapts an observable cell holding a space symbol
// to the [Spacer] interface.
type Observed struct {
	*observe.Value[Space]
}

// Observe returns a [Spacer] view of the given observable cell.
func Observe(o *observe.Value[Space]) Observed {
	return Observed{o}
}

// Space returns the cell's current symbol.
func (o Observed) Space() Space {
	return o.Get()
}

// IsData returns whether the given configuration resolves to [DataSpace].
func IsData(s Spacer) bool {
	return s.Space() == DataSpace
}

// IsPixel returns whether the given configuration resolves to [PixelSpace].
func IsPixel(s Spacer) bool {
	return s.Space() == PixelSpace
}

// IsRelative returns whether the given configuration resolves to [RelativeSpace].
func IsRelative(s Spacer) bool {
	return s.Space() == RelativeSpace
}

// IsClip returns whether the given configuration resolves to [ClipSpace].
func IsClip(s Spacer) bool {
	return s.Space() == ClipSpace
}
