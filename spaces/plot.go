// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spaces

import (
	"github.com/tiemvanderdeure/makie/base/attrs"
)

// SpaceKey is the standard attribute key holding a plot's space.
const SpaceKey = "Space"

// Plot is the minimal attribute-holding view of a plot object that the
// space predicates need. The attribute may hold a [Space] symbol or an
// observable cell of one; a plot with no space attribute is in
// [DataSpace].
type Plot struct {
	// Attributes is the plot's loosely typed configuration.
	Attributes attrs.Attributes
}

// SetSpace sets the plot's space attribute.
func (p *Plot) SetSpace(s Space) {
	p.Attributes.Set(SpaceKey, s)
}

// SetSpaceObservable sets the plot's space attribute to an observable
// cell, so the space can be retargeted reactively.
func (p *Plot) SetSpaceObservable(o Observed) {
	p.Attributes.Set(SpaceKey, o)
}

// Space resolves the plot's space attribute, defaulting to [DataSpace]
// when the attribute is absent.
func (p *Plot) Space() Space {
	if o, err := attrs.Get[Observed](p.Attributes, SpaceKey); err == nil {
		return o.Space()
	}
	return attrs.GetDefault(p.Attributes, SpaceKey, DataSpace)
}
