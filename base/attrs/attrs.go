// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package attrs provides a map of named any elements with generic
// support for type-safe Get and nil-safe Set, used for the loosely
// typed attribute bags attached to plots. Attribute keys function as
// optional fields, so a CamelCase naming convention is typical and
// access functions that establish standard key names are good practice
// to avoid issues with typos.
package attrs

import (
	"fmt"
	"maps"
)

// Attributes is a map of named any elements with generic support
// for type-safe Get and nil-safe Set.
type Attributes map[string]any

func (at *Attributes) init() {
	if *at == nil {
		*at = make(map[string]any)
	}
}

// Set sets key to the given value, creating the map if needed.
func (at *Attributes) Set(key string, value any) {
	at.init()
	(*at)[key] = value
}

// Delete removes the given key, if present.
func (at *Attributes) Delete(key string) {
	delete(*at, key)
}

// Has returns whether the given key is present.
func (at Attributes) Has(key string) bool {
	_, ok := at[key]
	return ok
}

// Get gets the attribute value of the given type.
// It returns an error if the key is not present
// or the value is a different type.
func Get[T any](at Attributes, key string) (T, error) {
	var z T
	x, ok := at[key]
	if !ok {
		return z, fmt.Errorf("key %q not found in attributes", key)
	}
	v, ok := x.(T)
	if !ok {
		return z, fmt.Errorf("key %q has a different type than expected %T: is %T", key, z, x)
	}
	return v, nil
}

// GetDefault gets the attribute value of the given type,
// returning the given default when the key is absent or mistyped.
func GetDefault[T any](at Attributes, key string, def T) T {
	v, err := Get[T](at, key)
	if err != nil {
		return def
	}
	return v
}

// Copy does a shallow copy of attributes from the source.
// Pointer-based values still point to the same underlying data,
// but the two maps remain distinct. It uses [maps.Copy].
func (at *Attributes) Copy(src Attributes) {
	if src == nil {
		return
	}
	at.init()
	maps.Copy(*at, src)
}
