// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (approximate equality), for testing the
// floating-point unit conversions.
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Float is the set of floating-point types that can be compared.
type Float interface {
	~float32 | ~float64
}

// Equal asserts that the given values are within a reasonable
// tolerance (0.001) of each other.
func Equal[T Float](t *testing.T, want, have T, msgAndArgs ...any) bool {
	t.Helper()
	return EqualTol(t, want, have, 0.001, msgAndArgs...)
}

// EqualTol asserts that the given values are within
// the given tolerance of each other.
func EqualTol[T Float](t *testing.T, want, have, tol T, msgAndArgs ...any) bool {
	t.Helper()
	return assert.InDelta(t, float64(want), float64(have), float64(tol), msgAndArgs...)
}
