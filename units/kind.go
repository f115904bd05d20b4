// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package units

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tiemvanderdeure/makie/base/errors"
)

// ErrUnsupportedConversion is reported by [Convert] when the requested
// unit pair has no direct or composed rule. Nothing is coerced or
// truncated; the request simply fails.
var ErrUnsupportedConversion = errors.New("units: unsupported conversion")

// Kind identifies a unit at runtime, for callers such as style parsers
// and the command line tool that only learn the unit from input text.
// Code that knows its units statically should use the tagged types and
// their conversion methods instead, which reject bad pairs at compile
// time.
type Kind int32

const (
	// KindScene is scene data units.
	KindScene Kind = iota

	// KindPx is device pixels.
	KindPx

	// KindDip is density-independent pixels.
	KindDip

	// KindMm is physical millimeters.
	KindMm

	// KindN is the number of unit kinds.
	KindN
)

// KindNames are the standard short names of the unit kinds,
// as used in measurement suffixes such as "25.4mm".
var KindNames = [KindN]string{
	KindScene: "scene",
	KindPx:    "px",
	KindDip:   "dip",
	KindMm:    "mm",
}

// String returns the short name of the kind, e.g. "dip".
func (k Kind) String() string {
	if k < 0 || k >= KindN {
		return "invalid"
	}
	return KindNames[k]
}

// KindFromString returns the kind with the given short name.
func KindFromString(s string) (Kind, error) {
	for k, nm := range KindNames {
		if s == nm {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("units: unknown unit name %q", s)
}

// Convert converts val, known to be in unit from, into unit to,
// querying ctx as needed. It is the runtime-dispatched counterpart of
// the typed conversion methods and covers exactly the same graph:
// a pair with no rule returns [ErrUnsupportedConversion].
func Convert(ctx Context, val float32, from, to Kind) (float32, error) {
	if from == to {
		return val, nil
	}
	switch from {
	case KindMm:
		switch to {
		case KindPx:
			v, err := Millimeter(val).ToPx(ctx)
			return float32(v), err
		case KindScene:
			v, err := Millimeter(val).ToScene(ctx)
			return float32(v), err
		}
	case KindPx:
		switch to {
		case KindMm:
			v, err := Pixel(val).ToMm(ctx)
			return float32(v), err
		case KindScene:
			v, err := Pixel(val).ToScene(ctx)
			return float32(v), err
		}
	case KindDip:
		switch to {
		case KindPx:
			v, err := Dip(val).ToPx(ctx)
			return float32(v), err
		case KindMm:
			return float32(Dip(val).ToMm()), nil
		case KindScene:
			v, err := Dip(val).ToScene(ctx)
			return float32(v), err
		}
	case KindScene:
		switch to {
		case KindPx:
			v, err := Scene(val).ToPx(ctx)
			return float32(v), err
		case KindMm:
			v, err := Scene(val).ToMm(ctx)
			return float32(v), err
		}
	}
	return 0, fmt.Errorf("%w: %v to %v", ErrUnsupportedConversion, from, to)
}

// Parse parses a measurement string consisting of a number followed by
// a unit name, e.g. "25.4mm", "160dip", "96px", "1.5scene".
func Parse(s string) (float32, Kind, error) {
	s = strings.TrimSpace(s)
	for k := KindN - 1; k >= 0; k-- {
		nm := KindNames[k]
		if !strings.HasSuffix(s, nm) {
			continue
		}
		num := strings.TrimSpace(strings.TrimSuffix(s, nm))
		val, err := strconv.ParseFloat(num, 32)
		if err != nil {
			return 0, 0, fmt.Errorf("units: bad measurement %q: %w", s, err)
		}
		return float32(val), k, nil
	}
	return 0, 0, fmt.Errorf("units: no unit suffix in %q", s)
}
