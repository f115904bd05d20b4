// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tiemvanderdeure/makie/spaces"
)

var (
	colorCyan  = lipgloss.Color("36")  // primary values
	colorGreen = lipgloss.Color("35")  // matches
	colorGray  = lipgloss.Color("245") // secondary text
	colorDim   = lipgloss.Color("240") // muted text
)

var (
	styleNumber = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleUnit   = lipgloss.NewStyle().Foreground(colorGray)
	styleArrow  = lipgloss.NewStyle().Foreground(colorDim)
	styleMatch  = lipgloss.NewStyle().Foreground(colorGreen)
	styleMiss   = lipgloss.NewStyle().Foreground(colorDim)
)

// renderConversion formats a conversion result, e.g. "25.4 mm -> 96 px".
func renderConversion(val float32, from fmt.Stringer, out float32, to fmt.Stringer) string {
	return fmt.Sprintf("%s %s %s %s %s",
		styleNumber.Render(fmt.Sprintf("%g", val)),
		styleUnit.Render(from.String()),
		styleArrow.Render("->"),
		styleNumber.Render(fmt.Sprintf("%g", out)),
		styleUnit.Render(to.String()))
}

// renderSpace formats the predicate matches for a space symbol.
func renderSpace(s spaces.Space) string {
	rows := []struct {
		name  string
		match bool
	}{
		{"data", spaces.IsData(s)},
		{"pixel", spaces.IsPixel(s)},
		{"relative", spaces.IsRelative(s)},
		{"clip", spaces.IsClip(s)},
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s:\n", styleNumber.Render(string(s)))
	for _, row := range rows {
		mark := styleMiss.Render("-")
		name := styleMiss.Render(row.name)
		if row.match {
			mark = styleMatch.Render("*")
			name = styleMatch.Render(row.name)
		}
		fmt.Fprintf(&b, "  %s %s\n", mark, name)
	}
	return strings.TrimRight(b.String(), "\n")
}
