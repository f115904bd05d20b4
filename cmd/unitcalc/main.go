// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command unitcalc converts measurements between display units
// (scene, px, dip, mm) against a TOML display profile.
package main

import (
	"os"

	"github.com/tiemvanderdeure/makie/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
