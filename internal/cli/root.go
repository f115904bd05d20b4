// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the unitcalc command line tool, which
// converts measurements between the plotting system's units against a
// TOML display profile, and reports projection-space classification.
// It is built on cobra with leveled logging via charmbracelet/log.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the unitcalc CLI and returns an error if any command
// fails. Logging defaults to info level; --verbose (-v) switches to
// debug. The logger is attached to the command context.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "unitcalc",
		Short:        "unitcalc converts measurements between display units",
		Long: `unitcalc converts measurements between scene units, device pixels,
density-independent pixels, and millimeters, using a display profile
(DPI, viewport, and screen transform) loaded from a TOML file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newConvertCmd())
	root.AddCommand(newSpaceCmd())

	return root.ExecuteContext(context.Background())
}
