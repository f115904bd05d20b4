// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiemvanderdeure/makie/spaces"
)

// newSpaceCmd returns the space command, which classifies a
// projection-space symbol.
func newSpaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "space <symbol>",
		Short: "Classify a projection-space symbol",
		Long: `Space reports whether the given symbol is one of the recognized
projection spaces (data, pixel, relative, clip). An unrecognized
symbol matches none of them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := spaces.Space(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), renderSpace(s))
			if !s.Valid() {
				return fmt.Errorf("%q is not a recognized projection space", args[0])
			}
			return nil
		},
	}
}
