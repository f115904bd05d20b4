// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tiemvanderdeure/makie/units"
)

// newConvertCmd returns the convert command, which parses a
// measurement like "25.4mm" and expresses it in the target unit
// against the display profile.
func newConvertCmd() *cobra.Command {
	var profilePath string

	cmd := &cobra.Command{
		Use:   "convert <value><unit> <target-unit>",
		Short: "Convert a measurement to another unit",
		Long: `Convert parses a measurement with a unit suffix (scene, px, dip, mm)
and expresses it in the target unit. Conversions that depend on the
display (anything involving px or scene) use the profile's DPI,
viewport, and transform; without --profile a standard 96 DPI display
is assumed.`,
		Example: `  unitcalc convert 25.4mm px
  unitcalc convert 160dip px --profile retina.toml
  unitcalc convert 96px scene`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			val, from, err := units.Parse(args[0])
			if err != nil {
				return err
			}
			to, err := units.KindFromString(args[1])
			if err != nil {
				return err
			}

			profile := DefaultProfile()
			if profilePath != "" {
				profile, err = LoadProfile(profilePath)
				if err != nil {
					return err
				}
				logger.Debug("loaded display profile", "path", profilePath, "dpi", profile.Dpi)
			}
			sc := profile.Screen()

			out, err := units.Convert(sc, val, from, to)
			if err != nil {
				return err
			}
			logger.Debug("converted", "value", val, "from", from, "to", to, "result", out)

			fmt.Fprintln(cmd.OutOrStdout(), renderConversion(val, from, out, to))
			return nil
		},
	}

	cmd.Flags().StringVarP(&profilePath, "profile", "p", "", "TOML display profile (default: 96 DPI, identity transform)")
	return cmd
}
