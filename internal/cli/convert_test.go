// Copyright (c) 2026, The Makie Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes the convert command with the given args
// and returns its stdout.
func runConvert(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newConvertCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := runConvert(t, "25.4mm", "px")
	require.NoError(t, err)
	assert.Contains(t, out, "96")
	assert.Contains(t, out, "px")

	out, err = runConvert(t, "160dip", "px")
	require.NoError(t, err)
	assert.Contains(t, out, "96")
}

func TestConvertCommandProfile(t *testing.T) {
	path := writeProfile(t, retinaProfile)
	out, err := runConvert(t, "25.4mm", "px", "--profile", path)
	require.NoError(t, err)
	assert.Contains(t, out, "192")
}

func TestConvertCommandErrors(t *testing.T) {
	_, err := runConvert(t, "25.4", "px") // no unit suffix
	assert.Error(t, err)

	_, err = runConvert(t, "25.4mm", "parsec")
	assert.Error(t, err)

	_, err = runConvert(t, "96px", "dip") // no rule in the graph
	assert.Error(t, err)

	_, err = runConvert(t, "1mm", "px", "--profile", "missing.toml")
	assert.Error(t, err)
}

func TestSpaceCommand(t *testing.T) {
	cmd := newSpaceCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"pixel"})
	require.NoError(t, cmd.Execute())
	assert.True(t, strings.Contains(out.String(), "pixel"))

	cmd = newSpaceCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"warp"})
	assert.Error(t, cmd.Execute())
}
