package main

import (
	"bytes"
	"fmt"
	"runtime"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunVersion(t *testing.T) {
	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, runVersion(cmd, nil))

	got := out.String()
	assert.Contains(t, got, "hexane v"+version)
	assert.Contains(t, got, "Commit: "+commit)
	assert.Contains(t, got, "Go version: "+runtime.Version())
	assert.Contains(t, got, fmt.Sprintf("OS/Arch: %s/%s", runtime.GOOS, runtime.GOARCH))
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "hexane v")
}
