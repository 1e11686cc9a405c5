package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("PORTFOLIO_CONFIG", filepath.Join(t.TempDir(), "none.toml"))

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "portfolio version "+version+"\n", out)
}

func TestStatsCmd(t *testing.T) {
	out, _, err := execute(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Projects Completed")
	assert.Contains(t, out, "11+")
	assert.Contains(t, out, "Top Tech")
	assert.Contains(t, out, "projects")
	assert.Contains(t, out, "achievements")
}

func TestBuildCmd(t *testing.T) {
	dir := t.TempDir()
	_, logs, err := execute(t, "build", "--out", dir, "--public", filepath.Join(dir, "missing"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "index.html"))
	assert.Contains(t, logs, "site built")
}

func TestBadConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")
	_, _, err := execute(t, "stats")
	assert.ErrorContains(t, err, "load config")
}
