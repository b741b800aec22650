package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to signal a clean exit.
	var out, logs bytes.Buffer

	// --- Act ---
	err := run(&out, &logs, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when help was requested")
	assert.Contains(t, out.String(), "Usage:", "expected help text on the output writer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var out, logs bytes.Buffer

	// --- Act ---
	err := run(&out, &logs, []string{"--this-is-not-a-valid-flag"})

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_InvalidDocument(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "broken.view")
	require.NoError(t, os.WriteFile(path, []byte(`column "root" {`), 0644))
	var out, logs bytes.Buffer

	// --- Act ---
	err := run(&out, &logs, []string{"--view", path})

	// --- Assert ---
	require.Error(t, err)
	assert.Contains(t, err.Error(), "inspection failed")
}

func TestRun_DumpReport(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := filepath.Join(t.TempDir(), "main.view")
	document := `
column "root" {
  text_input "name_field" {
    bind_target = "name"
  }
}
`
	require.NoError(t, os.WriteFile(path, []byte(document), 0644))
	var out, logs bytes.Buffer

	// --- Act ---
	err := run(&out, &logs, []string{"--dump", path})

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out.String(), "root: column")
	assert.Contains(t, out.String(), "node_count: 2")
	assert.Contains(t, logs.String(), "Inspecting view document.")
}
