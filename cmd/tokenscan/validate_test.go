package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateReportsPerFileCounts(t *testing.T) {
	t.Parallel()

	dir := writeRulesDir(t)

	output, err := runCommand(t, "validate", "-d", dir, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, filepath.Join(dir, "creds.yml")+": 2 rules")
	assert.Contains(t, output, "[✓] 2 rules loaded from 1 files")
}

func TestValidateEmptyDirectoryFails(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := runCommand(t, "validate", "-d", dir, "--no-color")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid rules loaded")
}

func TestValidateSkipsInvalidEntriesButCountsValid(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	content := `patterns:
  - pattern:
      name: broken
      regex: "("
  - pattern:
      name: valid
      regex: "v[0-9]+"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mixed.yml"), []byte(content), 0o600))

	output, err := runCommand(t, "validate", "-d", dir, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "1 rules loaded from 1 files")
}
