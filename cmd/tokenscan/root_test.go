package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const credsRules = `patterns:
  - pattern:
      name: email
      regex: "[^@]+@[^@]+"
  - pattern:
      name: aws-access-key
      regex: "AKIA[0-9A-Z]{16}"
`

// runCommand executes the root command with args and returns the combined output.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd := newRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeRulesDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "creds.yml"), []byte(credsRules), 0o600)
	require.NoError(t, err)
	return dir
}

func TestScanSingleToken(t *testing.T) {
	t.Parallel()

	dir := writeRulesDir(t)

	output, err := runCommand(t, "-d", dir, "-t", "user@example.com", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "[+] Loaded 2 regex patterns")
	assert.Contains(t, output, "Token: user@example.com")
	assert.Contains(t, output, "[+] Match in creds.yml")
	assert.Contains(t, output, "   - email")
	assert.Contains(t, output, "SCAN COMPLETE")
	assert.Contains(t, output, "Tokens scanned : 1")
	assert.Contains(t, output, "Total matches  : 1")
}

func TestScanTokenWithoutMatches(t *testing.T) {
	t.Parallel()

	dir := writeRulesDir(t)

	output, err := runCommand(t, "-d", dir, "-t", "nothing", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "[-] No matches found")
	assert.Contains(t, output, "Total matches  : 0")
}

func TestScanTokenFile(t *testing.T) {
	t.Parallel()

	dir := writeRulesDir(t)
	tokenFile := filepath.Join(t.TempDir(), "tokens.txt")
	tokens := "user@example.com\n\nAKIAIOSFODNN7EXAMPLE\n   \nplain\n"
	require.NoError(t, os.WriteFile(tokenFile, []byte(tokens), 0o600))

	output, err := runCommand(t, "-d", dir, "-f", tokenFile, "--no-color")
	require.NoError(t, err)

	assert.Contains(t, output, "Tokens scanned : 3")
	assert.Contains(t, output, "Total matches  : 2")
}

func TestScanMissingTokenFile(t *testing.T) {
	t.Parallel()

	dir := writeRulesDir(t)

	_, err := runCommand(t, "-d", dir, "-f", "/no/such/tokens.txt", "--no-color")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open token file")
}

func TestScanNoInputShowsHelp(t *testing.T) {
	t.Parallel()

	output, err := runCommand(t, "--no-color")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input")
	assert.Contains(t, output, "Usage:")
}

func TestScanEmptyRulesDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	output, err := runCommand(t, "-d", dir, "-t", "user@example.com", "--no-color")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid rules loaded")
	assert.Contains(t, output, "[!] No valid rules loaded")
	assert.NotContains(t, output, "SCAN COMPLETE", "scanning must not start with an empty rule set")
}
