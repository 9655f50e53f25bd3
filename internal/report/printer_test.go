package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterPlainOutput(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	p := NewPrinter(out, false)

	p.TokenHeader("user@example.com")
	p.FileMatches("/opt/tokenscan/rules/creds.yml", []string{"email", "aws-access-key"})

	got := out.String()
	assert.Contains(t, got, "Token: user@example.com")
	assert.Contains(t, got, "[+] Match in creds.yml")
	assert.Contains(t, got, "   - email")
	assert.Contains(t, got, "   - aws-access-key")
	assert.NotContains(t, got, "\x1b[", "plain printer must not emit escape codes")
}

func TestPrinterColorOutput(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	p := NewPrinter(out, true)

	p.NoMatches()

	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, out.String(), "[-] No matches found")
}

func TestPrinterSummaryLayout(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	p := NewPrinter(out, false)

	p.Summary(3, 7)

	got := out.String()
	assert.Contains(t, got, strings.Repeat("=", 60))
	assert.Contains(t, got, "SCAN COMPLETE")
	assert.Contains(t, got, "Tokens scanned : 3")
	assert.Contains(t, got, "Total matches  : 7")
}

func TestPrinterWarnf(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	p := NewPrinter(out, false)

	p.Warnf("Failed to load %s: %v", "bad.yml", "oops")

	assert.Equal(t, "[!] Failed to load bad.yml: oops\n", out.String())
}

func TestPrinterLoadProgress(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	p := NewPrinter(out, false)

	p.Loading("/opt/tokenscan/rules")
	p.Loaded(12)

	got := out.String()
	assert.Contains(t, got, "[*] Loading rules from /opt/tokenscan/rules...")
	assert.Contains(t, got, "[+] Loaded 12 regex patterns")
}

func TestDetectColorRespectsNoColor(t *testing.T) {
	t.Parallel()

	assert.False(t, DetectColor(true))
}
