// Package report renders user-facing scan output for the terminal.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const separatorWidth = 60

// Printer writes scan output with optional colorization. Whether color is
// used is decided once at construction time; a Printer built with color
// disabled is a plain text passthrough for the rest of the run.
type Printer struct {
	out     io.Writer
	header  *color.Color
	info    *color.Color
	success *color.Color
	value   *color.Color
	failure *color.Color
}

// NewPrinter creates a Printer writing to out. Color codes are emitted only
// when colorEnabled is true.
func NewPrinter(out io.Writer, colorEnabled bool) *Printer {
	p := &Printer{
		out:     out,
		header:  color.New(color.Bold),
		info:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		value:   color.New(color.FgYellow),
		failure: color.New(color.FgRed),
	}

	for _, c := range []*color.Color{p.header, p.info, p.success, p.value, p.failure} {
		if colorEnabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// DetectColor reports whether colored output should be enabled for stdout.
// Color is off when explicitly disabled or when stdout is not a terminal.
func DetectColor(noColor bool) bool {
	if noColor {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func (p *Printer) separator() {
	_, _ = fmt.Fprintln(p.out, strings.Repeat("=", separatorWidth))
}

// Loading announces the start of rule loading.
func (p *Printer) Loading(dir string) {
	_, _ = fmt.Fprintln(p.out, p.info.Sprintf("[*] Loading rules from %s...", dir))
}

// Loaded announces how many rules were compiled.
func (p *Printer) Loaded(total int) {
	_, _ = fmt.Fprintln(p.out, p.success.Sprintf("[+] Loaded %d regex patterns", total))
}

// Warnf prints a recoverable problem, such as a rule file that failed to parse.
func (p *Printer) Warnf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, p.failure.Sprintf("[!] "+format, args...))
}

// Errorf prints a fatal problem before the caller aborts the run.
func (p *Printer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, p.failure.Sprintf("[!] "+format, args...))
}

// TokenHeader prints the separator and label that precede one token's results.
func (p *Printer) TokenHeader(token string) {
	_, _ = fmt.Fprintln(p.out)
	p.separator()
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.header.Sprint("Token:"), p.value.Sprint(token))
}

// FileMatches prints one file's match group: the file basename followed by
// each matching rule name.
func (p *Printer) FileMatches(path string, names []string) {
	_, _ = fmt.Fprintf(p.out, "\n%s\n", p.success.Sprintf("[+] Match in %s", filepath.Base(path)))
	for _, name := range names {
		_, _ = fmt.Fprintf(p.out, "   - %s\n", p.value.Sprint(name))
	}
}

// NoMatches reports that no rule matched the current token.
func (p *Printer) NoMatches() {
	_, _ = fmt.Fprintf(p.out, "\n%s\n", p.failure.Sprint("[-] No matches found"))
}

// Summary prints the end-of-run totals.
func (p *Printer) Summary(tokensScanned, totalMatches int) {
	_, _ = fmt.Fprintln(p.out)
	p.separator()
	_, _ = fmt.Fprintln(p.out, p.header.Sprint("SCAN COMPLETE"))
	_, _ = fmt.Fprintln(p.out, p.info.Sprintf("Tokens scanned : %d", tokensScanned))
	_, _ = fmt.Fprintln(p.out, p.success.Sprintf("Total matches  : %d", totalMatches))
}
