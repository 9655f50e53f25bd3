// Package scanner drives token evaluation against a rule set and accumulates
// run totals.
package scanner

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"

	"tokenscan/internal/prompt"
	"tokenscan/internal/report"
	"tokenscan/internal/rules"
)

// Summary aggregates counters across a scan run.
type Summary struct {
	TokensScanned int
	TotalMatches  int
}

// Scanner evaluates tokens against a rule set and streams results through a
// report.Printer.
type Scanner struct {
	fs      afero.Fs
	set     *rules.Set
	printer *report.Printer
	summary Summary
}

// New creates a scanner over the given rule set.
func New(fs afero.Fs, set *rules.Set, printer *report.Printer) *Scanner {
	return &Scanner{fs: fs, set: set, printer: printer}
}

// ScanToken evaluates one token against every rule, printing each file's
// match group as it is found, and returns the match count for the token.
func (s *Scanner) ScanToken(token string) int {
	s.printer.TokenHeader(token)

	result := s.set.Match(token)
	for _, m := range result.Matches {
		s.printer.FileMatches(m.File, m.Names)
	}
	if len(result.Matches) == 0 {
		s.printer.NoMatches()
	}

	s.summary.TokensScanned++
	s.summary.TotalMatches += result.Total

	return result.Total
}

// ScanFile scans newline-delimited tokens from path, one token per non-blank
// trimmed line. Blank lines are skipped and not counted as scanned tokens.
func (s *Scanner) ScanFile(path string) error {
	f, err := s.fs.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open token file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	lines := bufio.NewScanner(f)
	for lines.Scan() {
		token := strings.TrimSpace(lines.Text())
		if token == "" {
			continue
		}
		s.ScanToken(token)
	}

	if err := lines.Err(); err != nil {
		return fmt.Errorf("failed to read token file %s: %w", path, err)
	}

	return nil
}

// ScanInteractive reads tokens from p until the session ends, scanning each
// non-blank entry.
func (s *Scanner) ScanInteractive(p prompt.Prompter) error {
	defer func() { _ = p.Close() }()

	for {
		token, err := prompt.TokenInput(p)
		if err != nil {
			if errors.Is(err, prompt.ErrClosed) {
				return nil
			}
			return err
		}

		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		s.ScanToken(token)
	}
}

// Summary returns the totals accumulated so far.
func (s *Scanner) Summary() Summary {
	return s.summary
}

// PrintSummary emits the end-of-run totals. Called once per run by the driver.
func (s *Scanner) PrintSummary() {
	s.printer.Summary(s.summary.TokensScanned, s.summary.TotalMatches)
}
