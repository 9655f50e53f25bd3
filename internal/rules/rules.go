// Package rules loads named regex rules from YAML files and evaluates tokens
// against them.
package rules

import "regexp"

// DefaultName is assigned to rules that omit the name field.
const DefaultName = "unknown"

// Rule is a single named pattern, compiled once at load time.
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// FileRules groups the rules loaded from one YAML file.
type FileRules struct {
	Path  string
	Rules []Rule
}

// Set holds every successfully compiled rule, grouped by source file in
// discovery order. A Set is immutable after loading.
type Set struct {
	files []FileRules
	total int
}

// Files returns the per-file rule groups in discovery order.
func (s *Set) Files() []FileRules {
	return s.files
}

// Total returns the number of compiled rules across all files.
func (s *Set) Total() int {
	return s.total
}

// FileMatch lists the rules from one file that matched a token.
type FileMatch struct {
	File  string
	Names []string
}

// ScanResult is the outcome of matching a single token against a Set.
type ScanResult struct {
	Matches []FileMatch
	Total   int
}

// Match tests token against every rule in the set and groups matching rule
// names by source file, in stored order. Search is unanchored: a hit anywhere
// inside the token counts. Matching is read-only, so repeated calls with the
// same token always produce the same result.
func (s *Set) Match(token string) ScanResult {
	var result ScanResult

	for _, file := range s.files {
		var names []string
		for _, rule := range file.Rules {
			if rule.Pattern.MatchString(token) {
				names = append(names, rule.Name)
			}
		}

		if len(names) > 0 {
			result.Matches = append(result.Matches, FileMatch{File: file.Path, Names: names})
			result.Total += len(names)
		}
	}

	return result
}
