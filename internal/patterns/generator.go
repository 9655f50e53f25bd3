// Package patterns suggests regex rules from literal sample tokens.
package patterns

import (
	"regexp"
	"strings"
)

var digitRun = regexp.MustCompile(`[0-9]{2,}`)

// GeneratePattern converts a sample token into an anchored regex that matches
// the sample and close variants of it.
func GeneratePattern(sample string) string {
	// Start with escaped literal
	pattern := regexp.QuoteMeta(sample)

	// Replace spaces with flexible whitespace (spaces don't need escaping by QuoteMeta)
	pattern = strings.ReplaceAll(pattern, " ", "\\s+")

	// Runs of digits in a sample are usually incidental, generalize them
	pattern = digitRun.ReplaceAllString(pattern, "[0-9]+")

	return "^" + pattern + "$"
}
