package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"tokenscan/internal/patterns"
	"tokenscan/internal/rules"
)

// newRulesCommand creates the rules inspection command with subcommands.
func newRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Inspect loaded rules",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, printer, err := dirAndPrinter(cmd)
			if err != nil {
				return err
			}

			set, err := rules.NewLoader(afero.NewOsFs(), printer).Load(cmd.Context(), dir)
			if err != nil {
				return err
			}

			if set.Total() == 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "No rules found in %s\n", dir)
				return nil
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), formatRuleList(set))

			return nil
		},
	}

	cmd.AddCommand(
		newRulesTestCommand(),
		newRulesGenerateCommand(),
	)

	return cmd
}

// formatRuleList renders rules grouped by file with zero-padded indices.
func formatRuleList(set *rules.Set) string {
	var output strings.Builder

	// Calculate padding width based on total number of rules
	indexWidth := len(strconv.Itoa(set.Total()))

	index := 1
	for _, file := range set.Files() {
		_, _ = fmt.Fprintf(&output, "%s\n", file.Path)
		for _, rule := range file.Rules {
			_, _ = fmt.Fprintf(&output, "  [%0*d] %s: %s\n", indexWidth, index, rule.Name, rule.Pattern.String())
			index++
		}
		_, _ = fmt.Fprintln(&output)
	}

	return output.String()
}

// newRulesTestCommand creates the one-off pattern testing subcommand.
func newRulesTestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test <regex> <token>",
		Short: "Test if a pattern matches a token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				return errors.New("requires pattern and token arguments")
			}

			matched, err := regexp.MatchString(args[0], args[1])
			if err != nil {
				return fmt.Errorf("invalid pattern: %w", err)
			}

			if matched {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "[✓] Pattern matches!")
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "[✗] Pattern does not match")
			}

			return nil
		},
	}
}

// newRulesGenerateCommand creates the pattern suggestion subcommand.
func newRulesGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <sample>...",
		Short: "Generate a regex pattern from a sample token",
		RunE: func(cmd *cobra.Command, args []string) error {
			sample := strings.Join(args, " ")
			if sample == "" {
				return errors.New("requires a sample token argument")
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), patterns.GeneratePattern(sample))

			return nil
		},
	}
}
