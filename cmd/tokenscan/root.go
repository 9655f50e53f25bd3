package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"tokenscan/internal/constants"
	"tokenscan/internal/logging"
	"tokenscan/internal/prompt"
	"tokenscan/internal/report"
	"tokenscan/internal/rules"
	"tokenscan/internal/scanner"
)

// newRootCommand creates the main root command. The root itself performs the
// scan; inspection helpers live in subcommands.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tokenscan",
		Short: "Test tokens against a directory of regex rules",
		RunE:  runScan,
	}

	rootCmd.PersistentFlags().StringP("directory", "d", constants.DefaultRulesDir, "Rules directory")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	rootCmd.Flags().StringP("token", "t", "", "Scan a single token")
	rootCmd.Flags().StringP("file", "f", "", "Scan tokens from a file")
	rootCmd.Flags().BoolP("interactive", "i", false, "Scan tokens from an interactive prompt")

	rootCmd.AddCommand(
		newRulesCommand(),
		newValidateCommand(),
	)

	return rootCmd
}

func runScan(cmd *cobra.Command, _ []string) error {
	token, err := cmd.Flags().GetString("token")
	if err != nil {
		return fmt.Errorf("failed to get token flag: %w", err)
	}
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		return fmt.Errorf("failed to get file flag: %w", err)
	}
	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		return fmt.Errorf("failed to get interactive flag: %w", err)
	}

	if token == "" && file == "" && !interactive {
		_ = cmd.Help()
		return errors.New("no input: provide --token, --file or --interactive")
	}

	sc, err := newScanner(cmd)
	if err != nil {
		return err
	}

	switch {
	case token != "":
		sc.ScanToken(token)
	case file != "":
		if err := sc.ScanFile(file); err != nil {
			return err
		}
	default:
		if err := sc.ScanInteractive(prompt.NewLinerPrompter()); err != nil {
			return err
		}
	}

	sc.PrintSummary()

	return nil
}

// newScanner loads the rule set once, before any scanning begins, and wires
// it to a scanner. Zero loaded rules is fatal here so a run never scans with
// an empty set.
func newScanner(cmd *cobra.Command) (*scanner.Scanner, error) {
	fs := afero.NewOsFs()

	dir, printer, err := dirAndPrinter(cmd)
	if err != nil {
		return nil, err
	}

	ctx, err := logging.New(cmd.Context(), fs, logging.Config{Level: zerolog.InfoLevel})
	if err != nil {
		// Logging is operational detail only; scanning proceeds without it.
		ctx = cmd.Context()
	}

	printer.Loading(dir)

	set, err := rules.NewLoader(fs, printer).Load(ctx, dir)
	if err != nil {
		return nil, err
	}

	if set.Total() == 0 {
		printer.Errorf("No valid rules loaded from %s", dir)
		return nil, fmt.Errorf("no valid rules loaded from %s", dir)
	}

	printer.Loaded(set.Total())

	return scanner.New(fs, set, printer), nil
}

// dirAndPrinter resolves the shared persistent flags into the rules directory
// and a color-configured printer on the command's output.
func dirAndPrinter(cmd *cobra.Command) (string, *report.Printer, error) {
	dir, err := cmd.Flags().GetString("directory")
	if err != nil {
		return "", nil, fmt.Errorf("failed to get directory flag: %w", err)
	}

	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return "", nil, fmt.Errorf("failed to get no-color flag: %w", err)
	}

	return dir, report.NewPrinter(cmd.OutOrStdout(), report.DetectColor(noColor)), nil
}
