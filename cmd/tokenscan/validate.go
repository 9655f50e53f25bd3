package main

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"tokenscan/internal/rules"
)

// newValidateCommand creates the validate command.
func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a rules directory",
		Long:  "Load the rules directory and report how many rules each file contributes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, printer, err := dirAndPrinter(cmd)
			if err != nil {
				return err
			}

			set, err := rules.NewLoader(afero.NewOsFs(), printer).Load(cmd.Context(), dir)
			if err != nil {
				return err
			}

			for _, file := range set.Files() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rules\n", file.Path, len(file.Rules))
			}

			if set.Total() == 0 {
				return fmt.Errorf("no valid rules loaded from %s", dir)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[✓] %d rules loaded from %d files\n",
				set.Total(), len(set.Files()))

			return nil
		},
	}
}
