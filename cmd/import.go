package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd(load appLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the stored data with an export document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			app, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Store.Import(cmd.Context(), raw); err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %s\n", args[0])
			return nil
		},
	}
}
