package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"household-ledger/internal/store"

	"github.com/spf13/cobra"
)

func newExportCmd(load appLoader) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full export document to a file",
		Long:  `Write tasks, lists, agenda, finances and theme as one JSON document. Use --out - for stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			raw, err := json.MarshalIndent(app.Store.Export(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode export: %w", err)
			}

			if out == "-" {
				_, err = cmd.OutOrStdout().Write(append(raw, '\n'))
				return err
			}
			if out == "" {
				out = store.ExportFileName(time.Now())
			}
			if err := os.WriteFile(out, raw, 0o600); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default cia-backup-YYYY-MM-DD.json)")
	return cmd
}
