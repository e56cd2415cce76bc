package cmd

import (
	"context"
	"fmt"
	"os"

	"household-ledger/internal/bootstrap"
	"household-ledger/internal/config"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Every invocation gets fresh flags.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "household-ledger",
		Short: "Household organizer: tasks, shopping lists, agenda and finances",
		Long: `A self-hosted household organizer.

Tasks, shopping lists, events, reminders and the family budget are kept as
three snapshots in a local SQLite database and served over a JSON API.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default ./config.yaml when present)")

	load := func(ctx context.Context) (*bootstrap.App, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		app := bootstrap.NewApp(cfg)
		if err := app.Initialize(ctx); err != nil {
			_ = app.Close()
			return nil, err
		}
		return app, nil
	}

	root.AddCommand(
		newServeCmd(load),
		newExportCmd(load),
		newImportCmd(load),
		newResetCmd(load),
		newHashPassphraseCmd(),
		newVersionCmd(),
	)
	return root
}

// appLoader loads configuration and initializes the application.
type appLoader func(ctx context.Context) (*bootstrap.App, error)

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
