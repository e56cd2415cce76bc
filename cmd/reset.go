package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var errResetAborted = errors.New("reset aborted")

func newResetCmd(load appLoader) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all data and restore the default categories",
		Long:  `Delete every task, list, event, reminder, transaction and goal. Asks twice unless --yes is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				in := bufio.NewReader(cmd.InOrStdin())
				out := cmd.OutOrStdout()
				if !confirm(in, out, "This deletes all household and finance data. Continue? [y/N] ") ||
					!confirm(in, out, "Are you absolutely sure? This cannot be undone. [y/N] ") {
					return errResetAborted
				}
			}

			app, err := load(cmd.Context())
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.Store.ResetAll(cmd.Context()); err != nil {
				return fmt.Errorf("reset: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "all data deleted")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip both confirmations")
	return cmd
}

func confirm(in *bufio.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "s", "sim":
		return true
	}
	return false
}
