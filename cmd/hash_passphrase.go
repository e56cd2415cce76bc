package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"household-ledger/internal/util"

	"github.com/spf13/cobra"
)

func newHashPassphraseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-passphrase [passphrase]",
		Short: "Print the value for auth.passphrase_hash",
		Long:  `Hash a household passphrase. Without an argument the passphrase is read from the first line of stdin.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pass string
			if len(args) == 1 {
				pass = args[0]
			} else {
				line, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				pass = strings.TrimRight(line, "\r\n")
			}

			hash, err := util.HashPassword(pass)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
