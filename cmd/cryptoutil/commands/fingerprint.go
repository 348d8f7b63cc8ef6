package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cryptoutil/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint <hex>",
		Short: "Print a short fingerprint of hex input",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseHex(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Fingerprint: %s\n", crypto.Fingerprint(b))
			return nil
		},
	}
	return cmd
}
