package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cryptoutil/internal/crypto"
	"cryptoutil/internal/util/memzero"
)

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func writeOutput(cmd *cobra.Command, path string, b []byte) error {
	if path == "" || path == "-" {
		_, err := cmd.OutOrStdout().Write(b)
		return err
	}
	return os.WriteFile(path, b, 0o600)
}

func sealCmd() *cobra.Command {
	var (
		in, out string
		params  = crypto.DefaultParams()
	)
	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Encrypt input under a passphrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			pt, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			env, err := crypto.Seal(passphrase, pt, params)
			memzero.Zero(pt)
			if err != nil {
				return fmt.Errorf("seal: %w", err)
			}
			logger.Debug("sealed envelope",
				zap.Int("bytes", len(env)),
				zap.Uint64("scrypt_n", params.N))
			return writeOutput(cmd, out, env)
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the envelope")
	cmd.Flags().StringVar(&in, "in", "", "input file (default stdin)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	cmd.Flags().Uint64Var(&params.N, "scrypt-n", params.N, "scrypt cost parameter N")
	cmd.Flags().Uint64Var(&params.R, "scrypt-r", params.R, "scrypt block size r")
	cmd.Flags().Uint64Var(&params.P, "scrypt-p", params.P, "scrypt parallelism p")
	return cmd
}

func openCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "open",
		Short: "Decrypt an envelope produced by seal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			env, err := readInput(cmd, in)
			if err != nil {
				return err
			}
			pt, err := crypto.Open(passphrase, env)
			if err != nil {
				return fmt.Errorf("open: %w", err)
			}
			logger.Debug("opened envelope", zap.Int("bytes", len(pt)))
			err = writeOutput(cmd, out, pt)
			memzero.Zero(pt)
			return err
		},
	}
	cmd.Flags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the envelope")
	cmd.Flags().StringVar(&in, "in", "", "envelope file (default stdin)")
	cmd.Flags().StringVar(&out, "out", "", "output file (default stdout)")
	return cmd
}
