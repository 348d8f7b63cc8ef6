package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cryptoutil/internal/app"
)

var (
	cfg        app.Config
	logger     = zap.NewNop()
	passphrase string
)

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "cryptoutil",
		Short:        "Byte-level helpers for cryptographic data",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.Stderr = cmd.ErrOrStderr()
			if _, err := cfg.ByteOrder(); err != nil {
				return err
			}
			l, err := app.NewLogger(cfg)
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	root.PersistentFlags().BoolVar(&cfg.Debug, "debug", false, "enable debug logging")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&cfg.Order, "order", "big", "byte order: big or little")

	root.AddCommand(decodeCmd(), encodeCmd(), sealCmd(), openCmd(), fingerprintCmd())
	return root
}
