package commands

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cryptoutil/internal/util/byteenc"
)

// parseHex accepts an optional 0x prefix and ignores spaces and colons.
func parseHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")
	s = strings.NewReplacer(" ", "", ":", "").Replace(s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return b, nil
}

// decode <hex>: read a uint64 from the window at --offset.
func decodeCmd() *cobra.Command {
	var offset int
	cmd := &cobra.Command{
		Use:   "decode <hex>",
		Short: "Decode a uint64 from an 8-byte window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := parseHex(args[0])
			if err != nil {
				return err
			}
			order, err := cfg.ByteOrder()
			if err != nil {
				return err
			}
			v, err := order.Decode(b, offset)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}
			logger.Debug("decoded window",
				zap.Stringer("order", order),
				zap.Int("offset", offset),
				zap.Int("length", len(b)))
			fmt.Fprintf(cmd.OutOrStdout(), "%d (0x%016x)\n", v, v)
			return nil
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "start of the 8-byte window")
	return cmd
}

// encode <value>: print the 8-byte encoding of a decimal or 0x-prefixed value.
func encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <value>",
		Short: "Encode a uint64 as 8 bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}
			order, err := cfg.ByteOrder()
			if err != nil {
				return err
			}
			var buf [byteenc.Uint64Size]byte
			order.Encode(v, buf[:])
			logger.Debug("encoded value", zap.Stringer("order", order), zap.Uint64("value", v))
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf[:]))
			return nil
		},
	}
}
