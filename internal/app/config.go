package app

import (
	"fmt"
	"io"
	"os"

	"cryptoutil/internal/util/byteenc"
)

// Config holds runtime options collected from command-line flags.
type Config struct {
	Debug    bool      // force debug logging
	LogLevel string    // zap level name; empty means info
	Order    string    // default byte order for decode/encode, "big" or "little"
	Stderr   io.Writer // log destination; defaults to os.Stderr
}

// ByteOrder resolves the configured default byte order.
func (c Config) ByteOrder() (byteenc.Order, error) {
	if c.Order == "" {
		return byteenc.BigEndian, nil
	}
	o, err := byteenc.ParseOrder(c.Order)
	if err != nil {
		return 0, fmt.Errorf("config: %w", err)
	}
	return o, nil
}

func (c Config) stderr() io.Writer {
	if c.Stderr == nil {
		return os.Stderr
	}
	return c.Stderr
}
