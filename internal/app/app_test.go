package app_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cryptoutil/internal/app"
	"cryptoutil/internal/util/byteenc"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		logger, err := app.NewLogger(app.Config{Stderr: &bytes.Buffer{}})
		require.NoError(t, err)
		require.True(t, logger.Core().Enabled(zap.InfoLevel))
		require.False(t, logger.Core().Enabled(zap.DebugLevel))
	})
	t.Run("level", func(t *testing.T) {
		logger, err := app.NewLogger(app.Config{LogLevel: "warn", Stderr: &bytes.Buffer{}})
		require.NoError(t, err)
		require.True(t, logger.Core().Enabled(zap.WarnLevel))
		require.False(t, logger.Core().Enabled(zap.InfoLevel))
	})
	t.Run("debug overrides", func(t *testing.T) {
		logger, err := app.NewLogger(app.Config{LogLevel: "error", Debug: true, Stderr: &bytes.Buffer{}})
		require.NoError(t, err)
		require.True(t, logger.Core().Enabled(zap.DebugLevel))
	})
	t.Run("bad level", func(t *testing.T) {
		_, err := app.NewLogger(app.Config{LogLevel: "loud"})
		require.Error(t, err)
	})
}

func TestNewLogger_Output(t *testing.T) {
	buf := &bytes.Buffer{}
	logger, err := app.NewLogger(app.Config{Stderr: buf})
	require.NoError(t, err)
	logger.Info("decoded", zap.Uint64("value", 42))
	require.NoError(t, logger.Sync())
	require.Contains(t, buf.String(), "INFO")
	require.Contains(t, buf.String(), "decoded")
	require.Contains(t, buf.String(), "value")
	require.Contains(t, buf.String(), "42")
}

func TestConfig_ByteOrder(t *testing.T) {
	o, err := app.Config{}.ByteOrder()
	require.NoError(t, err)
	require.Equal(t, byteenc.BigEndian, o)

	o, err = app.Config{Order: "le"}.ByteOrder()
	require.NoError(t, err)
	require.Equal(t, byteenc.LittleEndian, o)

	_, err = app.Config{Order: "middle"}.ByteOrder()
	require.Error(t, err)
}
