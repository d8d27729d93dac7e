package tui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplogFileLogging(t *testing.T) {
	t.Run("mirrors messages to the log file", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), ".git", ".prship_log")

		splog, err := NewSplogWithConfig(logPath)
		require.NoError(t, err)
		splog.Info("pushed branch feat/x")
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "pushed branch feat/x")
		require.Contains(t, string(data), "level=INFO")
	})

	t.Run("quiet mode still writes to the file", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), ".prship_log")

		splog, err := NewSplogWithConfig(logPath)
		require.NoError(t, err)
		splog.SetQuiet(true)
		splog.Info("silent on console")
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "silent on console")
	})

	t.Run("debug messages reach the file without PRSHIP_DEBUG", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), ".prship_log")

		splog, err := NewSplogWithConfig(logPath)
		require.NoError(t, err)
		splog.Debug("tracing detail")
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "tracing detail")
	})
}

func TestCreateLumberjackLogger(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PRSHIP_LOG_MAX_SIZE", "")
		t.Setenv("PRSHIP_LOG_MAX_BACKUPS", "")
		t.Setenv("PRSHIP_LOG_MAX_AGE", "")

		logger := createLumberjackLogger("/tmp/prship.log")
		require.Equal(t, 1, logger.MaxSize)
		require.Equal(t, 2, logger.MaxBackups)
		require.Equal(t, 30, logger.MaxAge)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PRSHIP_LOG_MAX_SIZE", "5")
		t.Setenv("PRSHIP_LOG_MAX_BACKUPS", "0")
		t.Setenv("PRSHIP_LOG_MAX_AGE", "7")

		logger := createLumberjackLogger("/tmp/prship.log")
		require.Equal(t, 5, logger.MaxSize)
		require.Equal(t, 0, logger.MaxBackups)
		require.Equal(t, 7, logger.MaxAge)
	})

	t.Run("invalid values keep defaults", func(t *testing.T) {
		t.Setenv("PRSHIP_LOG_MAX_SIZE", "not-a-number")
		t.Setenv("PRSHIP_LOG_MAX_AGE", "-3")

		logger := createLumberjackLogger("/tmp/prship.log")
		require.Equal(t, 1, logger.MaxSize)
		require.Equal(t, 30, logger.MaxAge)
	})
}
