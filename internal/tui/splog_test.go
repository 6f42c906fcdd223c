package tui

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplog(t *testing.T) {
	t.Run("writes info and failure messages to the console", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithConfig(&buf, "")
		require.NoError(t, err)

		splog.Info("Dropped %s", "stash@{0}")
		shown := splog.ShowFailureMessage("Unable to delete stash")

		require.Equal(t, "Unable to delete stash", shown)
		require.Equal(t, "Dropped stash@{0}\n❌ Unable to delete stash\n", buf.String())
	})

	t.Run("keeps error details off the console unless debugging", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		var buf bytes.Buffer
		splog, err := NewSplogWithConfig(&buf, "")
		require.NoError(t, err)

		splog.LogError(errors.New("exit status 1"), "StashDropCommand")
		require.Empty(t, buf.String())

		splog.SetDebug(true)
		splog.LogError(errors.New("exit status 1"), "StashDropCommand")
		require.Equal(t, "[StashDropCommand] exit status 1\n", buf.String())
	})

	t.Run("writes errors with their component to the log file", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "logs", "stashit.log")
		var buf bytes.Buffer
		splog, err := NewSplogWithConfig(&buf, logPath)
		require.NoError(t, err)

		splog.LogError(errors.New("stash@{9} is not a valid reference"), "StashDropCommand")
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "level=ERROR")
		require.Contains(t, string(data), "component=StashDropCommand")
		require.Contains(t, string(data), "stash@{9} is not a valid reference")
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		var buf bytes.Buffer
		splog, err := NewSplogWithConfig(&buf, "")
		require.NoError(t, err)
		splog.SetDebug(true)

		splog.LogError(nil, "StashDropCommand")
		require.Empty(t, buf.String())
	})
}
