package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If STASHIT_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.stashit/logs/stashit.log
func GetLogFilePath() string {
	if customPath := os.Getenv("STASHIT_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "stashit.log"
	}

	return filepath.Join(homeDir, ".stashit", "logs", "stashit.log")
}
