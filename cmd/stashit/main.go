package main

import (
	"errors"
	"fmt"
	"os"

	"stashit.dev/stashit/internal/cli"
	"stashit.dev/stashit/internal/command"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		// Reported failures were already shown to the user
		if !errors.Is(err, command.ErrReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
