package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "stashit",
		Short: "Stashit is a command line tool for browsing and cleaning up git stashes",
		Long: `Stashit is a command line tool for browsing and cleaning up git stashes.

Destructive commands ask for confirmation unless --force is given or
stash.confirmDrop is set to false in the repository config.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringP("cwd", "C", "", "Run as if stashit was started in this directory")
	rootCmd.PersistentFlags().Bool("debug", false, "Print debug output, including logged error details")

	rootCmd.AddCommand(newDropCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newPickCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}
