// Package helpers provides shared helper functions for CLI commands.
package helpers

import (
	"github.com/spf13/cobra"

	"stashit.dev/stashit/internal/command"
	"stashit.dev/stashit/internal/config"
	"stashit.dev/stashit/internal/runtime"
)

// Run is a helper that provides a runtime context to a command's execution function.
// Output goes to the command's stdout so callers can capture it.
func Run(cmd *cobra.Command, fn func(ctx *runtime.Context) error) error {
	splog := runtime.NewSplog(cmd.OutOrStdout())
	defer func() { _ = splog.Close() }()

	if debug, err := cmd.Flags().GetBool("debug"); err == nil && debug {
		splog.SetDebug(true)
	}

	dir, _ := cmd.Flags().GetString("cwd")
	ctx, err := runtime.GetContext(cmd.Context(), dir, splog)
	if err != nil {
		return err
	}
	return fn(ctx)
}

// Report prints the outcome of a command. A successful mutation prints the
// backend's report; a reported failure has already been shown and only
// surfaces as command.ErrReported for the exit status.
func Report(ctx *runtime.Context, res command.Result) error {
	if res.IsSuccess() {
		if msg, ok := res.Value.(string); ok && msg != "" {
			ctx.Splog.Info(msg)
		}
	}
	ctx.Splog.Debug("command finished: %s", res.Outcome)
	return res.Err()
}

// ConfirmSetting resolves the confirmation flag for destructive commands:
// --force skips the prompt, otherwise the repository config decides, and an
// unset config leaves the command default.
func ConfirmSetting(repoRoot string, force bool) (*bool, error) {
	if force {
		confirm := false
		return &confirm, nil
	}
	return config.GetConfirmDrop(repoRoot)
}
