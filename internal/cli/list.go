package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"stashit.dev/stashit/internal/cli/helpers"
	"stashit.dev/stashit/internal/runtime"
	"stashit.dev/stashit/internal/tui"
)

// newListCmd creates the list command
func newListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stash entries, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				stashes, err := ctx.Backend.ListStashes(ctx.Context, ctx.RepoRoot)
				if err != nil {
					return err
				}

				if asJSON {
					data, err := json.MarshalIndent(stashes, "", "  ")
					if err != nil {
						return fmt.Errorf("failed to marshal stashes: %w", err)
					}
					ctx.Splog.Page(string(data) + "\n")
					return nil
				}

				if len(stashes) == 0 {
					ctx.Splog.Info("No stash entries found.")
					return nil
				}
				for _, stash := range stashes {
					sha := stash.SHA
					if len(sha) > 7 {
						sha = sha[:7]
					}
					ctx.Splog.Info("%s %s  %s", tui.ColorStashName(stash.Name), tui.ColorDim(sha), stash.Message)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print stash entries as JSON.")

	return cmd
}
