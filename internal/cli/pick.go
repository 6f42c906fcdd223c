package cli

import (
	"github.com/spf13/cobra"

	"stashit.dev/stashit/internal/actions/stashpick"
	"stashit.dev/stashit/internal/cli/helpers"
	"stashit.dev/stashit/internal/runtime"
)

// newPickCmd creates the pick command
func newPickCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick a stash to drop",
		Long: `Interactively pick a stash to drop.

Type to filter the list, press Enter to drop the highlighted stash. Declining
the confirmation returns to the list; Esc leaves without dropping anything.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				confirm, err := helpers.ConfirmSetting(ctx.RepoRoot, force)
				if err != nil {
					return err
				}

				res, err := stashpick.Action(ctx, stashpick.Options{Confirm: confirm})
				if err != nil {
					return err
				}
				return helpers.Report(ctx, res)
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Drop the picked stash without asking for confirmation.")

	return cmd
}
