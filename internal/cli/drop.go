package cli

import (
	"github.com/spf13/cobra"

	"stashit.dev/stashit/internal/actions/stashdrop"
	"stashit.dev/stashit/internal/cli/helpers"
	"stashit.dev/stashit/internal/command"
	"stashit.dev/stashit/internal/runtime"
)

// defaultStash is dropped when no stash is named, matching git stash drop
const defaultStash = "stash@{0}"

// newDropCmd creates the drop command
func newDropCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "drop [stash]",
		Aliases: []string{"delete", "rm"},
		Short:   "Delete a stash entry after confirmation",
		Long: `Delete a stash entry after confirmation.

The stash can be given as stash@{n} or just n; it defaults to stash@{0}.
Dropped stashes cannot be recovered through stashit, so you are asked to
confirm unless --force is given or stash.confirmDrop is false.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: helpers.CompleteStashes,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				name := defaultStash
				if len(args) > 0 {
					name = args[0]
				}

				stash, err := ctx.Backend.FindStash(ctx.Context, ctx.RepoRoot, name)
				if err != nil {
					return err
				}

				confirm, err := helpers.ConfirmSetting(ctx.RepoRoot, force)
				if err != nil {
					return err
				}

				res := stashdrop.Action(ctx, command.Direct(), stashdrop.Args{
					Confirm: confirm,
					Target:  stashdrop.TargetFromStash(*stash),
				})
				return helpers.Report(ctx, res)
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Drop the stash without asking for confirmation.")

	return cmd
}
