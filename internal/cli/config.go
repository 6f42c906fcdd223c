package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"stashit.dev/stashit/internal/cli/helpers"
	"stashit.dev/stashit/internal/config"
	"stashit.dev/stashit/internal/runtime"
)

// newConfigCmd creates the config command
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Get and set repository configuration",
		Long: `Get and set repository configuration values.

Examples:
  stashit config get stash.confirmDrop
  stashit config set stash.confirmDrop false`,
	}

	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

// newConfigGetCmd creates the config get command
func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				switch key := args[0]; key {
				case config.KeyConfirmDrop:
					confirm, err := config.GetConfirmDrop(ctx.RepoRoot)
					if err != nil {
						return fmt.Errorf("failed to get %s: %w", key, err)
					}
					// Unset means the command default, which is to confirm
					ctx.Splog.Info("%t", confirm == nil || *confirm)
				default:
					return fmt.Errorf("unknown configuration key: %s", key)
				}
				return nil
			})
		},
	}
}

// newConfigSetCmd creates the config set command
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				key, value := args[0], args[1]
				switch key {
				case config.KeyConfirmDrop:
					enabled, err := strconv.ParseBool(value)
					if err != nil {
						return fmt.Errorf("invalid value for %s: %q (expected true or false)", key, value)
					}
					if err := config.SetConfirmDrop(ctx.RepoRoot, enabled); err != nil {
						return fmt.Errorf("failed to set %s: %w", key, err)
					}
					ctx.Splog.Info("Set %s to %t", key, enabled)
				default:
					return fmt.Errorf("unknown configuration key: %s", key)
				}
				return nil
			})
		},
	}
}
