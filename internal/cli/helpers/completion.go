package helpers

import (
	"github.com/spf13/cobra"

	"stashit.dev/stashit/internal/git"
)

// CompleteStashes is a helper for cobra.ValidArgsFunction that returns all
// stash names in the repository.
func CompleteStashes(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var (
		repoRoot string
		err      error
	)
	if dir, _ := cmd.Flags().GetString("cwd"); dir != "" {
		repoRoot, err = git.GetRepoRootFrom(dir)
	} else {
		repoRoot, err = git.GetRepoRoot()
	}
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	stashes, err := git.NewBackend().ListStashes(cmd.Context(), repoRoot)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}

	names := make([]string, 0, len(stashes))
	for _, stash := range stashes {
		names = append(names, stash.Name+"\t"+stash.Message)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
