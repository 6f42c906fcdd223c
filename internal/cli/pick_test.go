package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stashit.dev/stashit/internal/tui"
	"stashit.dev/stashit/testhelpers"
)

func TestPickCommand(t *testing.T) {
	t.Parallel()

	t.Run("requires a terminal", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.StashSceneSetup("only"))

		_, err := runStashit(t, scene.Dir, "pick")
		require.ErrorIs(t, err, tui.ErrInteractiveDisabled)

		messages, err := scene.Repo.StashMessages()
		require.NoError(t, err)
		require.Equal(t, []string{"On main: only"}, messages)
	})

	t.Run("no stashes", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

		output, err := runStashit(t, scene.Dir, "pick")
		require.NoError(t, err)
		require.Contains(t, output, "No stash entries found.")
	})
}
