package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"stashit.dev/stashit/internal/command"
	"stashit.dev/stashit/internal/git"
)

func testStashes() []git.Stash {
	return []git.Stash{
		{Name: "stash@{0}", Index: 0, Message: "On main: fix login", RepoPath: "/repo"},
		{Name: "stash@{1}", Index: 1, Message: "WIP on main: refactor parser", RepoPath: "/repo"},
		{Name: "stash@{2}", Index: 2, Message: "On feature: fix tests", RepoPath: "/repo"},
	}
}

func sendKey(m StashSelectModel, msg tea.KeyMsg) StashSelectModel {
	updated, _ := m.Update(msg)
	return updated.(StashSelectModel)
}

func typeText(m StashSelectModel, text string) StashSelectModel {
	return sendKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestStashSelectModel(t *testing.T) {
	t.Parallel()

	t.Run("selects the stash under the cursor", func(t *testing.T) {
		t.Parallel()
		m := NewStashSelectModel("Select", testStashes())

		m = sendKey(m, tea.KeyMsg{Type: tea.KeyDown})
		m = sendKey(m, tea.KeyMsg{Type: tea.KeyEnter})

		require.True(t, m.Done)
		require.False(t, m.Canceled)
		require.NotNil(t, m.Selected)
		require.Equal(t, "stash@{1}", m.Selected.Name)
	})

	t.Run("cursor wraps around", func(t *testing.T) {
		t.Parallel()
		m := NewStashSelectModel("Select", testStashes())

		m = sendKey(m, tea.KeyMsg{Type: tea.KeyUp})
		require.Equal(t, 2, m.Cursor)

		m = sendKey(m, tea.KeyMsg{Type: tea.KeyDown})
		require.Equal(t, 0, m.Cursor)
	})

	t.Run("filters by message", func(t *testing.T) {
		t.Parallel()
		m := NewStashSelectModel("Select", testStashes())

		m = typeText(m, "fix")

		require.Len(t, m.Filtered, 2)
		require.Equal(t, "stash@{0}", m.Filtered[0].Name)
		require.Equal(t, "stash@{2}", m.Filtered[1].Name)
	})

	t.Run("enter does nothing when the filter matches nothing", func(t *testing.T) {
		t.Parallel()
		m := NewStashSelectModel("Select", testStashes())

		m = typeText(m, "nothing matches this")
		m = sendKey(m, tea.KeyMsg{Type: tea.KeyEnter})

		require.Empty(t, m.Filtered)
		require.False(t, m.Done)
		require.Nil(t, m.Selected)
		require.Contains(t, m.View(), "No stashes match the filter.")
	})

	t.Run("cursor stays in range when the filter matches nothing", func(t *testing.T) {
		t.Parallel()
		m := NewStashSelectModel("Select", testStashes())

		m = typeText(m, "nothing matches this")
		m = sendKey(m, tea.KeyMsg{Type: tea.KeyUp})
		require.Equal(t, 0, m.Cursor)

		m = sendKey(m, tea.KeyMsg{Type: tea.KeyDown})
		require.Equal(t, 0, m.Cursor)
	})

	t.Run("escape cancels", func(t *testing.T) {
		t.Parallel()
		m := NewStashSelectModel("Select", testStashes())

		m = sendKey(m, tea.KeyMsg{Type: tea.KeyEsc})

		require.True(t, m.Done)
		require.True(t, m.Canceled)
		require.Nil(t, m.Selected)
		require.Empty(t, m.View())
	})
}

func TestFindChoice(t *testing.T) {
	t.Parallel()
	options := []command.Choice{command.YesChoice, command.NoChoice}

	require.Equal(t, &options[0], findChoice(options, "Yes"))
	require.True(t, findChoice(options, "No").IsDismiss)
	require.Nil(t, findChoice(options, ""))
}

func TestPromptsRequireInteractiveTerminal(t *testing.T) {
	t.Setenv("STASHIT_TEST_NO_INTERACTIVE", "1")

	choice, err := NewSurveyPrompter().PresentChoice("Delete?", []command.Choice{command.YesChoice, command.NoChoice})
	require.ErrorIs(t, err, ErrInteractiveDisabled)
	require.Nil(t, choice)

	stash, err := StashPicker{}.PickStash(testStashes())
	require.ErrorIs(t, err, ErrInteractiveDisabled)
	require.Nil(t, stash)
}
