package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stashit.dev/stashit/internal/actions/stashpick"
	"stashit.dev/stashit/internal/command"
	"stashit.dev/stashit/testhelpers"
	"stashit.dev/stashit/testhelpers/scenario"
)

// =============================================================================
// Test Session - scripts a user working through the stash picker
// =============================================================================

// TestSession wraps a scenario and provides a fluent interface for scripting
// picks and answers. Tests using this read like a recorded terminal session.
type TestSession struct {
	t        *testing.T
	scenario *scenario.Scenario
	result   command.Result
}

// NewTestSession creates a session over a repository with one stash per message.
func NewTestSession(t *testing.T, messages ...string) *TestSession {
	t.Helper()
	s := scenario.NewScenario(t, testhelpers.BasicSceneSetup).WithStashes(messages...)
	return &TestSession{t: t, scenario: s}
}

// Log prints a message to the test output.
func (s *TestSession) Log(msg string) *TestSession {
	s.t.Helper()
	s.t.Log(msg)
	return s
}

// Pick queues the stash the user highlights the next time the picker opens.
func (s *TestSession) Pick(name string) *TestSession {
	s.scenario.Picker.Picks = append(s.scenario.Picker.Picks, name)
	return s
}

// Confirm queues a "Yes" answer to the next confirmation prompt.
func (s *TestSession) Confirm() *TestSession {
	s.scenario.Prompter.Answers = append(s.scenario.Prompter.Answers, testhelpers.Answer(command.YesChoice))
	return s
}

// Decline queues a "No" answer to the next confirmation prompt.
func (s *TestSession) Decline() *TestSession {
	s.scenario.Prompter.Answers = append(s.scenario.Prompter.Answers, testhelpers.Answer(command.NoChoice))
	return s
}

// RunPicker runs the picker flow until it settles.
func (s *TestSession) RunPicker(opts stashpick.Options) *TestSession {
	s.t.Helper()
	res, err := stashpick.Action(s.scenario.Context, opts)
	require.NoError(s.t, err)
	s.result = res
	return s
}

// Outcome asserts the outcome of the last run.
func (s *TestSession) Outcome(expected command.Outcome) *TestSession {
	s.t.Helper()
	require.Equal(s.t, expected, s.result.Outcome, "result value: %v", s.result.Value)
	return s
}

// Stashes asserts the remaining stash subjects, newest first.
func (s *TestSession) Stashes(expected ...string) *TestSession {
	s.t.Helper()
	if expected == nil {
		expected = []string{}
	}
	require.Equal(s.t, expected, s.scenario.StashMessages())
	return s
}

// PickerOpened asserts how many times the picker was shown.
func (s *TestSession) PickerOpened(times int) *TestSession {
	s.t.Helper()
	require.Len(s.t, s.scenario.Picker.Shown, times)
	return s
}

// Prompts asserts the confirmation messages shown so far.
func (s *TestSession) Prompts(expected ...string) *TestSession {
	s.t.Helper()
	require.Equal(s.t, expected, s.scenario.Prompter.Messages)
	return s
}

// NothingLogged asserts that no failure was logged or shown.
func (s *TestSession) NothingLogged() *TestSession {
	s.t.Helper()
	require.Empty(s.t, s.scenario.Logger.Errors)
	require.Empty(s.t, s.scenario.Presenter.Messages)
	return s
}
