// Package scenario provides a high-level test scenario that combines a Scene
// with a runtime Context backed by real git and scripted prompts.
package scenario

import (
	"testing"

	"github.com/stretchr/testify/require"

	"stashit.dev/stashit/internal/git"
	"stashit.dev/stashit/testhelpers"
)

// Scenario combines a real repository with a context whose prompts, picker,
// logger and presenter are fakes.
type Scenario struct {
	T *testing.T
	*testhelpers.FakeContext
	Scene *testhelpers.Scene
}

// NewScenario creates a new Scenario with an optional setup function.
// Scenarios do not touch the process environment or working directory, so
// they are safe for parallel tests.
func NewScenario(t *testing.T, setup testhelpers.SceneSetup) *Scenario {
	t.Helper()

	scene := testhelpers.NewScene(t, setup)
	fc := testhelpers.NewFakeContext(scene.Dir)
	fc.Context.Backend = git.NewBackend()

	return &Scenario{
		T:           t,
		FakeContext: fc,
		Scene:       scene,
	}
}

// WithStashes creates one stash per message; the last one becomes stash@{0}.
func (s *Scenario) WithStashes(messages ...string) *Scenario {
	s.T.Helper()
	for _, message := range messages {
		require.NoError(s.T, s.Scene.Repo.CreateStash(message))
	}
	return s
}

// StashMessages returns the current stash subjects, newest first.
func (s *Scenario) StashMessages() []string {
	s.T.Helper()
	messages, err := s.Scene.Repo.StashMessages()
	require.NoError(s.T, err)
	return messages
}
