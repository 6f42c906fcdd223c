package testhelpers

import (
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
// Scenes never change the working directory, so they are safe for parallel tests.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// Cleanup is handled by t.TempDir().
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir := t.TempDir()
	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "")
}

// StashSceneSetup returns a setup that commits once and then creates one stash
// per message. The last message ends up as stash@{0}.
func StashSceneSetup(messages ...string) SceneSetup {
	return func(scene *Scene) error {
		if err := BasicSceneSetup(scene); err != nil {
			return err
		}
		for _, message := range messages {
			if err := scene.Repo.CreateStash(message); err != nil {
				return err
			}
		}
		return nil
	}
}
