package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	stashiterrors "stashit.dev/stashit/internal/errors"
)

// stashRef is the reference git keeps the stash reflog on
const stashRef = plumbing.ReferenceName("refs/stash")

// GetRepoRoot returns the root directory of the Git repository containing the
// working directory
func GetRepoRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return GetRepoRootFrom(wd)
}

// GetRepoRootFrom returns the root directory of the Git repository containing dir
func GetRepoRootFrom(dir string) (string, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit:          true,
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", stashiterrors.ErrNotARepository, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}

// HasStashRef reports whether refs/stash exists in the repository at repoPath.
// A repository that has never been stashed (or whose last stash was dropped)
// has no such reference.
func HasStashRef(repoPath string) (bool, error) {
	repo, err := gogit.PlainOpenWithOptions(repoPath, &gogit.PlainOpenOptions{
		EnableDotGitCommonDir: true,
	})
	if err != nil {
		return false, fmt.Errorf("%w: %w", stashiterrors.ErrNotARepository, err)
	}

	_, err = repo.Reference(stashRef, true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", stashRef, err)
	}
	return true, nil
}

// GetCommonDir returns the git directory shared by all worktrees of the
// repository at repoPath. In a linked worktree .git is a file, so this is the
// place for repository-wide state.
func GetCommonDir(ctx context.Context, repoPath string) (string, error) {
	dir, err := RunGitCommandInDir(ctx, repoPath, "rev-parse", "--git-common-dir")
	if err != nil {
		return "", fmt.Errorf("%w: %w", stashiterrors.ErrNotARepository, err)
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(repoPath, dir)
	}
	return filepath.Clean(dir), nil
}
