package git

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	stashiterrors "stashit.dev/stashit/internal/errors"
)

// fieldSeparator splits the fields of the stash list format (ASCII unit separator)
const fieldSeparator = "\x1f"

// stashListFormat prints reflog selector, commit hash and reflog subject
const stashListFormat = "--format=%gd%x1f%H%x1f%gs"

var stashSelectorRe = regexp.MustCompile(`^stash@\{(\d+)\}$`)

// Stash is a single entry of a repository's stash list
type Stash struct {
	Name     string `json:"name"`
	Index    int    `json:"index"`
	SHA      string `json:"sha"`
	Message  string `json:"message"`
	RepoPath string `json:"repoPath"`
}

// NormalizeStashName turns "2" into "stash@{2}". Anything else is returned unchanged.
func NormalizeStashName(name string) string {
	name = strings.TrimSpace(name)
	if _, err := strconv.Atoi(name); err == nil {
		return fmt.Sprintf("stash@{%s}", name)
	}
	return name
}

// parseStashLine parses one line of `git stash list` output in stashListFormat
func parseStashLine(repoPath, line string) (Stash, error) {
	parts := strings.SplitN(line, fieldSeparator, 3)
	if len(parts) != 3 {
		return Stash{}, fmt.Errorf("unexpected stash list line: %q", line)
	}

	match := stashSelectorRe.FindStringSubmatch(parts[0])
	if match == nil {
		return Stash{}, fmt.Errorf("unexpected stash selector: %q", parts[0])
	}
	index, err := strconv.Atoi(match[1])
	if err != nil {
		return Stash{}, fmt.Errorf("invalid stash index %q: %w", match[1], err)
	}

	return Stash{
		Name:     parts[0],
		Index:    index,
		SHA:      parts[1],
		Message:  parts[2],
		RepoPath: repoPath,
	}, nil
}

// Backend performs stash operations by shelling out to git
type Backend struct{}

// NewBackend creates a new stash backend
func NewBackend() *Backend {
	return &Backend{}
}

// ListStashes returns the stash entries of the repository at repoPath, newest first
func (b *Backend) ListStashes(ctx context.Context, repoPath string) ([]Stash, error) {
	hasStash, err := HasStashRef(repoPath)
	if err != nil {
		return nil, err
	}
	if !hasStash {
		return []Stash{}, nil
	}

	lines, err := NewCommandRunner(repoPath).RunLines(ctx, "stash", "list", stashListFormat)
	if err != nil {
		return nil, fmt.Errorf("failed to list stashes: %w", err)
	}

	stashes := make([]Stash, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		stash, err := parseStashLine(repoPath, line)
		if err != nil {
			return nil, err
		}
		stashes = append(stashes, stash)
	}
	return stashes, nil
}

// FindStash looks up a stash entry by name ("stash@{n}" or "n")
func (b *Backend) FindStash(ctx context.Context, repoPath, name string) (*Stash, error) {
	name = NormalizeStashName(name)
	stashes, err := b.ListStashes(ctx, repoPath)
	if err != nil {
		return nil, err
	}
	if len(stashes) == 0 {
		return nil, stashiterrors.ErrNoStashes
	}
	for i := range stashes {
		if stashes[i].Name == name {
			return &stashes[i], nil
		}
	}
	return nil, stashiterrors.NewStashNotFoundError(name)
}

// DeleteStash drops stashName from the repository at repoPath and returns git's
// report of what was dropped
func (b *Backend) DeleteStash(ctx context.Context, repoPath, stashName string) (string, error) {
	output, err := NewCommandRunner(repoPath).Run(ctx, "stash", "drop", stashName)
	if err != nil {
		return "", err
	}
	if output == "" {
		output = fmt.Sprintf("Dropped %s", stashName)
	}
	return output, nil
}
