// Package errors provides sentinel errors and custom error types for the stashit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrStashNotFound indicates that a stash entry does not exist
	ErrStashNotFound = errors.New("stash not found")

	// ErrNoStashes indicates that the repository has no stash entries at all
	ErrNoStashes = errors.New("no stash entries found")
)

// StashNotFoundError represents an error when a stash entry is not found
type StashNotFoundError struct {
	StashName string
}

func (e *StashNotFoundError) Error() string {
	return fmt.Sprintf("stash %s does not exist", e.StashName)
}

// Is returns true if the target error is ErrStashNotFound
func (e *StashNotFoundError) Is(target error) bool {
	return target == ErrStashNotFound
}

// NewStashNotFoundError creates a new StashNotFoundError
func NewStashNotFoundError(stashName string) *StashNotFoundError {
	return &StashNotFoundError{StashName: stashName}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
