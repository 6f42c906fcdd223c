// Package runtime provides a context type that holds the backend and logger
// for use throughout the application. This avoids passing multiple parameters.
package runtime

import (
	"context"
	"fmt"
	"io"
	"os"

	"stashit.dev/stashit/internal/command"
	"stashit.dev/stashit/internal/git"
	"stashit.dev/stashit/internal/tui"
)

// Backend is the version-control service actions read and mutate stashes through
type Backend interface {
	ListStashes(ctx context.Context, repoPath string) ([]git.Stash, error)
	FindStash(ctx context.Context, repoPath, name string) (*git.Stash, error)
	DeleteStash(ctx context.Context, repoPath, stashName string) (string, error)
}

// Picker lets the user choose one stash from a list. A nil stash means the
// picker was closed without choosing.
type Picker interface {
	PickStash(stashes []git.Stash) (*git.Stash, error)
}

// Context provides access to the backend, prompts and output for commands
type Context struct {
	Context   context.Context
	Backend   Backend
	Prompter  command.Prompter
	Picker    Picker
	Logger    command.Logger
	Presenter command.Presenter
	Splog     *tui.Splog
	RepoRoot  string
}

// NewContext creates a context wired to git and the terminal UI
func NewContext(ctx context.Context, repoRoot string, splog *tui.Splog) *Context {
	return &Context{
		Context:   ctx,
		Backend:   git.NewBackend(),
		Prompter:  tui.NewSurveyPrompter(),
		Picker:    tui.StashPicker{},
		Logger:    splog,
		Presenter: splog,
		Splog:     splog,
		RepoRoot:  repoRoot,
	}
}

// NewSplog creates the application logger writing to w, including the rotated
// log file unless STASHIT_NO_LOG_FILE is set. A log file that cannot be
// created falls back to console-only logging.
func NewSplog(w io.Writer) *tui.Splog {
	logFilePath := tui.GetLogFilePath()
	if os.Getenv("STASHIT_NO_LOG_FILE") != "" {
		logFilePath = ""
	}
	splog, err := tui.NewSplogWithConfig(w, logFilePath)
	if err != nil {
		splog.Debug("file logging disabled: %v", err)
	}
	return splog
}

// GetContext returns a context for the repository containing dir, or the
// working directory when dir is empty.
func GetContext(ctx context.Context, dir string, splog *tui.Splog) (*Context, error) {
	var (
		repoRoot string
		err      error
	)
	if dir == "" {
		repoRoot, err = git.GetRepoRoot()
	} else {
		repoRoot, err = git.GetRepoRootFrom(dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get repo root: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if splog == nil {
		splog = NewSplog(os.Stdout)
	}
	return NewContext(ctx, repoRoot, splog), nil
}
