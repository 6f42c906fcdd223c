package testhelpers

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"stashit.dev/stashit/internal/command"
	stashiterrors "stashit.dev/stashit/internal/errors"
	"stashit.dev/stashit/internal/git"
	"stashit.dev/stashit/internal/runtime"
	"stashit.dev/stashit/internal/tui"
)

// DeleteCall records one call to FakeBackend.DeleteStash
type DeleteCall struct {
	RepoPath  string
	StashName string
}

// FakeBackend is an in-memory stash backend
type FakeBackend struct {
	mu        sync.Mutex
	Stashes   []git.Stash
	DeleteErr error
	ListErr   error
	Deletes   []DeleteCall
}

// ListStashes returns the configured stashes
func (b *FakeBackend) ListStashes(_ context.Context, _ string) ([]git.Stash, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ListErr != nil {
		return nil, b.ListErr
	}
	return append([]git.Stash(nil), b.Stashes...), nil
}

// FindStash looks up a configured stash by name
func (b *FakeBackend) FindStash(ctx context.Context, repoPath, name string) (*git.Stash, error) {
	stashes, err := b.ListStashes(ctx, repoPath)
	if err != nil {
		return nil, err
	}
	name = git.NormalizeStashName(name)
	for i := range stashes {
		if stashes[i].Name == name {
			return &stashes[i], nil
		}
	}
	return nil, stashiterrors.NewStashNotFoundError(name)
}

// DeleteStash records the call and removes the stash unless DeleteErr is set
func (b *FakeBackend) DeleteStash(_ context.Context, repoPath, stashName string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Deletes = append(b.Deletes, DeleteCall{RepoPath: repoPath, StashName: stashName})
	if b.DeleteErr != nil {
		return "", b.DeleteErr
	}
	for i, s := range b.Stashes {
		if s.Name == stashName {
			b.Stashes = append(b.Stashes[:i], b.Stashes[i+1:]...)
			break
		}
	}
	return "Dropped " + stashName, nil
}

// FakePrompter answers confirmation prompts from a queue of choices. Once the
// queue is exhausted every prompt is closed (nil choice).
type FakePrompter struct {
	Answers  []*command.Choice
	Err      error
	Messages []string
}

// PresentChoice records message and returns the next queued answer
func (p *FakePrompter) PresentChoice(message string, _ []command.Choice) (*command.Choice, error) {
	p.Messages = append(p.Messages, message)
	if p.Err != nil {
		return nil, p.Err
	}
	if len(p.Answers) == 0 {
		return nil, nil
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}

// Answer returns a pointer to a copy of choice, for FakePrompter.Answers
func Answer(choice command.Choice) *command.Choice {
	return &choice
}

// FakePicker picks stashes from a queue of names. An empty name, or an
// exhausted queue, closes the picker.
type FakePicker struct {
	Picks []string
	Err   error
	Shown [][]git.Stash
}

// PickStash records the list shown and returns the next queued pick
func (p *FakePicker) PickStash(stashes []git.Stash) (*git.Stash, error) {
	p.Shown = append(p.Shown, stashes)
	if p.Err != nil {
		return nil, p.Err
	}
	if len(p.Picks) == 0 {
		return nil, nil
	}
	name := p.Picks[0]
	p.Picks = p.Picks[1:]
	for i := range stashes {
		if stashes[i].Name == name {
			return &stashes[i], nil
		}
	}
	return nil, nil
}

// LoggedError records one call to RecordingLogger.LogError
type LoggedError struct {
	Err       error
	Component string
}

// RecordingLogger records logged errors
type RecordingLogger struct {
	Errors []LoggedError
}

// LogError records err under component
func (l *RecordingLogger) LogError(err error, component string) {
	l.Errors = append(l.Errors, LoggedError{Err: err, Component: component})
}

// RecordingPresenter records failure messages and returns them back
type RecordingPresenter struct {
	Messages []string
}

// ShowFailureMessage records text and returns it
func (p *RecordingPresenter) ShowFailureMessage(text string) any {
	p.Messages = append(p.Messages, text)
	return text
}

// FakeContext is a runtime context wired entirely to fakes
type FakeContext struct {
	*runtime.Context
	Backend   *FakeBackend
	Prompter  *FakePrompter
	Picker    *FakePicker
	Logger    *RecordingLogger
	Presenter *RecordingPresenter
	Output    *bytes.Buffer
}

// NewFakeContext creates a runtime context for repoRoot backed by fakes.
// Console output is captured in Output.
func NewFakeContext(repoRoot string, stashes ...git.Stash) *FakeContext {
	output := &bytes.Buffer{}
	splog, _ := tui.NewSplogWithConfig(output, "")

	fc := &FakeContext{
		Backend:   &FakeBackend{Stashes: stashes},
		Prompter:  &FakePrompter{},
		Picker:    &FakePicker{},
		Logger:    &RecordingLogger{},
		Presenter: &RecordingPresenter{},
		Output:    output,
	}
	fc.Context = &runtime.Context{
		Context:   context.Background(),
		Backend:   fc.Backend,
		Prompter:  fc.Prompter,
		Picker:    fc.Picker,
		Logger:    fc.Logger,
		Presenter: fc.Presenter,
		Splog:     splog,
		RepoRoot:  repoRoot,
	}
	return fc
}

// StashFixture builds a stash entry for repoPath
func StashFixture(repoPath string, index int, message string) git.Stash {
	return git.Stash{
		Name:     fmt.Sprintf("stash@{%d}", index),
		Index:    index,
		SHA:      "0123456789abcdef0123456789abcdef01234567",
		Message:  message,
		RepoPath: repoPath,
	}
}
