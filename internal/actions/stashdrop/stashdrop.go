// Package stashdrop provides functionality for deleting stash entries after confirmation.
package stashdrop

import (
	"context"
	"fmt"

	"stashit.dev/stashit/internal/command"
	"stashit.dev/stashit/internal/git"
	"stashit.dev/stashit/internal/runtime"
	"stashit.dev/stashit/internal/utils"
)

const (
	// Component tags failures of this command in the log
	Component = "StashDropCommand"
	// FailureMessage is the generic text shown when the drop fails
	FailureMessage = "Unable to delete stash"

	maxLabelLength = 80
)

// Target identifies the stash to drop. Every field is required.
type Target struct {
	StashName string
	Message   string
	RepoPath  string
}

// TargetFromStash builds a target from a stash list entry
func TargetFromStash(stash git.Stash) *Target {
	return &Target{
		StashName: stash.Name,
		Message:   stash.Message,
		RepoPath:  stash.RepoPath,
	}
}

func (t *Target) valid() bool {
	return t != nil && t.StashName != "" && t.Message != "" && t.RepoPath != ""
}

// Args contains the arguments for dropping a stash
type Args struct {
	// Confirm asks before dropping. Nil means true.
	Confirm *bool
	Target  *Target
	// Fallback resumes the flow this command was started from when the
	// user declines.
	Fallback command.Continuation
}

// ConfirmMessage is the question shown before dropping a stash with message
func ConfirmMessage(message string) string {
	return fmt.Sprintf("Delete stashed changes '%s'?", utils.TruncateWithEllipsis(message, maxLabelLength))
}

// Resolve folds a stash picked from a list into args. Any other invocation
// returns args unchanged.
func Resolve(inv command.Invocation, args Args) Args {
	entity, ok := inv.Selection()
	if !ok {
		return args
	}
	stash, ok := entity.(git.Stash)
	if !ok {
		return args
	}
	args.Target = TargetFromStash(stash)
	return args
}

// Action resolves args against the invocation and drops the stash
func Action(ctx *runtime.Context, inv command.Invocation, args Args) command.Result {
	return Execute(ctx, Resolve(inv, args))
}

// Execute drops args.Target. A missing or incomplete target is a no-op.
// Failures are logged and reported, never returned.
func Execute(ctx *runtime.Context, args Args) command.Result {
	if !args.Target.valid() {
		return command.NoResult()
	}

	if args.Confirm == nil {
		confirm := true
		args.Confirm = &confirm
	}

	target := *args.Target
	return command.Execute(ctx.Context, command.Protocol{
		Confirm:  args.Confirm,
		Message:  ConfirmMessage(target.Message),
		Prompter: ctx.Prompter,
		Fallback: args.Fallback,
		Mutate: func(c context.Context) (any, error) {
			return ctx.Backend.DeleteStash(c, target.RepoPath, target.StashName)
		},
		Recovery: command.Recovery{
			Logger:         ctx.Logger,
			Presenter:      ctx.Presenter,
			Component:      Component,
			FailureMessage: FailureMessage,
		},
	})
}
