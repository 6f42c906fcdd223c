// Package stashpick provides the interactive stash picker. Dropping a stash
// from the picker returns to the picker when the user declines.
package stashpick

import (
	"context"
	"fmt"

	"stashit.dev/stashit/internal/actions/stashdrop"
	"stashit.dev/stashit/internal/command"
	"stashit.dev/stashit/internal/runtime"
)

const (
	// Component tags failures of the picker in the log
	Component = "StashPickCommand"
	// FailureMessage is the generic text shown when the picker cannot be reopened
	FailureMessage = "Unable to show stashes"
)

// Options contains options for the stash picker
type Options struct {
	// Confirm is forwarded to the drop command. Nil means true.
	Confirm *bool
}

// Action lists the repository's stashes, lets the user pick one and drops it.
// Closing the picker returns NoResult. An empty stash list is reported on the
// console and also returns NoResult.
func Action(ctx *runtime.Context, opts Options) (command.Result, error) {
	stashes, err := ctx.Backend.ListStashes(ctx.Context, ctx.RepoRoot)
	if err != nil {
		return command.Result{}, fmt.Errorf("failed to list stashes: %w", err)
	}
	if len(stashes) == 0 {
		ctx.Splog.Info("No stash entries found.")
		return command.NoResult(), nil
	}

	selected, err := ctx.Picker.PickStash(stashes)
	if err != nil {
		return command.Result{}, err
	}
	if selected == nil {
		return command.NoResult(), nil
	}

	return stashdrop.Action(ctx, command.FromListSelection(*selected), stashdrop.Args{
		Confirm:  opts.Confirm,
		Fallback: reopen(ctx, opts),
	}), nil
}

// reopen is the continuation that brings the user back to the picker
func reopen(ctx *runtime.Context, opts Options) command.Continuation {
	return func(c context.Context) command.Result {
		rec := command.Recovery{
			Logger:         ctx.Logger,
			Presenter:      ctx.Presenter,
			Component:      Component,
			FailureMessage: FailureMessage,
		}
		return command.RunWithRecovery(c, rec, func(_ context.Context) (command.Result, error) {
			return Action(ctx, opts)
		})
	}
}
