package command

import (
	"context"
	"errors"
)

// ErrReported marks a failure that has already been logged and shown to the
// user. It carries none of the underlying error text.
var ErrReported = errors.New("command failed; details were logged")

// Outcome distinguishes how a command invocation ended
type Outcome int

const (
	// OutcomeNone means there was nothing to do, or the user cancelled without a fallback
	OutcomeNone Outcome = iota
	// OutcomeSuccess means the mutation ran and Value holds its result
	OutcomeSuccess
	// OutcomeReported means the mutation failed and the failure was logged and shown
	OutcomeReported
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeSuccess:
		return "success"
	case OutcomeReported:
		return "reported"
	default:
		return "unknown"
	}
}

// Result is the value a command resolves to. It never carries an error.
type Result struct {
	Outcome Outcome
	Value   any
}

// NoResult is returned when there was nothing to do
func NoResult() Result {
	return Result{Outcome: OutcomeNone}
}

// Success wraps the value produced by a mutation
func Success(value any) Result {
	return Result{Outcome: OutcomeSuccess, Value: value}
}

// Reported wraps the value returned by the failure presenter
func Reported(value any) Result {
	return Result{Outcome: OutcomeReported, Value: value}
}

// IsSuccess reports whether the mutation ran successfully
func (r Result) IsSuccess() bool {
	return r.Outcome == OutcomeSuccess
}

// Err returns ErrReported for a reported failure and nil otherwise, so callers
// can set an exit status without seeing the original error.
func (r Result) Err() error {
	if r.Outcome == OutcomeReported {
		return ErrReported
	}
	return nil
}

// Continuation resumes a previous interactive flow. It takes no arguments
// beyond the context and is invoked at most once.
type Continuation func(ctx context.Context) Result

// Resume runs next if it is set and returns its result verbatim
func Resume(ctx context.Context, next Continuation) Result {
	if next == nil {
		return NoResult()
	}
	return next(ctx)
}
