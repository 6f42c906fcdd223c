package command

import (
	"context"
	"fmt"
)

// Logger records a failure under a component tag. It must not fail.
type Logger interface {
	LogError(err error, component string)
}

// Presenter shows a generic, non-technical failure message to the user
type Presenter interface {
	ShowFailureMessage(text string) any
}

// Recovery configures the error boundary around a command
type Recovery struct {
	Logger         Logger
	Presenter      Presenter
	Component      string
	FailureMessage string
}

// RunWithRecovery runs op and contains any error it returns or panic it raises.
// A failure is logged once under rec.Component and rec.FailureMessage is shown;
// the result then carries whatever the presenter returned. The original error
// never leaves this function.
func RunWithRecovery(ctx context.Context, rec Recovery, op func(ctx context.Context) (Result, error)) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			result = rec.report(fmt.Errorf("panic: %v", r))
		}
	}()

	res, err := op(ctx)
	if err != nil {
		return rec.report(err)
	}
	return res
}

func (rec Recovery) report(err error) Result {
	if rec.Logger != nil {
		rec.Logger.LogError(err, rec.Component)
	}
	var shown any
	if rec.Presenter != nil {
		shown = rec.Presenter.ShowFailureMessage(rec.FailureMessage)
	}
	return Reported(shown)
}
