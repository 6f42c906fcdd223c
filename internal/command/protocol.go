package command

import "context"

// Choice is one option of a confirmation prompt
type Choice struct {
	Label     string
	IsDismiss bool
}

// Prompter presents a question with a fixed set of choices. A nil choice
// means the prompt was closed without an answer.
type Prompter interface {
	PresentChoice(message string, options []Choice) (*Choice, error)
}

var (
	// YesChoice is the affirmative option of a confirmation prompt
	YesChoice = Choice{Label: "Yes"}
	// NoChoice is the dismissive option; closing the prompt is equivalent
	NoChoice = Choice{Label: "No", IsDismiss: true}
)

// Confirm asks message with Yes/No choices. Closing the prompt, picking the
// dismiss option, or any answer other than Yes all return false.
func Confirm(p Prompter, message string) (bool, error) {
	choice, err := p.PresentChoice(message, []Choice{YesChoice, NoChoice})
	if err != nil {
		return false, err
	}
	if choice == nil || choice.IsDismiss || choice.Label != YesChoice.Label {
		return false, nil
	}
	return true, nil
}

// ConfirmOrDefault resolves an optional confirm flag. Confirmation is
// opt-out: only an explicit false skips the prompt.
func ConfirmOrDefault(confirm *bool) bool {
	return confirm == nil || *confirm
}

// Protocol describes one destructive command: what to ask, what to do, where
// to go back to, and how to report failure.
type Protocol struct {
	Confirm  *bool
	Message  string
	Prompter Prompter
	Fallback Continuation
	Mutate   func(ctx context.Context) (any, error)
	Recovery Recovery
}

// Execute runs p: confirm if required, resume the fallback on cancellation,
// otherwise mutate. Failures from the prompt or the mutation are contained by
// RunWithRecovery.
func Execute(ctx context.Context, p Protocol) Result {
	confirm := ConfirmOrDefault(p.Confirm)

	return RunWithRecovery(ctx, p.Recovery, func(ctx context.Context) (Result, error) {
		if confirm {
			ok, err := Confirm(p.Prompter, p.Message)
			if err != nil {
				return Result{}, err
			}
			if !ok {
				return Resume(ctx, p.Fallback), nil
			}
		}

		value, err := p.Mutate(ctx)
		if err != nil {
			return Result{}, err
		}
		return Success(value), nil
	})
}
