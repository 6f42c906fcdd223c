// Package command implements the confirm-then-mutate protocol shared by
// destructive stashit commands.
//
// A command resolves its arguments from an Invocation, then hands a Protocol
// to Execute, which:
//   - asks for confirmation unless explicitly told not to
//   - resumes a fallback Continuation when the user declines
//   - runs the mutation and wraps its value in a Result
//   - contains any failure with RunWithRecovery (log once, show a generic message)
//
// Execute never returns an error. Callers tell outcomes apart through
// Result.Outcome.
package command
