// Package runtime provides the execution context for stashit commands.
//
// It encapsulates shared dependencies needed by actions, such as the stash
// backend, prompts, logger, and repository root path.
package runtime
