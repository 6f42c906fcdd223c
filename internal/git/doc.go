// Package git provides low-level Git operations.
//
// It wraps git command execution and go-git repository access for:
//   - Repository discovery (root directory, refs/stash presence)
//   - Stash list parsing and lookup
//   - Stash deletion
//
// This package should be the only place where direct git commands are executed.
package git
