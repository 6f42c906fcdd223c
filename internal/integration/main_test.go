// Package integration provides end-to-end tests of stash flows against real
// git repositories, with scripted prompts in place of the terminal.
package integration

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("STASHIT_NO_LOG_FILE", "1")
	_ = os.Setenv("STASHIT_TEST_NO_INTERACTIVE", "1")
	os.Exit(m.Run())
}
