package git

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeStashName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{input: "0", expected: "stash@{0}"},
		{input: " 12 ", expected: "stash@{12}"},
		{input: "stash@{3}", expected: "stash@{3}"},
		{input: "refs/stash", expected: "refs/stash"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, NormalizeStashName(tt.input))
		})
	}
}

func TestParseStashLine(t *testing.T) {
	t.Parallel()

	t.Run("parses selector, hash and subject", func(t *testing.T) {
		t.Parallel()
		stash, err := parseStashLine("/repo", "stash@{4}\x1fabc123\x1fOn main: fix \x1f parser")
		require.NoError(t, err)
		require.Equal(t, Stash{
			Name:     "stash@{4}",
			Index:    4,
			SHA:      "abc123",
			Message:  "On main: fix \x1f parser",
			RepoPath: "/repo",
		}, stash)
	})

	t.Run("rejects lines with missing fields", func(t *testing.T) {
		t.Parallel()
		_, err := parseStashLine("/repo", "stash@{0} abc123")
		require.ErrorContains(t, err, "unexpected stash list line")
	})

	t.Run("rejects unexpected selectors", func(t *testing.T) {
		t.Parallel()
		_, err := parseStashLine("/repo", "refs/stash\x1fabc123\x1fmsg")
		require.ErrorContains(t, err, "unexpected stash selector")
	})
}
