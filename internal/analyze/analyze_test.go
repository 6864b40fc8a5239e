package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imp-nix/regref/internal/analyze"
	"github.com/imp-nix/regref/internal/extract"
	"github.com/imp-nix/regref/internal/pathset"
	"github.com/imp-nix/regref/internal/rename"
)

func setOf(t *testing.T, paths ...string) *pathset.Set {
	t.Helper()

	s := pathset.NewSet()

	for _, p := range paths {
		parsed, ok := pathset.Parse(p)
		require.True(t, ok)
		s.Add(parsed)
	}

	return s
}

func occ(tail string) extract.Occurrence {
	return extract.Occurrence{File: "test.rgc", Tail: tail, Full: "registry." + tail}
}

func TestAnalyzeValidReference(t *testing.T) {
	t.Parallel()

	valid := setOf(t, "users.alice.email")

	classified := analyze.Analyze([]extract.Occurrence{occ("users.alice.email")}, valid, nil)
	require.Len(t, classified, 1)
	assert.Equal(t, analyze.Valid, classified[0].Verdict)
	assert.False(t, classified[0].HasSuggestion)
}

func TestAnalyzeBrokenWithRenameSuggestion(t *testing.T) {
	t.Parallel()

	valid := setOf(t, "people.alice.email")
	renames := rename.New([]rename.Pair{
		{Old: pathset.New("users"), New: pathset.New("people")},
	})

	classified := analyze.Analyze([]extract.Occurrence{occ("users.alice.email")}, valid, renames)
	require.Len(t, classified, 1)
	assert.Equal(t, analyze.Broken, classified[0].Verdict)
	require.True(t, classified[0].HasSuggestion)
	assert.Equal(t, "people.alice.email", classified[0].Suggestion.String())
}

func TestAnalyzeRenameSuggestionMustLandInValidSet(t *testing.T) {
	t.Parallel()

	valid := setOf(t, "teams.infra.lead")
	renames := rename.New([]rename.Pair{
		{Old: pathset.New("users"), New: pathset.New("people")},
	})

	classified := analyze.Analyze([]extract.Occurrence{occ("users.alice.email")}, valid, renames)
	require.Len(t, classified, 1)
	assert.Equal(t, analyze.Broken, classified[0].Verdict)
	assert.False(t, classified[0].HasSuggestion, "a rename that still doesn't land in the valid set is no suggestion at all")
}

func TestAnalyzeBrokenWithLeafSuggestion(t *testing.T) {
	t.Parallel()

	valid := setOf(t, "people.alice.email")

	classified := analyze.Analyze([]extract.Occurrence{occ("users.alice.email")}, valid, nil)
	require.Len(t, classified, 1)
	assert.Equal(t, analyze.Broken, classified[0].Verdict)
	require.True(t, classified[0].HasSuggestion)
	assert.Equal(t, "people.alice.email", classified[0].Suggestion.String())
}

func TestAnalyzeBrokenWithAmbiguousLeafNoSuggestion(t *testing.T) {
	t.Parallel()

	valid := setOf(t, "people.alice.email", "teams.infra.email")

	classified := analyze.Analyze([]extract.Occurrence{occ("users.alice.email")}, valid, nil)
	require.Len(t, classified, 1)
	assert.Equal(t, analyze.Broken, classified[0].Verdict)
	assert.False(t, classified[0].HasSuggestion)
}

func TestAnalyzeRenamePreferredOverLeafSuggestion(t *testing.T) {
	t.Parallel()

	valid := setOf(t, "people.alice.email", "other.completely.unrelated.email")
	renames := rename.New([]rename.Pair{
		{Old: pathset.New("users"), New: pathset.New("people")},
	})

	classified := analyze.Analyze([]extract.Occurrence{occ("users.alice.email")}, valid, renames)
	require.Len(t, classified, 1)
	require.True(t, classified[0].HasSuggestion)
	assert.Equal(t, "people.alice.email", classified[0].Suggestion.String())
}
