package rewrite_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imp-nix/regref/internal/analyze"
	"github.com/imp-nix/regref/internal/extract"
	"github.com/imp-nix/regref/internal/pathset"
	"github.com/imp-nix/regref/internal/rewrite"
)

func classifiedSuggestion(src, tail, suggestion string) analyze.Classified {
	occs, err := extract.Extract("test.rgc", []byte(src))
	if err != nil || len(occs) == 0 {
		panic("test fixture does not extract cleanly")
	}

	suggested, _ := pathset.Parse(suggestion)

	return analyze.Classified{
		Occurrence:    occs[0],
		Verdict:       analyze.Broken,
		Suggestion:    suggested,
		HasSuggestion: true,
	}
}

func TestPlanAndApplyPreservesSurroundingText(t *testing.T) {
	t.Parallel()

	src := []byte(`value = registry.users.alice.email`)
	classified := classifiedSuggestion(string(src), "users.alice.email", "people.alice.email")

	plan, err := rewrite.Plan("test.rgc", src, []analyze.Classified{classified})
	require.NoError(t, err)
	require.Len(t, plan.Edits, 1)

	rewritten := rewrite.Apply(plan)
	assert.Equal(t, `value = registry.people.alice.email`, string(rewritten))
}

func TestPlanLeavesRootAndDotUntouched(t *testing.T) {
	t.Parallel()

	src := []byte("value = (\n  registry\n    .deeply\n    .nested.path\n)")
	classified := classifiedSuggestion(string(src), "deeply.nested.path", "moved.path")

	plan, err := rewrite.Plan("test.rgc", src, []analyze.Classified{classified})
	require.NoError(t, err)

	rewritten := rewrite.Apply(plan)
	assert.Equal(t, "value = (\n  registry\n    .moved.path\n)", string(rewritten))
}

func TestPlanSkipsValidAndUnsuggestedReferences(t *testing.T) {
	t.Parallel()

	occ := analyze.Classified{
		Occurrence: extract.Occurrence{File: "test.rgc"},
		Verdict:    analyze.Valid,
	}

	unsuggested := analyze.Classified{
		Occurrence: extract.Occurrence{File: "test.rgc"},
		Verdict:    analyze.Broken,
	}

	plan, err := rewrite.Plan("test.rgc", []byte("x"), []analyze.Classified{occ, unsuggested})
	require.NoError(t, err)
	assert.Empty(t, plan.Edits)
}

func TestApplyNoEditsReturnsOriginal(t *testing.T) {
	t.Parallel()

	original := []byte("unchanged")
	plan := rewrite.FilePlan{Path: "test.rgc", Original: original}

	assert.Equal(t, original, rewrite.Apply(plan))
}

func TestWriteAtomicallyReplacesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.rgc")

	src := []byte(`value = registry.users.alice.email`)
	require.NoError(t, os.WriteFile(path, src, 0o644))

	classified := classifiedSuggestion(string(src), "users.alice.email", "people.alice.email")

	plan, err := rewrite.Plan(path, src, []analyze.Classified{classified})
	require.NoError(t, err)

	require.NoError(t, rewrite.Write(plan))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `value = registry.people.alice.email`, string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no leftover temp file after a successful write")
}

func TestWriteWithNoEditsIsNoop(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.rgc")

	require.NoError(t, os.WriteFile(path, []byte("unchanged"), 0o644))

	plan := rewrite.FilePlan{Path: path, Original: []byte("unchanged")}
	require.NoError(t, rewrite.Write(plan))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "unchanged", string(got))
}

func TestPreviewDoesNotTouchDisk(t *testing.T) {
	t.Parallel()

	src := []byte(`value = registry.users.alice.email`)
	classified := classifiedSuggestion(string(src), "users.alice.email", "people.alice.email")

	plan, err := rewrite.Plan("test.rgc", src, []analyze.Classified{classified})
	require.NoError(t, err)

	original, rewritten := rewrite.Preview(plan)
	assert.Equal(t, src, original)
	assert.Equal(t, `value = registry.people.alice.email`, string(rewritten))
}
