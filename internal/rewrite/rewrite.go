// Package rewrite applies suggestions to file contents by byte-range
// substitution, preserving all surrounding text exactly. It builds a FilePlan
// per file (an ordered, disjoint list of edits), applies it by splicing, and
// supports both a preview (diff-ready original/rewritten pair) and an atomic
// on-disk write.
package rewrite

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"

	"github.com/imp-nix/regref/internal/analyze"
	"github.com/imp-nix/regref/internal/errors"
)

// Edit is one byte-range replacement.
type Edit struct {
	Start, End  int
	Replacement string
}

// FilePlan is one file's original contents plus its ordered, disjoint edits.
type FilePlan struct {
	Path     string
	Original []byte
	Edits    []Edit
}

// Plan builds a FilePlan for path from its original contents and its
// classified references: one edit per broken reference carrying a
// suggestion, covering only the reference's tail (the "registry." prefix is
// left untouched). Files with no suggested edits yield a FilePlan with an
// empty Edits slice; callers should treat that as "nothing to do" rather
// than an error.
func Plan(path string, original []byte, classified []analyze.Classified) (FilePlan, error) {
	plan := FilePlan{Path: path, Original: original}

	for _, c := range classified {
		if c.Verdict != analyze.Broken || !c.HasSuggestion {
			continue
		}

		plan.Edits = append(plan.Edits, Edit{
			Start:       c.TailStart,
			End:         c.End,
			Replacement: c.Suggestion.String(),
		})
	}

	sort.Slice(plan.Edits, func(i, j int) bool { return plan.Edits[i].Start < plan.Edits[j].Start })

	for i := 1; i < len(plan.Edits); i++ {
		if plan.Edits[i].Start < plan.Edits[i-1].End {
			panic("rewrite: overlapping edit ranges (extractor invariant violated)")
		}
	}

	return plan, nil
}

// Apply splices plan's edits into its original contents and returns the
// rewritten bytes. It does not touch disk; callers decide whether that's a
// preview or a precursor to Write.
func Apply(plan FilePlan) []byte {
	if len(plan.Edits) == 0 {
		return plan.Original
	}

	var out bytes.Buffer

	cursor := 0
	for _, e := range plan.Edits {
		out.Write(plan.Original[cursor:e.Start])
		out.WriteString(e.Replacement)
		cursor = e.End
	}

	out.Write(plan.Original[cursor:])

	return out.Bytes()
}

// Preview returns the original and rewritten contents of plan for an
// external diff renderer to compare, without writing anything to disk.
func Preview(plan FilePlan) (original, rewritten []byte) {
	return plan.Original, Apply(plan)
}

// Write atomically replaces path's contents with plan's rewritten bytes:
// write to a sibling temp file, preserve the original file's mode bits, then
// rename over the original. If plan has no edits, Write is a no-op.
func Write(plan FilePlan) error {
	if len(plan.Edits) == 0 {
		return nil
	}

	info, err := os.Stat(plan.Path)
	if err != nil {
		return errors.WithStackTrace(err)
	}

	dir := filepath.Dir(plan.Path)

	tmp, err := os.CreateTemp(dir, ".regref-*")
	if err != nil {
		return errors.WithStackTrace(err)
	}

	tmpPath := tmp.Name()

	rewritten := Apply(plan)

	if _, err := tmp.Write(rewritten); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return errors.WithStackTrace(err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)

		return errors.WithStackTrace(err)
	}

	if err := os.Chmod(tmpPath, info.Mode()); err != nil {
		os.Remove(tmpPath)

		return errors.WithStackTrace(err)
	}

	if err := os.Rename(tmpPath, plan.Path); err != nil {
		os.Remove(tmpPath)

		return errors.WithStackTrace(err)
	}

	return nil
}
