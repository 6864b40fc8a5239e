// Package analyze implements the suggestion engine: it classifies each
// extracted reference as valid or broken and, for broken references,
// proposes a replacement via the rename map (longest-prefix match) or the
// leaf-name heuristic (unique suffix match), discarding any proposal that
// does not itself land in the valid-path set.
package analyze

import (
	"github.com/imp-nix/regref/internal/extract"
	"github.com/imp-nix/regref/internal/leafsuggest"
	"github.com/imp-nix/regref/internal/pathset"
	"github.com/imp-nix/regref/internal/rename"
)

// Verdict is a classified reference's outcome.
type Verdict int

const (
	// Valid means the reference's tail is a member of the valid-path set.
	Valid Verdict = iota
	// Broken means the reference's tail is not a member of the valid-path set.
	Broken
)

// Classified decorates an extracted Occurrence with its verdict and, if
// Broken, an optional suggestion.
type Classified struct {
	extract.Occurrence

	Verdict       Verdict
	Suggestion    pathset.Path
	HasSuggestion bool
}

// Analyze classifies occurrences against valid and renames, in the order
// given (source order, per the extractor's contract).
func Analyze(occurrences []extract.Occurrence, valid *pathset.Set, renames *rename.Map) []Classified {
	out := make([]Classified, 0, len(occurrences))

	for _, occ := range occurrences {
		out = append(out, classifyOne(occ, valid, renames))
	}

	return out
}

func classifyOne(occ extract.Occurrence, valid *pathset.Set, renames *rename.Map) Classified {
	tail, ok := pathset.Parse(occ.Tail)
	if !ok {
		// Occurrence.Tail is always non-empty by construction of the
		// extractor, but guard rather than panic on a malformed input.
		return Classified{Occurrence: occ, Verdict: Broken}
	}

	if valid.Contains(tail) {
		return Classified{Occurrence: occ, Verdict: Valid}
	}

	if renames != nil {
		if renamed, ok := renames.Lookup(tail); ok && valid.Contains(renamed) {
			return Classified{Occurrence: occ, Verdict: Broken, Suggestion: renamed, HasSuggestion: true}
		}
	}

	if suggestion, ok := leafsuggest.Suggest(tail, valid); ok && valid.Contains(suggestion) {
		return Classified{Occurrence: occ, Verdict: Broken, Suggestion: suggestion, HasSuggestion: true}
	}

	return Classified{Occurrence: occ, Verdict: Broken}
}
