// Package rename implements the explicit old->new prefix rewrite map: an
// ordered collection of rules with longest-prefix-wins, segment-boundary
// lookup.
package rename

import (
	"sort"

	"github.com/imp-nix/regref/internal/pathset"
)

// Pair is one source->target prefix rule, as supplied on the command line
// (--rename old=new).
type Pair struct {
	Old pathset.Path
	New pathset.Path
}

// Map is the compiled rename map: Pairs kept ordered by descending source
// length (ties broken lexicographically), so Lookup can stop at the first
// match and it is guaranteed to be the longest one.
type Map struct {
	pairs []Pair
}

// New builds a Map from pairs, sorted so Lookup finds the longest matching
// key first. Invariant assumed of the caller: keys (Old) are unique; this is
// validated by runconfig when parsing --rename flags, not re-checked here.
func New(pairs []Pair) *Map {
	sorted := make([]Pair, len(pairs))
	copy(sorted, pairs)

	sort.SliceStable(sorted, func(i, j int) bool {
		li, lj := sorted[i].Old.Len(), sorted[j].Old.Len()
		if li != lj {
			return li > lj
		}

		return sorted[i].Old.String() < sorted[j].Old.String()
	})

	return &Map{pairs: sorted}
}

// Lookup rewrites p according to the longest matching rule. It returns the
// rewritten path and true, or the zero Path and false if no rule applies.
//
//   - an exact key match (Old == p) returns New directly;
//   - else the longest key k such that p begins with "k." (segment-boundary,
//     not raw string prefix) returns New.Join(remainder), where remainder is
//     p with the k. prefix stripped;
//   - else false.
func (m *Map) Lookup(p pathset.Path) (pathset.Path, bool) {
	for _, pair := range m.pairs {
		if pair.Old.Equal(p) {
			return pair.New, true
		}
	}

	for _, pair := range m.pairs {
		if !p.HasPrefix(pair.Old) || p.Len() <= pair.Old.Len() {
			continue
		}

		remainder := p.TrimPrefix(pair.Old)

		return pair.New.Join(remainder), true
	}

	return pathset.Path{}, false
}
