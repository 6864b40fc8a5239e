// Package leafsuggest implements the leaf-name heuristic: given a broken path
// and the valid-path set, propose the single valid path that uniquely ends in
// the broken path's final segment. Ambiguity is surfaced, never ranked away.
package leafsuggest

import "github.com/imp-nix/regref/internal/pathset"

// Suggest returns the unique valid path ending in broken's final segment, or
// false if there are zero or more than one candidates.
func Suggest(broken pathset.Path, valid *pathset.Set) (pathset.Path, bool) {
	candidates := valid.EndingIn(broken.Leaf())
	if len(candidates) != 1 {
		return pathset.Path{}, false
	}

	return candidates[0], true
}
