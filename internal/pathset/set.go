package pathset

// Set is the flattened collection of valid dotted paths. Invariant: if
// "a.b.c" is present, its ancestors "a" and "a.b" are present too — the
// flattener is responsible for upholding this by emitting every intermediate
// node, not just leaves.
type Set struct {
	paths map[string]Path
}

// NewSet builds an empty Set.
func NewSet() *Set {
	return &Set{paths: make(map[string]Path)}
}

// Add inserts p into the set. Adding the same Path twice is a no-op.
func (s *Set) Add(p Path) {
	s.paths[p.String()] = p
}

// Contains reports whether p is a member of the set.
func (s *Set) Contains(p Path) bool {
	_, ok := s.paths[p.String()]
	return ok
}

// Len returns the number of distinct paths in the set.
func (s *Set) Len() int {
	return len(s.paths)
}

// All returns every path in the set, order unspecified — callers that need a
// deterministic order (e.g. the registry dump command) must sort themselves.
func (s *Set) All() []Path {
	out := make([]Path, 0, len(s.paths))
	for _, p := range s.paths {
		out = append(out, p)
	}

	return out
}

// EndingIn returns every path in the set whose final segment equals leaf,
// used by the leaf suggester to enumerate suffix-match candidates.
func (s *Set) EndingIn(leaf string) []Path {
	var out []Path

	for _, p := range s.paths {
		if p.Leaf() == leaf {
			out = append(out, p)
		}
	}

	return out
}
