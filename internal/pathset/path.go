// Package pathset defines the dotted-path value type shared across regref's
// pipeline (reference tails, valid-path sets, rename map keys and values) and
// the path flattener that turns a registry tree into a Set.
package pathset

import "strings"

// Path is a non-empty ordered sequence of identifier segments, rendered with
// "." as the separator. Equality is structural: two Paths with the same
// segments in the same order are equal regardless of how they were built.
type Path struct {
	segments []string
}

// New builds a Path from already-split segments. It panics if segments is
// empty; every Path the pipeline constructs has at least one segment (the
// root "registry" traversal itself always has one selector or more once the
// leading root is stripped, and valid-path-set entries always have at least
// one segment by construction of the flattener).
func New(segments ...string) Path {
	if len(segments) == 0 {
		panic("pathset: a Path must have at least one segment")
	}

	cp := make([]string, len(segments))
	copy(cp, segments)

	return Path{segments: cp}
}

// Parse splits a dotted string into a Path. It returns false if s is empty.
func Parse(s string) (Path, bool) {
	if s == "" {
		return Path{}, false
	}

	return New(strings.Split(s, ".")...), true
}

// String renders the Path back to its dotted form.
func (p Path) String() string {
	return strings.Join(p.segments, ".")
}

// Segments returns the Path's segments. The returned slice is owned by the
// caller; mutating it does not affect p.
func (p Path) Segments() []string {
	cp := make([]string, len(p.segments))
	copy(cp, p.segments)

	return cp
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.segments)
}

// Equal reports structural equality with other.
func (p Path) Equal(other Path) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}

	for i, seg := range p.segments {
		if seg != other.segments[i] {
			return false
		}
	}

	return true
}

// Join appends a child Path after p, returning prefix.child as a new Path.
// The rename map uses it to put a matched suffix under its new prefix.
func (p Path) Join(child Path) Path {
	combined := make([]string, 0, len(p.segments)+len(child.segments))
	combined = append(combined, p.segments...)
	combined = append(combined, child.segments...)

	return Path{segments: combined}
}

// HasPrefix reports whether p begins with prefix at a segment boundary: every
// segment of prefix matches p's leading segments exactly. A raw string
// prefix match (e.g. "home" against "homepage.x") is deliberately not enough.
func (p Path) HasPrefix(prefix Path) bool {
	if prefix.Len() > p.Len() {
		return false
	}

	for i, seg := range prefix.segments {
		if p.segments[i] != seg {
			return false
		}
	}

	return true
}

// TrimPrefix returns the segments of p after prefix, assuming HasPrefix(prefix)
// holds and p is strictly longer than prefix. It panics when prefix is not a
// prefix of p, or when it equals p and would leave no remainder; its caller
// (rename.Map.Lookup) checks both first.
func (p Path) TrimPrefix(prefix Path) Path {
	if !p.HasPrefix(prefix) {
		panic("pathset: TrimPrefix called with a non-prefix")
	}

	remainder := p.segments[prefix.Len():]
	if len(remainder) == 0 {
		panic("pathset: TrimPrefix called with prefix == p, leaving no remainder")
	}

	return New(remainder...)
}

// Leaf returns the final segment of p.
func (p Path) Leaf() string {
	return p.segments[len(p.segments)-1]
}
