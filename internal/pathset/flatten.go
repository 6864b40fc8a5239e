package pathset

import (
	"github.com/imp-nix/regref/internal/errors"
	"github.com/imp-nix/regref/internal/registrytree"
)

// maxFlattenDepth bounds recursion so a cyclic or pathological evaluator
// output cannot hang the flattener; exceeding it is a diagnostic, not a hang.
// The spec's own evaluator is expected to terminate, but a substituted one
// need not be trusted to the same degree.
const maxFlattenDepth = 256

// Flatten recursively walks tree, emitting the set of dotted paths reachable
// from the empty prefix. For each attribute in the current node, the path is
// "name"; inner (non-functor attribute-set) values also recurse, emitting
// their descendants under "name.<descendant>".
func Flatten(tree registrytree.Node) (*Set, error) {
	set := NewSet()

	if err := flattenInto(set, tree, nil, 0); err != nil {
		return nil, err
	}

	return set, nil
}

func flattenInto(set *Set, node registrytree.Node, prefix []string, depth int) error {
	if depth > maxFlattenDepth {
		return errors.Errorf("registry tree exceeds maximum depth %d at %q: refusing to recurse further (cyclic evaluator output?)", maxFlattenDepth, New(prefix...).String())
	}

	for name, child := range node.Children() {
		path := append(append([]string{}, prefix...), name)
		set.Add(New(path...))

		if child.IsInner() {
			if err := flattenInto(set, child, path, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}
