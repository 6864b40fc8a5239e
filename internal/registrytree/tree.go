// Package registrytree models the recursive registry value the external
// evaluator produces: either a leaf (any non-attribute-set value, including a
// callable attribute set carrying a functor marker) or an inner node mapping
// segment names to sub-trees. It is a thin tagged-variant wrapper around
// zclconf/go-cty's cty.Value — the same universal configuration-value
// representation the teacher uses throughout its config package — rather than
// an inheritance hierarchy, per the spec's explicit design note.
package registrytree

import "github.com/zclconf/go-cty/cty"

// FunctorAttribute is the well-known attribute name that marks an otherwise
// object-shaped value as callable, and therefore a terminal rather than an
// inner node to recurse into.
const FunctorAttribute = "__functor"

// Node is one position in a registry tree.
type Node struct {
	value cty.Value
}

// New wraps a decoded cty.Value as the root of a registry tree.
func New(value cty.Value) Node {
	return Node{value: value}
}

// IsInner reports whether n is an attribute set that should be recursed
// into: an object- or map-typed value that does not carry the functor
// marker attribute.
func (n Node) IsInner() bool {
	if n.value.IsNull() || !n.value.IsKnown() {
		return false
	}

	typ := n.value.Type()
	if !typ.IsObjectType() && !typ.IsMapType() {
		return false
	}

	return !n.IsFunctor()
}

// IsFunctor reports whether n is an attribute set carrying the functor
// marker attribute, making it a callable terminal rather than an inner node.
func (n Node) IsFunctor() bool {
	typ := n.value.Type()
	if !typ.IsObjectType() {
		return false
	}

	return typ.HasAttribute(FunctorAttribute)
}

// Children returns n's child names mapped to their sub-trees. It is only
// meaningful when IsInner() is true; called otherwise it returns an empty map.
func (n Node) Children() map[string]Node {
	if !n.IsInner() {
		return nil
	}

	out := make(map[string]Node)

	typ := n.value.Type()
	if typ.IsObjectType() {
		for name, v := range n.value.AsValueMap() {
			out[name] = New(v)
		}

		return out
	}

	// Map-typed values decode the same way: AsValueMap works for both.
	for name, v := range n.value.AsValueMap() {
		out[name] = New(v)
	}

	return out
}
