package registrytree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zclconf/go-cty/cty"

	"github.com/imp-nix/regref/internal/registrytree"
)

func TestIsInner(t *testing.T) {
	t.Parallel()

	obj := registrytree.New(cty.ObjectVal(map[string]cty.Value{"a": cty.StringVal("x")}))
	assert.True(t, obj.IsInner())

	leaf := registrytree.New(cty.StringVal("x"))
	assert.False(t, leaf.IsInner())

	null := registrytree.New(cty.NullVal(cty.String))
	assert.False(t, null.IsInner())

	unknown := registrytree.New(cty.UnknownVal(cty.String))
	assert.False(t, unknown.IsInner())
}

func TestIsFunctor(t *testing.T) {
	t.Parallel()

	functor := registrytree.New(cty.ObjectVal(map[string]cty.Value{
		registrytree.FunctorAttribute: cty.True,
	}))
	assert.True(t, functor.IsFunctor())
	assert.False(t, functor.IsInner(), "a functor is callable, not a container to recurse into")

	plain := registrytree.New(cty.ObjectVal(map[string]cty.Value{"a": cty.StringVal("x")}))
	assert.False(t, plain.IsFunctor())
}

func TestChildren(t *testing.T) {
	t.Parallel()

	node := registrytree.New(cty.ObjectVal(map[string]cty.Value{
		"a": cty.StringVal("x"),
		"b": cty.StringVal("y"),
	}))

	children := node.Children()
	assert.Len(t, children, 2)
	assert.Contains(t, children, "a")
	assert.Contains(t, children, "b")
}

func TestChildrenOnLeafIsEmpty(t *testing.T) {
	t.Parallel()

	leaf := registrytree.New(cty.StringVal("x"))
	assert.Nil(t, leaf.Children())
}
