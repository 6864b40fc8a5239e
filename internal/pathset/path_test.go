package pathset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imp-nix/regref/internal/pathset"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantStr  string
		wantLen  int
	}{
		{name: "single segment", input: "users", wantOK: true, wantStr: "users", wantLen: 1},
		{name: "multi segment", input: "users.alice.email", wantOK: true, wantStr: "users.alice.email", wantLen: 3},
		{name: "empty string", input: "", wantOK: false},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			p, ok := pathset.Parse(test.input)
			require.Equal(t, test.wantOK, ok)

			if !test.wantOK {
				return
			}

			assert.Equal(t, test.wantStr, p.String())
			assert.Equal(t, test.wantLen, p.Len())
		})
	}
}

func TestHasPrefixIsSegmentBoundary(t *testing.T) {
	t.Parallel()

	homepage := pathset.New("homepage", "x")
	home := pathset.New("home")

	assert.False(t, homepage.HasPrefix(home), "raw string prefix match must not count")

	users := pathset.New("users")
	usersAlice := pathset.New("users", "alice")

	assert.True(t, usersAlice.HasPrefix(users))
	assert.False(t, users.HasPrefix(usersAlice), "a shorter path is never prefixed by a longer one")
}

func TestTrimPrefix(t *testing.T) {
	t.Parallel()

	full := pathset.New("users", "alice", "email")
	prefix := pathset.New("users", "alice")

	remainder := full.TrimPrefix(prefix)
	assert.Equal(t, "email", remainder.String())
}

func TestTrimPrefixPanicsOnNonPrefix(t *testing.T) {
	t.Parallel()

	full := pathset.New("users", "alice")
	other := pathset.New("teams", "infra")

	assert.Panics(t, func() {
		full.TrimPrefix(other)
	})
}

func TestTrimPrefixPanicsWhenNoRemainder(t *testing.T) {
	t.Parallel()

	p := pathset.New("users", "alice")

	assert.Panics(t, func() {
		p.TrimPrefix(p)
	})
}

func TestJoin(t *testing.T) {
	t.Parallel()

	parent := pathset.New("users", "alice")
	child := pathset.New("email")

	assert.Equal(t, "users.alice.email", parent.Join(child).String())
}

func TestEqual(t *testing.T) {
	t.Parallel()

	a := pathset.New("users", "alice")
	b := pathset.New("users", "alice")
	c := pathset.New("users", "bob")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestLeaf(t *testing.T) {
	t.Parallel()

	p := pathset.New("users", "alice", "email")
	assert.Equal(t, "email", p.Leaf())
}

func TestNewPanicsOnEmpty(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		pathset.New()
	})
}
