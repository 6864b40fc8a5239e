// Package registryload materializes the current valid-path set by invoking
// the external evaluator, decoding its JSON output into a cty.Value (using
// the same ImpliedType-then-Unmarshal idiom the teacher uses to absorb
// arbitrary subprocess JSON into a typed value without a predeclared
// schema), wrapping it as a registry tree, and flattening it.
//
// Loading is abstracted behind the Loader interface so tests can substitute a
// fixture path set without invoking any subprocess, per the spec's design
// note on treating the evaluator as an I/O boundary.
package registryload

import (
	"context"

	ctyjson "github.com/zclconf/go-cty/cty/json"

	"github.com/imp-nix/regref/internal/errors"
	"github.com/imp-nix/regref/internal/evaluator"
	"github.com/imp-nix/regref/internal/pathset"
	"github.com/imp-nix/regref/internal/registrytree"
)

// Loader produces the current valid-path set. Load is fatal-on-error: either
// the evaluator failed, or its output could not be decoded.
type Loader interface {
	Load(ctx context.Context) (*pathset.Set, error)
}

// MalformedOutputError wraps a decode failure of the evaluator's stdout.
type MalformedOutputError struct {
	Cause error
}

func (e *MalformedOutputError) Error() string {
	return "malformed evaluator output: " + e.Cause.Error()
}

func (e *MalformedOutputError) Unwrap() error { return e.Cause }

// SubprocessLoader invokes the real evaluator subprocess.
type SubprocessLoader struct {
	Options evaluator.Options
}

// Load implements Loader.
func (l SubprocessLoader) Load(ctx context.Context) (*pathset.Set, error) {
	stdout, err := evaluator.Run(ctx, l.Options)
	if err != nil {
		return nil, err
	}

	return decode(stdout)
}

// FixtureLoader returns a fixed path set, for tests that need a Loader
// without invoking any subprocess.
type FixtureLoader struct {
	Paths *pathset.Set
}

// Load implements Loader.
func (l FixtureLoader) Load(context.Context) (*pathset.Set, error) {
	return l.Paths, nil
}

func decode(raw []byte) (*pathset.Set, error) {
	typ, err := ctyjson.ImpliedType(raw)
	if err != nil {
		return nil, &MalformedOutputError{Cause: err}
	}

	value, err := ctyjson.Unmarshal(raw, typ)
	if err != nil {
		return nil, &MalformedOutputError{Cause: err}
	}

	tree := registrytree.New(value)

	set, err := pathset.Flatten(tree)
	if err != nil {
		return nil, errors.WithStackTrace(err)
	}

	return set, nil
}
