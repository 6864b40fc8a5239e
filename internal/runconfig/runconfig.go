// Package runconfig resolves CLI flags and environment overrides into one
// immutable Options value, threaded explicitly through the orchestrator and
// every pipeline component rather than read from process-wide globals.
package runconfig

import (
	"os"

	"github.com/imp-nix/regref/internal/errors"
	"github.com/imp-nix/regref/internal/evaluator"
	"github.com/imp-nix/regref/internal/log"
	"github.com/imp-nix/regref/internal/pathset"
	"github.com/imp-nix/regref/internal/rename"
)

const (
	// DefaultExtension is the canonical source-file extension the walker
	// and extractor target when none is configured.
	DefaultExtension = ".rgc"

	// DefaultEvaluatorBinary is the evaluator executable name used when
	// neither --evaluator nor REGREF_EVALUATOR is set.
	DefaultEvaluatorBinary = "registry-eval"

	evaluatorEnvVar = "REGREF_EVALUATOR"
	extensionEnvVar = "REGREF_EXTENSION"
)

// Options is the resolved, immutable configuration for one run of the
// pipeline.
type Options struct {
	Roots             []string
	Extension         string
	ExcludeGlobs      []string
	NoDefaultExcludes bool
	Renames           *rename.Map
	Evaluator         evaluator.Options
	Logger            log.Logger
	Verbose           bool
	JSON              bool
}

// RenamePairs parses "--rename old=new" flag values into rename.Pairs.
// A malformed pair (missing "=", or an empty side) is a configuration error,
// and so is a duplicate "old" key: rename.New's longest-prefix-wins Lookup
// requires unique keys to behave deterministically.
func RenamePairs(flagValues []string) ([]rename.Pair, error) {
	pairs := make([]rename.Pair, 0, len(flagValues))
	seen := make(map[string]bool, len(flagValues))

	for _, raw := range flagValues {
		old, newer, ok := splitOnce(raw, '=')
		if !ok || old == "" || newer == "" {
			return nil, errors.Errorf("invalid --rename value %q: expected old=new", raw)
		}

		oldPath, ok := pathset.Parse(old)
		if !ok {
			return nil, errors.Errorf("invalid --rename source %q", old)
		}

		newPath, ok := pathset.Parse(newer)
		if !ok {
			return nil, errors.Errorf("invalid --rename target %q", newer)
		}

		if seen[oldPath.String()] {
			return nil, errors.Errorf("duplicate --rename source %q", old)
		}

		seen[oldPath.String()] = true

		pairs = append(pairs, rename.Pair{Old: oldPath, New: newPath})
	}

	return pairs, nil
}

func splitOnce(s string, sep byte) (before, after string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			return s[:i], s[i+1:], true
		}
	}

	return "", "", false
}

// Flags holds the raw flag values that Resolve merges with environment
// overrides into an Options value.
type Flags struct {
	Roots             []string
	Extension         string
	ExcludeGlobs      []string
	NoDefaultExcludes bool
	RenamePairs       []string
	EvaluatorBinary   string
	Verbose           bool
	JSON              bool
	Workdir           string
}

// Resolve builds the immutable Options for one run from Flags plus
// environment overrides (REGREF_EVALUATOR, REGREF_EXTENSION), applied only
// where the corresponding flag was left at its zero value.
func Resolve(f Flags, logger log.Logger) (*Options, error) {
	extension := f.Extension
	if extension == "" {
		extension = os.Getenv(extensionEnvVar)
	}

	if extension == "" {
		extension = DefaultExtension
	}

	binary := f.EvaluatorBinary
	if binary == "" {
		binary = os.Getenv(evaluatorEnvVar)
	}

	if binary == "" {
		binary = DefaultEvaluatorBinary
	}

	pairs, err := RenamePairs(f.RenamePairs)
	if err != nil {
		return nil, err
	}

	roots := f.Roots
	if len(roots) == 0 {
		roots = []string{"."}
	}

	workdir := f.Workdir
	if workdir == "" {
		workdir = "."
	}

	return &Options{
		Roots:             roots,
		Extension:         extension,
		ExcludeGlobs:      f.ExcludeGlobs,
		NoDefaultExcludes: f.NoDefaultExcludes,
		Renames:           rename.New(pairs),
		Evaluator:         evaluator.Options{Binary: binary, Dir: workdir},
		Logger:            logger,
		Verbose:           f.Verbose,
		JSON:              f.JSON,
	}, nil
}
