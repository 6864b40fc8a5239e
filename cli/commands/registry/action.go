package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/imp-nix/regref/cli/exitcode"
	"github.com/imp-nix/regref/cli/flags"
	"github.com/imp-nix/regref/internal/evaluator"
	"github.com/imp-nix/regref/internal/log"
	"github.com/imp-nix/regref/internal/pathset"
	"github.com/imp-nix/regref/internal/registryload"
	"github.com/imp-nix/regref/internal/runconfig"
)

// Run invokes the evaluator and prints every path in the resulting
// valid-path set, sorted lexicographically, one per line, or as a JSON
// array with --json. --max-depth truncates (and deduplicates) paths deeper
// than the given number of segments.
func Run(ctx *cli.Context) error {
	level := logrus.InfoLevel
	if ctx.Bool(flags.VerboseFlagName) {
		level = logrus.DebugLevel
	}

	logger := log.New(os.Stderr, level)

	binary := ctx.String(flags.EvaluatorFlagName)
	if binary == "" {
		binary = os.Getenv("REGREF_EVALUATOR")
	}

	if binary == "" {
		binary = runconfig.DefaultEvaluatorBinary
	}

	loader := registryload.SubprocessLoader{Options: evaluator.Options{Binary: binary, Dir: "."}}

	set, err := loader.Load(ctx.Context)
	if err != nil {
		return cli.Exit(err, exitcode.ExitFatal)
	}

	logger.Debugf("registry: %d valid path(s) loaded", set.Len())

	paths := truncate(set.All(), ctx.Int(MaxDepthFlagName))

	sort.Slice(paths, func(i, j int) bool { return paths[i].String() < paths[j].String() })

	if ctx.Bool(flags.JSONFlagName) {
		strs := make([]string, len(paths))
		for i, p := range paths {
			strs[i] = p.String()
		}

		enc := json.NewEncoder(ctx.App.Writer)
		enc.SetIndent("", "  ")

		return enc.Encode(strs)
	}

	for _, p := range paths {
		fmt.Fprintln(ctx.App.Writer, p.String())
	}

	return nil
}

// truncate drops any segment beyond maxDepth (0 means unlimited) and
// deduplicates the result, since truncating two distinct deep paths to the
// same prefix collapses them to one entry.
func truncate(paths []pathset.Path, maxDepth int) []pathset.Path {
	if maxDepth <= 0 {
		return paths
	}

	seen := make(map[string]bool, len(paths))

	out := make([]pathset.Path, 0, len(paths))

	for _, p := range paths {
		segs := p.Segments()
		if len(segs) > maxDepth {
			segs = segs[:maxDepth]
		}

		truncated := pathset.New(segs...)

		key := truncated.String()
		if seen[key] {
			continue
		}

		seen[key] = true
		out = append(out, truncated)
	}

	return out
}
