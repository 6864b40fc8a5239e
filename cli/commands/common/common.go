// Package common builds the logger, run configuration, registry loader and
// report rendering that detect and apply share, so each command file stays
// focused on its own output shape.
package common

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/imp-nix/regref/cli/flags"
	"github.com/imp-nix/regref/internal/evaluator"
	"github.com/imp-nix/regref/internal/log"
	"github.com/imp-nix/regref/internal/registryload"
	"github.com/imp-nix/regref/internal/runconfig"
)

// Logger builds a Logger at Info or Debug level depending on --verbose.
func Logger(ctx *cli.Context) log.Logger {
	level := logrus.InfoLevel
	if ctx.Bool(flags.VerboseFlagName) {
		level = logrus.DebugLevel
	}

	return log.New(os.Stderr, level)
}

// Options resolves the shared flags (--rename, --exclude,
// --no-default-excludes, --extension, --evaluator, --verbose, --json) plus
// the command's root-path positional arguments into a *runconfig.Options.
func Options(ctx *cli.Context, l log.Logger) (*runconfig.Options, error) {
	return runconfig.Resolve(runconfig.Flags{
		Roots:             ctx.Args().Slice(),
		Extension:         ctx.String(flags.ExtensionFlagName),
		ExcludeGlobs:      ctx.StringSlice(flags.ExcludeFlagName),
		NoDefaultExcludes: ctx.Bool(flags.NoDefaultExcludesFlagName),
		RenamePairs:       ctx.StringSlice(flags.RenameFlagName),
		EvaluatorBinary:   ctx.String(flags.EvaluatorFlagName),
		Verbose:           ctx.Bool(flags.VerboseFlagName),
		JSON:              ctx.Bool(flags.JSONFlagName),
	}, l)
}

// Loader builds the real subprocess-backed registry loader for opts.
func Loader(opts evaluator.Options) registryload.Loader {
	return registryload.SubprocessLoader{Options: opts}
}
