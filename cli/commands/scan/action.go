package scan

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/imp-nix/regref/cli/exitcode"
	"github.com/imp-nix/regref/cli/flags"
	"github.com/imp-nix/regref/internal/log"
	"github.com/imp-nix/regref/internal/runconfig"
	"github.com/imp-nix/regref/internal/walker"
)

// Run walks the configured roots and prints every matching file path, or
// reports the directories the walker could not read.
func Run(ctx *cli.Context) error {
	level := logrus.InfoLevel
	if ctx.Bool(flags.VerboseFlagName) {
		level = logrus.DebugLevel
	}

	logger := log.New(os.Stderr, level)

	extension := ctx.String(flags.ExtensionFlagName)
	if extension == "" {
		extension = os.Getenv("REGREF_EXTENSION")
	}

	if extension == "" {
		extension = runconfig.DefaultExtension
	}

	paths, dirErrs, err := walker.Walk(walker.Options{
		Roots:             ctx.Args().Slice(),
		Extension:         extension,
		ExcludeGlobs:      ctx.StringSlice(flags.ExcludeFlagName),
		NoDefaultExcludes: ctx.Bool(flags.NoDefaultExcludesFlagName),
	}, logger)
	if err != nil {
		return cli.Exit(err, exitcode.ExitFatal)
	}

	if ctx.Bool(flags.JSONFlagName) {
		enc := json.NewEncoder(ctx.App.Writer)
		enc.SetIndent("", "  ")

		if err := enc.Encode(paths); err != nil {
			return cli.Exit(err, exitcode.ExitFatal)
		}
	} else {
		for _, p := range paths {
			fmt.Fprintln(ctx.App.Writer, p)
		}
	}

	for _, d := range dirErrs {
		fmt.Fprintf(ctx.App.Writer, "%s: %v\n", d.Path, d.Err)
	}

	return nil
}
