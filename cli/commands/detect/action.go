package detect

import (
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/imp-nix/regref/cli/commands/common"
	"github.com/imp-nix/regref/cli/exitcode"
	"github.com/imp-nix/regref/internal/orchestrator"
)

// Run resolves flags, loads the registry, walks and analyzes the configured
// roots, and reports every broken reference. It exits ExitBrokenFound if any
// broken reference was found or any file failed to parse, ExitOK otherwise.
func Run(ctx *cli.Context) error {
	logger := common.Logger(ctx)

	opts, err := common.Options(ctx, logger)
	if err != nil {
		return cli.Exit(err, exitcode.ExitFatal)
	}

	result, err := orchestrator.Detect(ctx.Context, orchestrator.Config{
		Roots:             opts.Roots,
		Extension:         opts.Extension,
		ExcludeGlobs:      opts.ExcludeGlobs,
		NoDefaultExcludes: opts.NoDefaultExcludes,
		Renames:           opts.Renames,
		Loader:            common.Loader(opts.Evaluator),
		Logger:            logger,
		WorkerCount:       runtime.GOMAXPROCS(0),
	})
	if err != nil {
		return cli.Exit(err, exitcode.ExitFatal)
	}

	if opts.JSON {
		if err := common.WriteJSON(ctx.App.Writer, result); err != nil {
			return cli.Exit(err, exitcode.ExitFatal)
		}
	} else {
		common.WriteText(ctx.App.Writer, result)
	}

	if result.TotalBroken() > 0 || result.HasParseErrors() {
		return cli.Exit("", exitcode.ExitBrokenFound)
	}

	return nil
}
