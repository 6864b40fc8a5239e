package apply

import (
	"bufio"
	"fmt"
	"runtime"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/imp-nix/regref/cli/commands/common"
	"github.com/imp-nix/regref/cli/exitcode"
	regreferrors "github.com/imp-nix/regref/internal/errors"
	"github.com/imp-nix/regref/internal/orchestrator"
	"github.com/imp-nix/regref/internal/rewrite"
)

// Run resolves flags, detects broken references, builds one rewrite plan per
// affected file, and either previews or writes them. With --interactive and
// --write, the operator is asked to confirm each file individually; in
// preview mode --interactive has no effect.
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

	plans, err := buildPlans(result)
	if err != nil {
		return cli.Exit(err, exitcode.ExitFatal)
	}

	if len(plans) == 0 {
		fmt.Fprintln(ctx.App.Writer, "nothing to rewrite")

		if result.HasParseErrors() {
			return cli.Exit("", exitcode.ExitBrokenFound)
		}

		return nil
	}

	write := ctx.Bool(WriteFlagName)
	interactive := ctx.Bool(InteractiveFlagName)

	var applied []rewrite.FilePlan

	reader := bufio.NewReader(ctx.App.Reader)

	for _, plan := range plans {
		if interactive && write {
			if !confirm(ctx, reader, plan.Path) {
				fmt.Fprintf(ctx.App.Writer, "skipped %s\n", plan.Path)
				continue
			}
		}

		if !write {
			_, rewritten := rewrite.Preview(plan)
			fmt.Fprintf(ctx.App.Writer, "--- %s (preview) ---\n%s\n", plan.Path, rewritten)

			continue
		}

		applied = append(applied, plan)
	}

	if write {
		if err := orchestrator.Apply(applied); err != nil {
			return cli.Exit(err, exitcode.ExitFatal)
		}

		for _, plan := range applied {
			fmt.Fprintf(ctx.App.Writer, "rewrote %s (%d edit(s))\n", plan.Path, len(plan.Edits))
		}
	}

	unresolved := result.TotalBroken() - totalEdits(plans)
	if unresolved > 0 {
		fmt.Fprintf(ctx.App.Writer, "%d broken reference(s) left without a suggestion\n", unresolved)
	}

	if result.HasParseErrors() {
		return cli.Exit("", exitcode.ExitBrokenFound)
	}

	return nil
}

// buildPlans wraps orchestrator.Plans with a recovering boundary: an
// overlapping-edit assertion should never fire given the extractor's
// disjoint-range guarantee, but if it does, it surfaces as a fatal error
// rather than crashing the process.
func buildPlans(result orchestrator.Result) (plans []rewrite.FilePlan, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = regreferrors.Errorf("rewrite planning failed: %v", r)
		}
	}()

	return orchestrator.Plans(result)
}

func totalEdits(plans []rewrite.FilePlan) int {
	n := 0
	for _, p := range plans {
		n += len(p.Edits)
	}

	return n
}

func confirm(ctx *cli.Context, reader *bufio.Reader, path string) bool {
	fmt.Fprintf(ctx.App.Writer, "apply rewrite to %s? [y/N] ", path)

	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(line))

	return answer == "y" || answer == "yes"
}
