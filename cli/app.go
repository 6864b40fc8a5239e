// Package cli is the thin urfave/cli/v2 application that is regref's only
// supported entrypoint into the pipeline: it translates flags into a run
// configuration, invokes the orchestrator, and maps the result onto process
// exit codes and either human- or machine-readable output. Per the core
// spec, the command-line surface, help/version rendering, and colorization
// are all external-collaborator concerns kept out of the pipeline packages
// proper and confined to this package.
package cli

import (
	"github.com/urfave/cli/v2"

	applycmd "github.com/imp-nix/regref/cli/commands/apply"
	detectcmd "github.com/imp-nix/regref/cli/commands/detect"
	registrycmd "github.com/imp-nix/regref/cli/commands/registry"
	scancmd "github.com/imp-nix/regref/cli/commands/scan"
	"github.com/imp-nix/regref/cli/exitcode"
)

// ExitCode values, per SPEC_FULL.md §7: 0 = nothing to do, 1 = detect found
// broken references, or a file failed to parse, 2 = could not run at all.
const (
	ExitOK          = exitcode.ExitOK
	ExitBrokenFound = exitcode.ExitBrokenFound
	ExitFatal       = exitcode.ExitFatal
)

// NewApp builds the regref command-line application.
func NewApp(version string) *cli.App {
	return &cli.App{
		Name:    "regref",
		Usage:   "find and rewrite broken registry.* references after a registry reorganization",
		Version: version,
		// A command's cli.Exit error is returned from RunContext unhandled;
		// main.go turns it into the process exit code.
		ExitErrHandler: func(*cli.Context, error) {},
		Commands: []*cli.Command{
			detectcmd.New(),
			applycmd.New(),
			registrycmd.New(),
			scancmd.New(),
		},
	}
}
