// Package registry implements the "regref registry" command: it invokes the
// evaluator, flattens the resulting registry tree, and prints the valid-path
// set, for inspecting what the pipeline considers a valid registry.* target.
package registry

import (
	"github.com/urfave/cli/v2"

	"github.com/imp-nix/regref/cli/flags"
)

const (
	CommandName = "registry"

	// EvaluatorFlagName and VerboseFlagName/JSONFlagName are reused from the
	// shared flag set; registry has no root-path arguments since it never
	// touches source files.
	MaxDepthFlagName = "max-depth"
)

// New builds the registry command.
func New() *cli.Command {
	return &cli.Command{
		Name:  CommandName,
		Usage: "print the valid registry.* path set produced by the evaluator",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flags.EvaluatorFlagName, Usage: "evaluator binary name or path"},
			&cli.BoolFlag{Name: flags.VerboseFlagName, Aliases: []string{"v"}, Usage: "enable debug-level logging"},
			&cli.BoolFlag{Name: flags.JSONFlagName, Aliases: []string{"j"}, Usage: "emit a JSON array instead of one path per line"},
			&cli.IntFlag{Name: MaxDepthFlagName, Usage: "truncate paths deeper than this many segments (0 means unlimited)"},
		},
		Action: Run,
	}
}
