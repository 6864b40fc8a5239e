// Package apply implements the "regref apply" command: it runs the same
// pipeline as detect, then previews the rewrite of every broken reference
// that carries a suggestion, or writes it in place when --write is given.
package apply

import (
	"github.com/urfave/cli/v2"

	"github.com/imp-nix/regref/cli/flags"
)

const (
	CommandName = "apply"

	ArgsUsage = "[roots...]"

	// WriteFlagName modifies files in place instead of previewing.
	WriteFlagName = "write"

	// InteractiveFlagName prompts for confirmation before each file is
	// written; it only takes effect together with --write.
	InteractiveFlagName = "interactive"
)

// New builds the apply command.
func New() *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Usage:     "rewrite broken registry.* references that have an unambiguous suggestion",
		ArgsUsage: ArgsUsage,
		Flags: append(flags.Shared(),
			&cli.BoolFlag{
				Name:  WriteFlagName,
				Usage: "modify files in place instead of printing a preview",
			},
			&cli.BoolFlag{
				Name:  InteractiveFlagName,
				Usage: "confirm each file's rewrite before applying it",
			},
		),
		Action: Run,
	}
}
