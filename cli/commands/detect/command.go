// Package detect implements the "regref detect" command: it runs the
// walk/extract/load/analyze pipeline read-only and reports every broken
// registry.* reference it finds, without touching any file.
package detect

import (
	"github.com/urfave/cli/v2"

	"github.com/imp-nix/regref/cli/flags"
)

const (
	CommandName = "detect"

	// ArgsUsage documents the positional root-path arguments.
	ArgsUsage = "[roots...]"
)

// New builds the detect command.
func New() *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Usage:     "report broken registry.* references without modifying any file",
		ArgsUsage: ArgsUsage,
		Flags:     flags.Shared(),
		Action:    Run,
	}
}
