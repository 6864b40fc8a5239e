// Package scan implements the "regref scan" command: it lists the files the
// walker would visit for the given roots and flags, without parsing or
// loading the registry at all, for debugging exclude-glob configuration.
package scan

import (
	"github.com/urfave/cli/v2"

	"github.com/imp-nix/regref/cli/flags"
)

const (
	CommandName = "scan"

	ArgsUsage = "[roots...]"
)

// New builds the scan command.
func New() *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Usage:     "list the source files the walker would visit",
		ArgsUsage: ArgsUsage,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: flags.ExcludeFlagName, Usage: "glob pattern excluding matching files; repeatable"},
			&cli.BoolFlag{Name: flags.NoDefaultExcludesFlagName, Usage: "do not skip directories whose name starts with '.' or '_'"},
			&cli.StringFlag{Name: flags.ExtensionFlagName, Usage: "source file extension to scan, including the leading dot"},
			&cli.BoolFlag{Name: flags.VerboseFlagName, Aliases: []string{"v"}, Usage: "enable debug-level logging"},
			&cli.BoolFlag{Name: flags.JSONFlagName, Aliases: []string{"j"}, Usage: "emit a JSON array instead of one path per line"},
		},
		Action: Run,
	}
}
