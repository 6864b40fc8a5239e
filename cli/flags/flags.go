// Package flags centralizes the flag definitions shared by the detect, apply,
// and scan commands, following the teacher's pattern of factoring flag
// construction out of each command's own file (cli/commands/find/command.go
// builds its flags in a dedicated NewFlags function rather than inline in
// NewCommand).
package flags

import "github.com/urfave/cli/v2"

const (
	RenameFlagName            = "rename"
	ExcludeFlagName           = "exclude"
	NoDefaultExcludesFlagName = "no-default-excludes"
	ExtensionFlagName         = "extension"
	EvaluatorFlagName         = "evaluator"
	VerboseFlagName           = "verbose"
	JSONFlagName              = "json"
)

// Shared returns the rename/exclude/extension/evaluator/verbose/json flags
// common to detect and apply. Scan and registry build their own flag lists
// from a subset of the names above.
func Shared() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:  RenameFlagName,
			Usage: "explicit rename rule old=new; repeatable; longest prefix wins",
		},
		&cli.StringSliceFlag{
			Name:  ExcludeFlagName,
			Usage: "glob pattern excluding matching files; repeatable",
		},
		&cli.BoolFlag{
			Name:  NoDefaultExcludesFlagName,
			Usage: "do not skip directories whose name starts with '.' or '_'",
		},
		&cli.StringFlag{
			Name:  ExtensionFlagName,
			Usage: "source file extension to scan, including the leading dot",
		},
		&cli.StringFlag{
			Name:  EvaluatorFlagName,
			Usage: "evaluator binary name or path",
		},
		&cli.BoolFlag{
			Name:    VerboseFlagName,
			Aliases: []string{"v"},
			Usage:   "enable debug-level logging",
		},
		&cli.BoolFlag{
			Name:    JSONFlagName,
			Aliases: []string{"j"},
			Usage:   "emit machine-readable JSON instead of text",
		},
	}
}
