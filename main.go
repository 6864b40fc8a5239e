// Command regref finds and rewrites broken registry.* attribute-path
// references left behind by a directory or attribute reorganization.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	regrefcli "github.com/imp-nix/regref/cli"
	"github.com/imp-nix/regref/cli/exitcode"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	app := regrefcli.NewApp(version)

	err := app.RunContext(ctx, os.Args)
	if err == nil {
		os.Exit(exitcode.ExitOK)
	}

	if exitErr, ok := err.(cli.ExitCoder); ok {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}

		os.Exit(exitErr.ExitCode())
	}

	fmt.Fprintln(os.Stderr, err)
	os.Exit(exitcode.ExitFatal)
}
