// Package evaluator wraps os/exec to invoke the external registry evaluator
// as a subprocess: the sole I/O boundary between regref and the opaque
// program that materializes the current attribute tree. Any program
// producing the documented JSON shape at the "registry" attribute path
// satisfies the contract; this package only knows how to launch it and
// collect its output.
package evaluator

import (
	"bytes"
	"context"
	"os/exec"
	"strconv"

	"github.com/imp-nix/regref/internal/errors"
)

// Options configures the subprocess invocation.
type Options struct {
	// Binary is the evaluator executable name or path. Defaults to
	// "registry-eval" if empty.
	Binary string

	// Dir is the project directory passed to the evaluator.
	Dir string
}

// FailureError is returned when the evaluator subprocess exits non-zero; its
// message is the subprocess's stderr, per the spec's "message = stderr"
// requirement.
type FailureError struct {
	Binary   string
	ExitCode int
	Stderr   string
}

func (e *FailureError) Error() string {
	return "evaluator failed (exit " + strconv.Itoa(e.ExitCode) + "): " + e.Stderr
}

// Run invokes the evaluator, requesting a JSON dump of the "registry"
// attribute, and returns its stdout. It honors ctx cancellation by killing
// the subprocess; otherwise it blocks indefinitely, per the spec: the
// registry loader imposes no timeout of its own.
func Run(ctx context.Context, opts Options) ([]byte, error) {
	binary := opts.Binary
	if binary == "" {
		binary = "registry-eval"
	}

	cmd := exec.CommandContext(ctx, binary, "--path", "registry", "--json", opts.Dir)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.Bytes(), nil
	}

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		return nil, errors.WithStackTrace(err)
	}

	return nil, &FailureError{
		Binary:   binary,
		ExitCode: exitErr.ExitCode(),
		Stderr:   stderr.String(),
	}
}
