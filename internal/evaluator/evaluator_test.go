package evaluator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imp-nix/regref/internal/evaluator"
)

func TestRunSuccess(t *testing.T) {
	t.Parallel()

	out, err := evaluator.Run(context.Background(), evaluator.Options{
		Binary: "testdata/succeed.sh",
		Dir:    ".",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":"x"}`, string(out))
}

func TestRunFailureCarriesStderrAndExitCode(t *testing.T) {
	t.Parallel()

	_, err := evaluator.Run(context.Background(), evaluator.Options{
		Binary: "testdata/fail.sh",
		Dir:    ".",
	})
	require.Error(t, err)

	var failure *evaluator.FailureError

	require.ErrorAs(t, err, &failure)
	assert.Equal(t, 3, failure.ExitCode)
	assert.Contains(t, failure.Stderr, `no such attribute "registry"`)
	assert.Contains(t, failure.Error(), "exit 3")
}

func TestRunMissingBinary(t *testing.T) {
	t.Parallel()

	_, err := evaluator.Run(context.Background(), evaluator.Options{
		Binary: "testdata/does-not-exist.sh",
		Dir:    ".",
	})
	assert.Error(t, err)
}
