package scan_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	scancmd "github.com/imp-nix/regref/cli/commands/scan"
)

func newApp(w *bytes.Buffer) *cli.App {
	return &cli.App{
		Name:     "regref",
		Commands: []*cli.Command{scancmd.New()},
		Writer:   w,
	}
}

func TestScanListsMatchingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.rgc"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0o644))

	var out bytes.Buffer

	app := newApp(&out)
	err := app.Run([]string{"regref", "scan", "--extension", ".rgc", dir})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "a.rgc")
	assert.NotContains(t, out.String(), "b.txt")
}

func TestScanJSONOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.rgc"), []byte("x"), 0o644))

	var out bytes.Buffer

	app := newApp(&out)
	err := app.Run([]string{"regref", "scan", "--json", "--extension", ".rgc", dir})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "[")
	assert.Contains(t, out.String(), "a.rgc")
}
