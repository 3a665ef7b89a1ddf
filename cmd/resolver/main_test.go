package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/resolver/internal/config"
)

const sheet = "a = 1\nc = 2\n12 tsp in cup\nx 12 + 3 or 5\n"

// run executes the root command with an isolated config and log file.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	base := []string{
		"--config", filepath.Join(dir, "missing.toml"),
		"--logfile", filepath.Join(dir, "resolver.log"),
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, base...))
	err := cmd.Execute()
	return out.String(), err
}

func TestEval_Stdin(t *testing.T) {
	out, err := run(t, sheet, "eval", "--width", "14")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"   1 a = 1           1\n"+
		"   2 c = 2           2\n"+
		"   3 12 tsp in cup   1/4 cup\n"+
		"   4 x 12 + 3 or 5   15; 5\n", out)
}

func TestEval_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.txt")
	require.NoError(t, os.WriteFile(path, []byte("12 tsp in cup\r\n"), 0o644))

	out, err := run(t, "", "eval", path, "--no-gutter", "--width", "14")
	require.NoError(t, err)
	assert.Equal(t, "12 tsp in cup   1/4 cup\n", out)
}

func TestEval_Colors(t *testing.T) {
	plain, err := run(t, sheet, "eval", "--width", "14")
	require.NoError(t, err)

	colored, err := run(t, sheet, "eval", "--width", "14", "--color", "ansi")
	require.NoError(t, err)
	assert.Contains(t, colored, "\x1b[")
	assert.Equal(t, plain, ansi.Strip(colored))

	markup, err := run(t, sheet, "eval", "--width", "14", "--color", "markup")
	require.NoError(t, err)
	assert.Contains(t, markup, "<b><Yellow>a = 1</Yellow></b>")

	_, err = run(t, sheet, "eval", "--color", "rainbow")
	assert.ErrorContains(t, err, "unknown color mode")
}

func TestEval_Verbose(t *testing.T) {
	out, err := run(t, sheet, "eval", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "1: a = 1 => 1\n")
	assert.Contains(t, out, "3: 12 tsp in cup => 1/4 cup\n")
	assert.Contains(t, out, "4: 12 + 3 => 15\n")
	assert.Contains(t, out, "4: x => error:")
}

func TestEval_MissingFile(t *testing.T) {
	_, err := run(t, "", "eval", filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorContains(t, err, "read file")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, config.AppName+" v"+config.Version+"\n", out)
}
