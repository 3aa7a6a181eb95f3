package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const (
	srcA = "rows=2\ncols=2\n(0,0,1)\n(1,1,2)"
	srcB = "rows=2\ncols=2\n(0,0,3)\n(0,1,4)"
)

// execute runs the root command with args and a config path inside dir.
func execute(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("SPARSECALC_OUTPUT", "")
	t.Setenv("SPARSECALC_LOG_LEVEL", "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(dir, "sparsecalc.yaml")}, args...))
	err := cmd.Execute()

	return out.String(), err
}

func fixtures(t *testing.T) (dir, a, b string) {
	t.Helper()
	dir = t.TempDir()
	a = filepath.Join(dir, "a.txt")
	b = filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte(srcA), 0644))
	require.NoError(t, os.WriteFile(b, []byte(srcB), 0644))
	return dir, a, b
}

func TestRoot_AddToStdout(t *testing.T) {
	dir, a, b := fixtures(t)
	out, err := execute(t, dir, "add", a, b, "-o", "-")
	require.NoError(t, err)
	require.Equal(t, "rows=2\ncols=2\n(0, 0, 4)\n(1, 1, 2)\n(0, 1, 4)\n", out)
}

func TestRoot_MultiplyToFileWithGrid(t *testing.T) {
	dir, a, b := fixtures(t)
	dest := filepath.Join(dir, "res", "product.txt")
	out, err := execute(t, dir, "multiply", a, b, "--output", dest, "--print")
	require.NoError(t, err)
	require.Equal(t, "3 4\n0 0\n", out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, "rows=2\ncols=2\n(0, 0, 3)\n(0, 1, 4)", string(data))
}

func TestRoot_ConfigFileOutput(t *testing.T) {
	dir, a, b := fixtures(t)
	dest := filepath.Join(dir, "from-config.txt")
	cfg := "output: " + dest + "\nprint_grid: true\nlogging:\n  level: error\n  format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sparsecalc.yaml"), []byte(cfg), 0644))

	out, err := execute(t, dir, "subtract", a, b)
	require.NoError(t, err)
	require.Equal(t, "-2 -4\n0 2\n", out)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Contains(t, string(data), "(0, 1, -4)")
}

func TestRoot_InvalidOperation(t *testing.T) {
	dir, a, b := fixtures(t)
	_, err := execute(t, dir, "divide", a, b, "-o", "-")
	require.ErrorIs(t, err, sparse.ErrInvalidOperation)
}

func TestRoot_DimensionMismatch(t *testing.T) {
	dir, a, _ := fixtures(t)
	wide := filepath.Join(dir, "wide.txt")
	require.NoError(t, os.WriteFile(wide, []byte("rows=3\ncols=3"), 0644))

	_, err := execute(t, dir, "multiply", a, wide, "-o", "-")
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
}

func TestRoot_StrictFlag(t *testing.T) {
	dir, a, _ := fixtures(t)
	stray := filepath.Join(dir, "stray.txt")
	require.NoError(t, os.WriteFile(stray, []byte("rows=2\ncols=2\n(7, 7, 1)"), 0644))

	_, err := execute(t, dir, "add", a, stray, "-o", "-")
	require.NoError(t, err)

	_, err = execute(t, dir, "add", a, stray, "-o", "-", "--strict")
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestRoot_ArgCount(t *testing.T) {
	dir, a, _ := fixtures(t)
	_, err := execute(t, dir, "add", a)
	require.Error(t, err)
}

func TestGridCmd(t *testing.T) {
	dir, a, _ := fixtures(t)
	out, err := execute(t, dir, "grid", a)
	require.NoError(t, err)
	require.Equal(t, "1 0\n0 2\n", out)
}
