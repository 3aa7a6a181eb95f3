// SPDX-License-Identifier: MIT
// Package sparse_test contains small fixtures shared by the sparse tests.

package sparse_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/stretchr/testify/require"
)

// MustParse parses src or fails the test.
func MustParse(t *testing.T, src string) *sparse.Matrix {
	t.Helper()
	m, err := sparse.ParseString(src)
	require.NoError(t, err, "ParseString(%q)", src)

	return m
}

// MustShape allocates an empty rows×cols matrix or fails the test.
func MustShape(t *testing.T, rows, cols int) *sparse.Matrix {
	t.Helper()
	m, err := sparse.NewShape(rows, cols)
	require.NoError(t, err)

	return m
}

// EntryMap flattens m into a coordinate->value map (order-insensitive view).
func EntryMap(m *sparse.Matrix) map[sparse.Coord]int {
	out := make(map[sparse.Coord]int, m.Nnz())
	m.Range(func(e sparse.Entry) bool {
		out[e.Coord()] = e.Value
		return true
	})

	return out
}

// RequireEntries asserts that m stores exactly want (order ignored).
func RequireEntries(t *testing.T, m *sparse.Matrix, want map[sparse.Coord]int) {
	t.Helper()
	if diff := cmp.Diff(want, EntryMap(m)); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

// RequireShape asserts the declared dimensions of m.
func RequireShape(t *testing.T, m *sparse.Matrix, rows, cols int) {
	t.Helper()
	r, c := m.Shape()
	require.Equal(t, rows, r, "rows")
	require.Equal(t, cols, c, "cols")
}

// FromDense builds a matrix from a dense grid, skipping zeros.
func FromDense(t *testing.T, grid [][]int) *sparse.Matrix {
	t.Helper()
	cols := 0
	if len(grid) > 0 {
		cols = len(grid[0])
	}
	m := MustShape(t, len(grid), cols)
	for i, row := range grid {
		for j, v := range row {
			m.Set(i, j, v)
		}
	}

	return m
}
