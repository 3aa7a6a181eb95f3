// SPDX-License-Identifier: MIT

// Package sparse - arithmetic kernels.
//
// Determinism:
//   - Add/Sub visit a's entries first, then b's entries not keyed in a, both
//     in insertion order. Only the union of nonzero coordinates is touched.
//   - Mul walks a's entries in insertion order and, per entry, b's row in
//     ascending column order.
//
// Every kernel allocates a fresh result; operands are never mutated.

package sparse

import "sort"

// Operation tags used in error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
)

// Add returns a + b element-wise.
// Shapes may differ: the result has max(a.Rows, b.Rows) × max(a.Cols, b.Cols).
// Only a nil operand fails (ErrNilMatrix).
// Complexity: O(nnz(a) + nnz(b)).
func Add(a, b *Matrix) (*Matrix, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, sparseErrorf(opAdd, err)
	}

	return combine(a, b, 1), nil
}

// Sub returns a - b element-wise with the same shape policy as Add.
// Complexity: O(nnz(a) + nnz(b)).
func Sub(a, b *Matrix) (*Matrix, error) {
	if err := ValidateBinary(a, b); err != nil {
		return nil, sparseErrorf(opSub, err)
	}

	return combine(a, b, -1), nil
}

// combine computes a + sign*b in two passes.
// Pass 1 writes a[k] + sign*b[k] for every key of a (cancellations vanish via Set).
// Pass 2 writes sign*b[k] for every key of b absent from a.
func combine(a, b *Matrix, sign int) *Matrix {
	res := New()
	res.rows = max(a.rows, b.rows)
	res.cols = max(a.cols, b.cols)

	a.Range(func(e Entry) bool {
		res.Set(e.Row, e.Col, e.Value+sign*b.At(e.Row, e.Col))
		return true
	})
	b.Range(func(e Entry) bool {
		if !a.Has(e.Row, e.Col) {
			res.Set(e.Row, e.Col, sign*e.Value)
		}
		return true
	})

	return res
}

// Mul returns the matrix product a × b.
// Stage 1 (Validate): non-nil operands and a.Cols == b.Rows, else
// ErrDimensionMismatch before any work.
// Stage 2 (Index): group b's entries by row, keeping only columns in
// [0, b.Cols) sorted ascending. This matches scanning every column of b.
// Stage 3 (Execute): for each a entry (rA, cA)->vA accumulate vA*vB into
// (rA, cB) for each (cA, cB)->vB of b's row cA.
// Stage 4 (Finalize): write nonzero sums in first-contribution order.
// Complexity: O(nnz(a)*k + nnz(b) log nnz(b)), k = max nonzeros per row of b.
func Mul(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	rowsOfB := rowIndex(b)

	var (
		sums  = make(map[Coord]int)
		order []Coord
	)
	a.Range(func(ea Entry) bool {
		for _, eb := range rowsOfB[ea.Col] {
			k := Coord{Row: ea.Row, Col: eb.Col}
			if _, seen := sums[k]; !seen {
				order = append(order, k)
			}
			sums[k] += ea.Value * eb.Value
		}
		return true
	})

	res := New()
	res.rows, res.cols = a.rows, b.cols
	for _, k := range order {
		res.Set(k.Row, k.Col, sums[k]) // zero sums are dropped by Set
	}

	return res, nil
}

// rowIndex groups m's entries by row, restricted to columns in [0, m.cols),
// each row sorted by ascending column.
func rowIndex(m *Matrix) map[int][]Entry {
	idx := make(map[int][]Entry)
	m.Range(func(e Entry) bool {
		if e.Col >= 0 && e.Col < m.cols {
			idx[e.Row] = append(idx[e.Row], e)
		}
		return true
	})
	for _, row := range idx {
		sort.Slice(row, func(i, j int) bool { return row[i].Col < row[j].Col })
	}

	return idx
}

// Transpose returns mᵀ: shape cols×rows, every (r, c)->v stored as (c, r)->v.
// Complexity: O(nnz).
func Transpose(m *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opTranspose, err)
	}
	res := New()
	res.rows, res.cols = m.cols, m.rows
	m.Range(func(e Entry) bool {
		res.Set(e.Col, e.Row, e.Value)
		return true
	})

	return res, nil
}

// Scale returns k*m. Scaling by 0 yields an empty matrix of the same shape.
// Complexity: O(nnz).
func Scale(m *Matrix, k int) (*Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opScale, err)
	}
	res := New()
	res.rows, res.cols = m.rows, m.cols
	m.Range(func(e Entry) bool {
		res.Set(e.Row, e.Col, k*e.Value)
		return true
	})

	return res, nil
}

// Add returns m + other. See the package-level Add.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) { return Add(m, other) }

// Sub returns m - other. See the package-level Sub.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) { return Sub(m, other) }

// Mul returns m × other. See the package-level Mul.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) { return Mul(m, other) }
