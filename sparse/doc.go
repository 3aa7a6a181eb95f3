// SPDX-License-Identifier: MIT

// Package sparse implements a coordinate-keyed sparse integer matrix.
//
// What:
//
//   - Matrix stores only nonzero entries in a map keyed by Coord{Row, Col}.
//   - Declared dimensions (Rows, Cols) are descriptive metadata; Set does not
//     enforce them.
//   - Add/Sub tolerate mismatched shapes (result takes the per-axis max).
//   - Mul enforces a.Cols() == b.Rows() and fails with ErrDimensionMismatch.
//   - A small line-oriented text format round-trips a Matrix.
//
// Format:
//
//	rows=2
//	cols=2
//	(0, 0, 1)
//	(1, 1, 2)
//
// Why:
//
//   - Large, mostly-zero matrices cost O(nnz) memory instead of O(r*c).
//
// Complexity:
//
//   - At/Set/Has: O(1) expected.
//   - Add/Sub:    O(nnz(a) + nnz(b)).
//   - Mul:        O(nnz(a) * k) where k is the number of nonzeros in the
//     referenced row of b (bounded by b.Cols()).
//   - Parse/WriteTo: O(lines).
//
// Errors:
//
//   - ErrFormat: serialized input violates the grammar (see FormatError).
//   - ErrDimensionMismatch: Mul operands are not conformable.
//   - ErrInvalidOperation: ParseOperation got an unknown name.
//   - ErrNilMatrix, ErrBadShape, ErrOutOfRange: argument guards.
//
// Every arithmetic function returns a fresh *Matrix; operands are never
// mutated. A Matrix is not safe for concurrent mutation.
package sparse
