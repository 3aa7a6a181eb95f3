// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for argument guards used by constructors,
//     arithmetic and parsing.
//   - Return plain sentinels; call sites wrap with their own tag.

package sparse

// ValidateNotNil returns ErrNilMatrix when m is nil.
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateShape rejects negative dimensions. 0×0, 0×n and n×0 are legal.
func ValidateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}

	return nil
}

// ValidateBinary is the composite NotNil(a) -> NotNil(b) guard used by Add/Sub.
func ValidateBinary(a, b *Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}

	return ValidateNotNil(b)
}

// ValidateMulCompatible ensures both operands are non-nil and a.Cols == b.Rows.
// Degenerate shapes follow the same rule: a 2×0 times a 0×3 is conformable,
// a 0×0 times a 1×1 is not.
func ValidateMulCompatible(a, b *Matrix) error {
	if err := ValidateBinary(a, b); err != nil {
		return err
	}
	if a.cols != b.rows {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateInBounds reports ErrOutOfRange when (row, col) lies outside m's
// declared shape. Only strict parsing uses it; Set is permissive.
func ValidateInBounds(m *Matrix, row, col int) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return ErrOutOfRange
	}

	return nil
}
