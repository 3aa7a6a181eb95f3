// SPDX-License-Identifier: MIT
// Package sparse - discoverability aliases.
// Each facade delegates to the canonical kernel; none adds logic.

package sparse

// Sum is an alias for Add: a + b.
func Sum(a, b *Matrix) (*Matrix, error) { return Add(a, b) }

// Diff is an alias for Sub: a - b.
func Diff(a, b *Matrix) (*Matrix, error) { return Sub(a, b) }

// Product is an alias for Mul: a × b.
func Product(a, b *Matrix) (*Matrix, error) { return Mul(a, b) }

// T is an alias for Transpose.
func T(m *Matrix) (*Matrix, error) { return Transpose(m) }

// Negate returns -m (Scale by -1).
func Negate(m *Matrix) (*Matrix, error) { return Scale(m, -1) }
