// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Functions return these sentinels (optionally wrapped with a call-site tag)
// and callers match them via errors.Is. Nothing in this package panics on
// user input.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is returned when serialized matrix text violates the grammar:
	// missing or misnamed header, malformed data line, unparsable integer.
	// Concrete failures are reported as *FormatError, which matches ErrFormat.
	ErrFormat = errors.New("sparse: input has wrong format")

	// ErrDimensionMismatch indicates Mul operands where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("sparse: columns of left operand must match rows of right operand")

	// ErrInvalidOperation indicates an operation name other than add, subtract, multiply.
	ErrInvalidOperation = errors.New("sparse: invalid operation")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrBadShape is returned for negative declared dimensions.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange is returned by strict-bounds parsing for a coordinate
	// outside the declared shape.
	ErrOutOfRange = errors.New("sparse: index out of range")
)

// FormatError describes the first grammar violation found while parsing.
// Line is 1-based and counts every physical line, blank ones included.
type FormatError struct {
	Line   int    // physical line number (1-based)
	Text   string // trimmed offending line
	Reason string // short human-readable cause
	Err    error  // underlying cause (ErrFormat, ErrOutOfRange, strconv error)
}

// Error implements error.
func (e *FormatError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("sparse: line %d: %s", e.Line, e.Reason)
	}

	return fmt.Sprintf("sparse: line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// Unwrap exposes the underlying cause for errors.Is / errors.As.
func (e *FormatError) Unwrap() error { return e.Err }

// Is reports true for ErrFormat so every FormatError matches the sentinel,
// including those whose Err is a strconv or bounds error.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// sparseErrorf wraps err with an operation tag ("Mul: sparse: ...").
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
