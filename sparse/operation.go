// SPDX-License-Identifier: MIT

package sparse

import "fmt"

// Operation names a binary matrix operation accepted by Apply.
type Operation string

// Supported operations.
const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
)

// Operations lists the supported operations in a stable order.
func Operations() []Operation {
	return []Operation{OpAdd, OpSubtract, OpMultiply}
}

// ParseOperation maps a case-sensitive name onto an Operation.
// Unknown names return ErrInvalidOperation.
func ParseOperation(name string) (Operation, error) {
	switch op := Operation(name); op {
	case OpAdd, OpSubtract, OpMultiply:
		return op, nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidOperation, name)
}

// Apply runs op on (a, b) and returns a fresh result.
func Apply(op Operation, a, b *Matrix) (*Matrix, error) {
	switch op {
	case OpAdd:
		return Add(a, b)
	case OpSubtract:
		return Sub(a, b)
	case OpMultiply:
		return Mul(a, b)
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidOperation, string(op))
}
