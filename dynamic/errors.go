// SPDX-License-Identifier: MIT
// Package dynamic: sentinel error set.
// Public methods wrap these with call-site context (method, indices) using %w,
// so tests and callers MUST match them via errors.Is. No method panics on a
// user-triggered condition.

package dynamic

import "errors"

// Every message is prefixed with "dynamic: " for grep-ability.
var (
	// ErrInvalidSize is returned when a requested size is negative or exceeds
	// MaxVectorSize / MaxMatrixSize. Nothing is allocated when it is returned.
	ErrInvalidSize = errors.New("dynamic: invalid size")

	// ErrOutOfRange indicates an element, row or column index outside [0, Size()).
	ErrOutOfRange = errors.New("dynamic: index out of range")

	// ErrSizeMismatch indicates operands of different sizes in an elementwise
	// operation, or an attempt to resize a matrix row.
	ErrSizeMismatch = errors.New("dynamic: size mismatch")

	// ErrNonSquare signals a ragged or non-square literal passed to MatrixFromRows.
	ErrNonSquare = errors.New("dynamic: rows do not form a square matrix")

	// ErrNilVector indicates that a nil *Vector was passed as an operand.
	ErrNilVector = errors.New("dynamic: nil vector")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("dynamic: nil matrix")
)
