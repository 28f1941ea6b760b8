// SPDX-License-Identifier: MIT
// Package: dynamic
//
// Purpose:
//   - Single source of truth for size, index and operand checks.
//   - Return plain sentinels (no wrapping) so call sites wrap uniformly.
//
// All checks are pure, O(1) and allocate nothing.

package dynamic

// validateSize ensures 0 <= n <= ceiling.
// Returns ErrInvalidSize otherwise. Called before any allocation.
func validateSize(n, ceiling int) error {
	if n < 0 || n > ceiling {
		return ErrInvalidSize
	}

	return nil
}

// validateIndex ensures 0 <= i < n.
// Returns ErrOutOfRange otherwise.
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}

	return nil
}

// validateSameSize ensures two operand sizes are equal.
// Returns ErrSizeMismatch otherwise.
func validateSameSize(a, b int) error {
	if a != b {
		return ErrSizeMismatch
	}

	return nil
}

// validateVectors checks a binary vector operation: both non-nil, same size.
// Nil is reported before size.
func validateVectors[T Scalar](a, b *Vector[T]) error {
	if a == nil || b == nil {
		return ErrNilVector
	}

	return validateSameSize(len(a.data), len(b.data))
}

// validateMatrices checks a binary matrix operation: both non-nil, same size.
// Nil is reported before size.
func validateMatrices[T Scalar](a, b *Matrix[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}

	return validateSameSize(len(a.rows), len(b.rows))
}
