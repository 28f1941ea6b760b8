// SPDX-License-Identifier: MIT
// Package: dynamic
//
// Purpose:
//   - Elementwise Add/Sub for Vector and Matrix, sharing one validation and one loop.
//   - Operands are never mutated; the result is always freshly allocated.
//
// Determinism & Performance:
//   - Validation happens before allocation, so a failed call has no observable effect.
//   - Matrix kernels walk the single backing buffer of each operand row by row.

package dynamic

import "fmt"

// addSubInto writes dst[k] = a[k] ± b[k]. Lengths are validated by callers.
func addSubInto[T Scalar](dst, a, b []T, sub bool) {
	if sub {
		for k := range dst {
			dst[k] = a[k] - b[k]
		}
		return
	}
	for k := range dst {
		dst[k] = a[k] + b[k]
	}
}

// addSubVectors computes a ± b into a new unpinned vector.
//
// Errors:
//   - ErrNilVector, ErrSizeMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(n), Space O(n).
func addSubVectors[T Scalar](a, b *Vector[T], sub bool, opTag string) (*Vector[T], error) {
	if err := validateVectors(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opTag, err)
	}
	out := &Vector[T]{data: make([]T, len(a.data))}
	addSubInto(out.data, a.data, b.data, sub)

	return out, nil
}

// AddVectors returns the elementwise sum a + b.
// Returns ErrSizeMismatch when a.Size() != b.Size().
func AddVectors[T Scalar](a, b *Vector[T]) (*Vector[T], error) {
	return addSubVectors(a, b, false, opAdd)
}

// SubVectors returns the elementwise difference a - b.
// Returns ErrSizeMismatch when a.Size() != b.Size().
func SubVectors[T Scalar](a, b *Vector[T]) (*Vector[T], error) {
	return addSubVectors(a, b, true, opSub)
}

// addSubMatrices computes a ± b into a new matrix.
//
// Implementation:
//   - Stage 1: validate both operands are non-nil and of equal size.
//   - Stage 2: allocate the result rows; apply the kernel row by row.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func addSubMatrices[T Scalar](a, b *Matrix[T], sub bool, opTag string) (*Matrix[T], error) {
	if err := validateMatrices(a, b); err != nil {
		return nil, fmt.Errorf("%s: %w", opTag, err)
	}
	rows := allocRows[T](len(a.rows))
	for i, r := range rows {
		addSubInto(r.data, a.rows[i].data, b.rows[i].data, sub)
	}

	return &Matrix[T]{rows: rows}, nil
}

// AddMatrices returns the elementwise sum a + b.
// Returns ErrSizeMismatch when a.Size() != b.Size().
func AddMatrices[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	return addSubMatrices(a, b, false, opAdd)
}

// SubMatrices returns the elementwise difference a - b.
// Returns ErrSizeMismatch when a.Size() != b.Size().
func SubMatrices[T Scalar](a, b *Matrix[T]) (*Matrix[T], error) {
	return addSubMatrices(a, b, true, opSub)
}
