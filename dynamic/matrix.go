// SPDX-License-Identifier: MIT

// Package dynamic - square Matrix built from Vector rows.
//
// Purpose:
//   - Own exactly Size() rows of exactly Size() elements each (square at all times).
//   - Two-level access: Row(i) checks the row, the row's own accessors check the column.
//   - Deep copy (Clone) and deep assignment (Assign) that never share rows.
//
// Storage:
//   - All rows of one matrix are carved from a single zero-filled buffer using full
//     slice expressions, so rows never overlap and a row can never grow into its neighbour.
//
// Complexity quicksheet:
//   - NewMatrix: O(n²) zero-init; Row/At/Set: O(1); Clone/Assign/Equal: O(n²).

package dynamic

import (
	"fmt"
	"strings"
)

// matrixErrorf wraps err with a uniform Matrix context and the offending coordinates.
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// Matrix is an owning, bounds-checked square matrix of T.
// rows[i] is pinned and has len(rows) elements for every i.
type Matrix[T Scalar] struct {
	rows []*Vector[T]
}

var _ fmt.Stringer = (*Matrix[int])(nil)

// NewMatrix creates a size×size matrix of zero-valued elements.
//
// Implementation:
//   - Stage 1: validate 0 <= size <= MaxMatrixSize; else ErrInvalidSize.
//   - Stage 2: allocate the pinned rows.
//
// Errors:
//   - ErrInvalidSize. No storage is allocated on failure.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewMatrix[T Scalar](size int) (*Matrix[T], error) {
	if err := validateSize(size, MaxMatrixSize); err != nil {
		return nil, fmt.Errorf("NewMatrix(%d): %w", size, err)
	}

	return &Matrix[T]{rows: allocRows[T](size)}, nil
}

// MatrixFromRows creates a matrix holding a copy of a square literal.
//
// Errors:
//   - ErrInvalidSize when len(rows) > MaxMatrixSize.
//   - ErrNonSquare when any row length differs from len(rows).
func MatrixFromRows[T Scalar](rows [][]T) (*Matrix[T], error) {
	n := len(rows)
	if err := validateSize(n, MaxMatrixSize); err != nil {
		return nil, fmt.Errorf("MatrixFromRows(n=%d): %w", n, err)
	}
	for i, r := range rows {
		if len(r) != n {
			return nil, fmt.Errorf("MatrixFromRows: row %d has %d elements, want %d: %w",
				i, len(r), n, ErrNonSquare)
		}
	}
	out := allocRows[T](n)
	for i, r := range rows {
		copy(out[i].data, r)
	}

	return &Matrix[T]{rows: out}, nil
}

// allocRows allocates n pinned rows of length n from one zero-filled buffer.
// Callers must have validated n.
func allocRows[T Scalar](n int) []*Vector[T] {
	buf := make([]T, n*n)
	rows := make([]*Vector[T], n)
	for i := 0; i < n; i++ {
		lo, hi := i*n, (i+1)*n
		rows[i] = &Vector[T]{data: buf[lo:hi:hi], pinned: true}
	}

	return rows
}

// Size returns the row (and column) count.
// Complexity: O(1).
func (m *Matrix[T]) Size() int { return len(m.rows) }

// Row returns a live reference to row i.
// Writes through the returned vector are visible in m; its accessors apply
// their own column check. Returns ErrOutOfRange (wrapped) for an invalid row.
func (m *Matrix[T]) Row(i int) (*Vector[T], error) {
	if err := validateIndex(i, len(m.rows)); err != nil {
		return nil, fmt.Errorf("Matrix.%s(%d): %w", opRow, i, err)
	}

	return m.rows[i], nil
}

// At returns the element at (row, col).
// The row and column checks are independent; either one failing yields ErrOutOfRange.
func (m *Matrix[T]) At(row, col int) (T, error) {
	var zero T
	if err := validateIndex(row, len(m.rows)); err != nil {
		return zero, matrixErrorf(opAt, row, col, err)
	}
	r := m.rows[row]
	if err := validateIndex(col, len(r.data)); err != nil {
		return zero, matrixErrorf(opAt, row, col, err)
	}

	return r.data[col], nil
}

// Set stores x at (row, col). A rejected write leaves m untouched.
func (m *Matrix[T]) Set(row, col int, x T) error {
	if err := validateIndex(row, len(m.rows)); err != nil {
		return matrixErrorf(opSet, row, col, err)
	}
	r := m.rows[row]
	if err := validateIndex(col, len(r.data)); err != nil {
		return matrixErrorf(opSet, row, col, err)
	}
	r.data[col] = x

	return nil
}

// Clone returns a deep copy; no row or element storage is shared with m.
// Complexity: O(n²).
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := allocRows[T](len(m.rows))
	for i, r := range m.rows {
		copy(out[i].data, r.data)
	}

	return &Matrix[T]{rows: out}
}

// Assign deep-copies src into m.
//
// Implementation:
//   - Stage 1: self-assignment is a no-op.
//   - Stage 2: same size → copy every row in place (row references stay valid).
//   - Stage 3: different size → build a fresh row set, then swap it in.
//
// Errors:
//   - ErrNilMatrix when src is nil; m is unchanged.
//
// Notes:
//   - After a resize, rows previously obtained through Row belong to no matrix.
func (m *Matrix[T]) Assign(src *Matrix[T]) error {
	if src == nil {
		return fmt.Errorf("Matrix.%s: %w", opAssign, ErrNilMatrix)
	}
	if src == m {
		return nil
	}
	if len(src.rows) == len(m.rows) {
		for i, r := range src.rows {
			copy(m.rows[i].data, r.data)
		}
		return nil
	}
	m.rows = src.Clone().rows

	return nil
}

// Equal reports whether o has the same size and every element matches.
// Matrices of different sizes are unequal regardless of content.
// A nil matrix equals only another nil matrix.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m == o {
		return true
	}
	if len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// Values returns a deep copy of the elements as a slice of rows.
func (m *Matrix[T]) Values() [][]T {
	out := make([][]T, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Values()
	}

	return out
}

// Fill sets every element to x.
func (m *Matrix[T]) Fill(x T) {
	for _, r := range m.rows {
		r.Fill(x)
	}
}

// String implements fmt.Stringer: one bracketed line per row.
func (m *Matrix[T]) String() string {
	var sb strings.Builder
	for _, r := range m.rows {
		r.writeTo(&sb)
		sb.WriteByte('\n')
	}

	return sb.String()
}
