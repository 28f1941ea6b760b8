// SPDX-License-Identifier: MIT

// Package dynamic - Vector storage & safe accessors.
//
// Purpose:
//   - Own a contiguous buffer of exactly Size() elements.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Provide deep copy (Clone) and deep assignment (Assign) with copy-then-swap.
//
// Complexity quicksheet:
//   - NewVector: O(n) zero-init; At/Set/Ref: O(1); Clone/Assign/Equal: O(n).

package dynamic

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// vectorErrorf wraps err with a uniform Vector context and the offending index.
func vectorErrorf(method string, i int, err error) error {
	return fmt.Errorf("Vector.%s(%d): %w", method, i, err)
}

// Vector is an owning, bounds-checked, resizable sequence of T.
//   - data holds exactly Size() elements; no other Vector shares it.
//   - pinned is set on rows owned by a Matrix; a pinned vector cannot change length.
type Vector[T Scalar] struct {
	data   []T  // owned storage (len == Size())
	pinned bool // row of a Matrix: length fixed by the owner
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector[int])(nil)

// NewVector creates a vector of size zero-valued elements.
//
// Implementation:
//   - Stage 1: validate 0 <= size <= MaxVectorSize; else ErrInvalidSize.
//   - Stage 2: allocate a zero-filled buffer.
//
// Errors:
//   - ErrInvalidSize. No storage is allocated on failure.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewVector[T Scalar](size int) (*Vector[T], error) {
	if err := validateSize(size, MaxVectorSize); err != nil {
		return nil, fmt.Errorf("NewVector(%d): %w", size, err)
	}

	return &Vector[T]{data: make([]T, size)}, nil
}

// VectorFromSlice creates a vector holding a copy of vals.
// The caller keeps ownership of vals; later writes to it are not observed.
func VectorFromSlice[T Scalar](vals []T) (*Vector[T], error) {
	if err := validateSize(len(vals), MaxVectorSize); err != nil {
		return nil, fmt.Errorf("VectorFromSlice(len=%d): %w", len(vals), err)
	}
	buf := make([]T, len(vals))
	copy(buf, vals)

	return &Vector[T]{data: buf}, nil
}

// Size returns the element count. No side effects.
// Complexity: O(1).
func (v *Vector[T]) Size() int { return len(v.data) }

// At returns the element at index i.
// Returns ErrOutOfRange (wrapped) when i is outside [0, Size()).
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if err := validateIndex(i, len(v.data)); err != nil {
		var zero T
		return zero, vectorErrorf(opAt, i, err)
	}

	return v.data[i], nil
}

// Set stores x at index i.
// A rejected write leaves the vector untouched.
// Complexity: O(1).
func (v *Vector[T]) Set(i int, x T) error {
	if err := validateIndex(i, len(v.data)); err != nil {
		return vectorErrorf(opSet, i, err)
	}
	v.data[i] = x

	return nil
}

// Ref returns a pointer to the element at index i, for in-place updates.
// The pointer is valid until the vector is reallocated by Assign.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := validateIndex(i, len(v.data)); err != nil {
		return nil, vectorErrorf(opRef, i, err)
	}

	return &v.data[i], nil
}

// Clone returns a deep copy. The copy is never pinned, even when v is a matrix row.
// Complexity: O(n) time and memory.
func (v *Vector[T]) Clone() *Vector[T] {
	buf := make([]T, len(v.data))
	copy(buf, v.data)

	return &Vector[T]{data: buf}
}

// Assign deep-copies src into v.
//
// Implementation:
//   - Stage 1: self-assignment is a no-op.
//   - Stage 2: same size → copy in place.
//   - Stage 3: different size → build the new buffer, then swap it in.
//
// Errors:
//   - ErrNilVector when src is nil.
//   - ErrSizeMismatch when v is a matrix row and src has a different size.
//
// v is unchanged whenever an error is returned.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if src == nil {
		return fmt.Errorf("Vector.%s: %w", opAssign, ErrNilVector)
	}
	if src == v {
		return nil
	}
	if len(src.data) == len(v.data) {
		copy(v.data, src.data)
		return nil
	}
	if v.pinned {
		return fmt.Errorf("Vector.%s: row of size %d cannot take %d elements: %w",
			opAssign, len(v.data), len(src.data), ErrSizeMismatch)
	}
	buf := make([]T, len(src.data))
	copy(buf, src.data)
	v.data = buf

	return nil
}

// Equal reports whether o has the same size and the same elements.
// Vectors of different sizes are unequal, not an error. A nil vector equals
// only another nil vector.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v == o {
		return true
	}
	if len(v.data) != len(o.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Fill sets every element to x.
func (v *Vector[T]) Fill(x T) {
	for i := range v.data {
		v.data[i] = x
	}
}

// String implements fmt.Stringer, e.g. "[1, 2, 3]".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	v.writeTo(&sb)

	return sb.String()
}

// writeTo appends the bracketed form of v to sb; shared with Matrix.String.
func (v *Vector[T]) writeTo(sb *strings.Builder) {
	sb.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(sb, "%v", x)
	}
	sb.WriteString(_fmtClose)
}
