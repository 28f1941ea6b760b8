// Package tmatrix is a small set of owning, bounds-checked numeric containers
// with value semantics.
//
// What is inside?
//
//	dynamic/  — Vector[T] (resizable, bounds-checked 1-D container) and
//	            Matrix[T] (square container made of Vector rows), with deep
//	            copy, deep assignment, equality and elementwise Add/Sub.
//	examples/ — a runnable walkthrough.
//
// Every failure is an error wrapping a sentinel (ErrInvalidSize, ErrOutOfRange,
// ErrSizeMismatch); nothing panics on user input.
//
// Quick example:
//
//	a, _ := dynamic.NewMatrix[int](3)
//	b, _ := dynamic.NewMatrix[int](3)
//	_ = a.Set(2, 2, 4)
//	_ = b.Set(2, 2, 7)
//	sum, _ := dynamic.AddMatrices(a, b) // sum[2][2] == 11
//
// Out of scope: multiplication, inversion, decompositions, sparse storage,
// serialization and concurrent mutation.
//
//	go get github.com/katalvlaran/tmatrix
package tmatrix
