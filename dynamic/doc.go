// Package dynamic provides owning, bounds-checked containers for numeric
// scalars: a resizable Vector and a square Matrix modelled as a sequence of
// Vector rows.
//
// What & Why:
//
//	Both containers have value semantics. Clone deep-copies, Assign deep-assigns
//	(resizing the receiver when the source has a different size), Equal compares
//	size and every element. Every index is checked on both the read and the write
//	path, and every failure is reported as an error wrapping one of the package
//	sentinels, so callers match with errors.Is:
//
//	  - ErrInvalidSize  — negative or over-ceiling size at construction.
//	  - ErrOutOfRange   — element, row or column index outside [0, Size()).
//	  - ErrSizeMismatch — elementwise Add/Sub between operands of different sizes.
//
// Ceilings:
//
//	MaxVectorSize bounds a Vector, MaxMatrixSize bounds a Matrix side. A size
//	equal to the ceiling is accepted; one past it is rejected before allocation.
//
// Rows:
//
//	Matrix.Row returns a live reference to a row. Writes through it are visible
//	in the matrix, and its own At/Set apply an independent column check. A row
//	cannot be resized through Assign, so the matrix always stays square.
//
// Complexity:
//
//	NewVector/Clone/Assign/Add/Sub/Equal are O(n); At/Set/Ref are O(1).
//	The Matrix counterparts are O(n²) and O(1) respectively.
//
// The containers are not safe for concurrent mutation.
package dynamic
