// SPDX-License-Identifier: MIT

package dynamic

// Test bridge (white-box): exposes unexported validators and the pinned flag
// to the external dynamic_test package without widening the production API.

var (
	ExportedValidateSize     = validateSize
	ExportedValidateIndex    = validateIndex
	ExportedValidateSameSize = validateSameSize
)

// IsPinned_TestOnly reports whether v is a matrix row.
func IsPinned_TestOnly[T Scalar](v *Vector[T]) bool { return v.pinned }
