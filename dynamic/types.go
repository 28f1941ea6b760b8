// SPDX-License-Identifier: MIT

// Package dynamic: element constraint and size ceilings.
package dynamic

import "golang.org/x/exp/constraints"

// Size ceilings. A matrix at MaxMatrixSize holds exactly MaxVectorSize elements.
const (
	// MaxVectorSize is the largest element count accepted by NewVector.
	MaxVectorSize = 100_000_000

	// MaxMatrixSize is the largest side accepted by NewMatrix.
	MaxMatrixSize = 10_000
)

// Scalar is the set of element types the containers accept: every type that
// supports +, - and == with its zero value as the default element.
type Scalar interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Operation tags used when wrapping errors.
const (
	opAdd    = "Add"
	opSub    = "Sub"
	opAssign = "Assign"
	opAt     = "At"
	opSet    = "Set"
	opRef    = "Ref"
	opRow    = "Row"
)
