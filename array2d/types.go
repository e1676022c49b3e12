// SPDX-License-Identifier: MIT

// Package array2d: domain types shared by the toolkit operations.
// This file contains ONLY type declarations; errors and the container
// live in errors.go and array.go.
package array2d

import "golang.org/x/exp/constraints"

// Dimension selects one axis of a rectangular array.
// Only Dim0 (rows) and Dim1 (columns) are valid.
type Dimension int

const (
	// Dim0 is the row axis; its extent is Rows().
	Dim0 Dimension = 0
	// Dim1 is the column axis; its extent is Cols().
	Dim1 Dimension = 1
)

// Valid reports whether d names one of the two axes.
func (d Dimension) Valid() bool {
	return d == Dim0 || d == Dim1
}

// Number is the element bound accepted by the numeric converters.
type Number interface {
	constraints.Integer | constraints.Float
}

// Converter converts one source element into the target element type.
// A non-nil error aborts the whole Convert call.
type Converter[E, R any] func(E) (R, error)
