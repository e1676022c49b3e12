// SPDX-License-Identifier: MIT
// Package array2d: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the array2d
// package. Every operation returns these sentinels (optionally wrapped with the
// operation name) and tests check them via errors.Is. No operation panics on a
// user-triggered error condition.

package array2d

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "array2d: ...". Operations wrap with
// fmt.Errorf("Op: %w", ErrX) so callers still match through errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil array -> nil func -> invalid dimension -> out of range / conversion.

var (
	// ErrNilArray indicates that a required array (or slice) argument is absent.
	ErrNilArray = errors.New("array2d: nil array")

	// ErrNilFunc indicates that a required selector or converter is absent.
	ErrNilFunc = errors.New("array2d: nil function")

	// ErrInvalidDimension indicates a dimension argument outside {Dim0, Dim1}.
	ErrInvalidDimension = errors.New("array2d: invalid dimension")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// At/Set return this, they never panic.
	ErrOutOfRange = errors.New("array2d: index out of range")

	// ErrConversion indicates that an element could not be converted to the
	// target element type. Convert aborts on the first such element.
	ErrConversion = errors.New("array2d: element conversion failed")

	// ErrBadShape is returned when a requested extent is negative.
	ErrBadShape = errors.New("array2d: invalid shape")

	// ErrNonRectangular indicates source rows of differing lengths.
	ErrNonRectangular = errors.New("array2d: all rows must have the same length")
)

// opErrorf wraps an underlying error with the operation tag.
func opErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// cellErrorf wraps an underlying error with the operation tag and cell coordinates.
func cellErrorf(op string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, row, col, err)
}
