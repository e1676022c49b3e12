// SPDX-License-Identifier: MIT
// Package: array2d
//
// Purpose:
//  - Single source of truth for the argument checks shared by all operations.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly
//    with their own operation tag.
//
// Note:
//  - Composite guards run in a fixed order: array -> func -> dimension.
//  - All checks are O(1) except validateRectangular (O(rows)).

package array2d

// validateShape rejects negative extents. Zero is a legal (empty) extent.
func validateShape(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return ErrBadShape
	}

	return nil
}

// validateRectangular ensures every row has the length of the first one.
// Assumes rows is non-nil.
func validateRectangular[E any](rows [][]E) error {
	if len(rows) == 0 {
		return nil
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return ErrNonRectangular
		}
	}

	return nil
}

// validateArray ensures the array reference is present.
func validateArray[E any](a *Array[E]) error {
	if a == nil {
		return ErrNilArray
	}

	return nil
}

// validateSlice ensures a linear array is present. A non-nil empty slice passes.
func validateSlice[E any](s []E) error {
	if s == nil {
		return ErrNilArray
	}

	return nil
}

// validateDimension ensures d is Dim0 or Dim1.
func validateDimension(d Dimension) error {
	if !d.Valid() {
		return ErrInvalidDimension
	}

	return nil
}
