// Package array2d provides generic, pure operations over fixed-extent
// rectangular arrays and the matching linear (slice) projections.
//
// What:
//
//   - Array[E] stores rows×cols elements row-major; either extent may be 0.
//     A nil *Array is "absent", which is distinct from an empty array.
//   - Line extracts one row or column (Row/Col are shorthands).
//   - Map/MapIndexed and MapSlice/MapSliceIndexed project every element.
//   - Convert changes the element type through a Converter named at the call
//     site (Numeric, CheckedNumeric, Boxed, Assert, OrZero, Nullable).
//   - Equivalent/EquivalentFunc/IsEquivalentTo compare shape and elements.
//   - Format/FormatSlice render arrays for diagnostics.
//
// Why:
//
//   - Every operation returns a new value and never mutates its input, so
//     all of them are safe for concurrent use on shared inputs.
//   - Conversions and element equality are compile-time capabilities rather
//     than runtime type inspection.
//
// Complexity:
//
//   - Line: O(extent of the target dimension).
//   - Map, Convert, Equivalent: O(rows×cols); Equivalent stops at the first mismatch.
//
// Errors:
//
//   - ErrNilArray: required array or slice is nil.
//   - ErrNilFunc: required selector or converter is nil.
//   - ErrInvalidDimension: dimension is neither Dim0 nor Dim1.
//   - ErrOutOfRange: coordinate outside the extents.
//   - ErrConversion: an element could not be converted; the call is aborted.
//   - ErrBadShape, ErrNonRectangular: construction failures.
//
// Example:
//
//	a, _ := array2d.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
//	col, _ := array2d.Line(a, array2d.Dim0, 1) // [2 5]
//	row, _ := array2d.Line(a, array2d.Dim1, 0) // [1 2 3]
package array2d
