// SPDX-License-Identifier: MIT

package array2d

// Line returns every element along the target dimension at a fixed index of
// the other dimension, as a new slice.
//
//	Line(a, Dim0, j)[i] == a[i, j]   (length Rows())
//	Line(a, Dim1, i)[j] == a[i, j]   (length Cols())
//
// Errors (in priority order):
//   - ErrNilArray if a is nil.
//   - ErrInvalidDimension if target is neither Dim0 nor Dim1.
//   - ErrOutOfRange if index does not address the other dimension. The index
//     is not pre-checked; the error surfaces from the first element access.
//
// An array that is empty along target yields an empty non-nil slice and no
// error, whatever the index.
// Complexity: O(extent of target).
func Line[E any](a *Array[E], target Dimension, index int) ([]E, error) {
	if err := validateArray(a); err != nil {
		return nil, opErrorf("Line", err)
	}
	if err := validateDimension(target); err != nil {
		return nil, opErrorf("Line", err)
	}

	n, _ := a.Len(target)
	out := make([]E, n)

	var (
		v   E
		err error
	)
	for i := 0; i < n; i++ {
		if target == Dim0 {
			v, err = a.At(i, index)
		} else {
			v, err = a.At(index, i)
		}
		if err != nil {
			return nil, opErrorf("Line", err)
		}
		out[i] = v
	}

	return out, nil
}

// Row is shorthand for Line(a, Dim1, i).
func Row[E any](a *Array[E], i int) ([]E, error) {
	return Line(a, Dim1, i)
}

// Col is shorthand for Line(a, Dim0, j).
func Col[E any](a *Array[E], j int) ([]E, error) {
	return Line(a, Dim0, j)
}
