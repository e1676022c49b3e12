// SPDX-License-Identifier: MIT
// Package: array2d
//
// Purpose:
//   - Element-wise projections over linear and rectangular arrays.
//   - Every call allocates a fresh output of the input's shape; inputs are
//     never mutated.
//
// Determinism:
//   - Fixed row-major loop order (i outer, j inner; flat 0..n-1 for slices),
//     so selector side effects are observed in a stable order.
//   - Empty inputs never invoke the selector.

package array2d

// MapSlice returns a new slice where out[i] = fn(s[i]).
// Returns ErrNilArray for a nil slice and ErrNilFunc for a nil fn.
// Time: O(n). Space: O(n).
func MapSlice[E, R any](s []E, fn func(E) R) ([]R, error) {
	if err := validateSlice(s); err != nil {
		return nil, opErrorf("MapSlice", err)
	}
	if fn == nil {
		return nil, opErrorf("MapSlice", ErrNilFunc)
	}

	out := make([]R, len(s))
	for i := range s {
		out[i] = fn(s[i])
	}

	return out, nil
}

// MapSliceIndexed returns a new slice where out[i] = fn(s[i], i).
// Returns ErrNilArray for a nil slice and ErrNilFunc for a nil fn.
// Time: O(n). Space: O(n).
func MapSliceIndexed[E, R any](s []E, fn func(E, int) R) ([]R, error) {
	if err := validateSlice(s); err != nil {
		return nil, opErrorf("MapSliceIndexed", err)
	}
	if fn == nil {
		return nil, opErrorf("MapSliceIndexed", ErrNilFunc)
	}

	out := make([]R, len(s))
	for i := range s {
		out[i] = fn(s[i], i)
	}

	return out, nil
}

// Map returns a new array of a's shape where out[i,j] = fn(a[i,j]).
// Returns ErrNilArray for a nil array and ErrNilFunc for a nil fn.
// Time: O(r*c). Space: O(r*c).
func Map[E, R any](a *Array[E], fn func(E) R) (*Array[R], error) {
	if err := validateArray(a); err != nil {
		return nil, opErrorf("Map", err)
	}
	if fn == nil {
		return nil, opErrorf("Map", ErrNilFunc)
	}

	out := newArray[R](a.r, a.c)
	// Row-major over the flat buffer is the same order as i→j.
	for k := range a.data {
		out.data[k] = fn(a.data[k])
	}

	return out, nil
}

// MapIndexed returns a new array of a's shape where out[i,j] = fn(a[i,j], i, j).
// Returns ErrNilArray for a nil array and ErrNilFunc for a nil fn.
// Time: O(r*c). Space: O(r*c).
func MapIndexed[E, R any](a *Array[E], fn func(E, int, int) R) (*Array[R], error) {
	if err := validateArray(a); err != nil {
		return nil, opErrorf("MapIndexed", err)
	}
	if fn == nil {
		return nil, opErrorf("MapIndexed", ErrNilFunc)
	}

	out := newArray[R](a.r, a.c)
	for i := 0; i < a.r; i++ {
		base := i * a.c // row offset
		for j := 0; j < a.c; j++ {
			out.data[base+j] = fn(a.data[base+j], i, j)
		}
	}

	return out, nil
}
