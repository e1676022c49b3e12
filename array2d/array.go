// SPDX-License-Identifier: MIT

// Package array2d provides a fixed-extent rectangular array container and
// pure, allocation-returning operations over it.
// Array is a row-major container storing elements in a flat slice.
package array2d

// Array is a fixed-extent, zero-indexed rectangular array of E values.
// r is the extent of Dim0, c the extent of Dim1, and data holds r*c elements
// in row-major order. Either extent may be zero; a nil *Array is "absent".
type Array[E any] struct {
	r, c int // extents of Dim0 and Dim1
	data []E // flat backing storage, len(data) == r*c
}

// New creates an rows×cols Array of zero values.
// Zero extents are allowed and yield an empty (but present) array.
// Returns ErrBadShape if either extent is negative.
// Complexity: O(rows*cols) time and memory.
func New[E any](rows, cols int) (*Array[E], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, opErrorf("New", err)
	}

	return newArray[E](rows, cols), nil
}

// newArray allocates without validation; callers guarantee rows, cols >= 0.
func newArray[E any](rows, cols int) *Array[E] {
	return &Array[E]{r: rows, c: cols, data: make([]E, rows*cols)}
}

// FromRows builds an Array from a slice of equally long rows.
// The input is deep-copied, so later changes to rows do not leak in.
// [][]E{} yields 0×0 and [][]E{{}, {}, {}} yields 3×0.
// Returns ErrNilArray for a nil outer slice and ErrNonRectangular for ragged rows.
// Complexity: O(rows*cols).
func FromRows[E any](rows [][]E) (*Array[E], error) {
	if rows == nil {
		return nil, opErrorf("FromRows", ErrNilArray)
	}
	if err := validateRectangular(rows); err != nil {
		return nil, opErrorf("FromRows", err)
	}

	r, c := len(rows), 0
	if r > 0 {
		c = len(rows[0])
	}
	a := newArray[E](r, c)
	for i, row := range rows {
		copy(a.data[i*c:(i+1)*c], row)
	}

	return a, nil
}

// Rows returns the extent of Dim0.
// Complexity: O(1).
func (a *Array[E]) Rows() int {
	return a.r
}

// Cols returns the extent of Dim1.
// Complexity: O(1).
func (a *Array[E]) Cols() int {
	return a.c
}

// Dims returns both extents.
func (a *Array[E]) Dims() (rows, cols int) {
	return a.r, a.c
}

// Len returns the extent of the given dimension.
// Returns ErrInvalidDimension if d is neither Dim0 nor Dim1.
func (a *Array[E]) Len(d Dimension) (int, error) {
	switch d {
	case Dim0:
		return a.r, nil
	case Dim1:
		return a.c, nil
	default:
		return 0, opErrorf("Len", ErrInvalidDimension)
	}
}

// Size returns the total element count, Rows()*Cols().
func (a *Array[E]) Size() int {
	return len(a.data)
}

// IsEmpty reports whether the array holds zero elements.
func (a *Array[E]) IsEmpty() bool {
	return len(a.data) == 0
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (a *Array[E]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= a.r || col < 0 || col >= a.c {
		return 0, cellErrorf(method, row, col, ErrOutOfRange)
	}

	return row*a.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange if either coordinate is outside the extents.
// Complexity: O(1).
func (a *Array[E]) At(row, col int) (E, error) {
	idx, err := a.indexOf("At", row, col)
	if err != nil {
		var zero E
		return zero, err
	}

	return a.data[idx], nil
}

// Set assigns v at (row, col).
// Returns ErrOutOfRange if either coordinate is outside the extents.
// Complexity: O(1).
func (a *Array[E]) Set(row, col int, v E) error {
	idx, err := a.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	a.data[idx] = v

	return nil
}

// Clone returns a shallow element copy with independent storage.
// Cloning a nil array returns nil.
// Complexity: O(r*c).
func (a *Array[E]) Clone() *Array[E] {
	if a == nil {
		return nil
	}
	out := newArray[E](a.r, a.c)
	copy(out.data, a.data)

	return out
}

// ToRows copies the array out as a slice of rows.
// A nil array yields nil; an r×0 array yields r empty rows.
func (a *Array[E]) ToRows() [][]E {
	if a == nil {
		return nil
	}
	rows := make([][]E, a.r)
	for i := 0; i < a.r; i++ {
		rows[i] = make([]E, a.c)
		copy(rows[i], a.data[i*a.c:(i+1)*a.c])
	}

	return rows
}

// String implements fmt.Stringer using the Format rendering.
func (a *Array[E]) String() string {
	return Format(a)
}
