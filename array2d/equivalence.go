// SPDX-License-Identifier: MIT

package array2d

import "reflect"

// Equivalent reports whether a and b have the same shape and equal elements
// at every coordinate. Two nil arrays are equivalent; a nil and a non-nil
// array are not. Empty arrays compare by shape only, so 3×0 differs from 0×3.
// Cells compare with equalValues: NaN equals NaN, and interface cells holding
// uncomparable values (slices, maps, funcs) fall back to reflect.DeepEqual
// instead of panicking. The predicate is symmetric and reflexive.
// Complexity: O(r*c), stopping at the first mismatch.
func Equivalent[E comparable](a, b *Array[E]) bool {
	return EquivalentFunc(a, b, equalValues[E])
}

// EquivalentFunc is Equivalent with an explicit element equality, which lets
// arrays of different element types be compared (for example []int against
// boxed values with EqualBoxed). eq must be symmetric for the result to be.
// A nil eq is treated as "no element is equal", so only arrays without
// elements can be equivalent.
func EquivalentFunc[A, B any](a *Array[A], b *Array[B], eq func(A, B) bool) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	if len(a.data) == 0 {
		return true
	}
	if eq == nil {
		return false
	}
	for k := range a.data {
		if !eq(a.data[k], b.data[k]) {
			return false
		}
	}

	return true
}

// IsEquivalentTo reports whether source is equivalent to target.
// It is Equivalent with the operands swapped and gives the same answer.
func IsEquivalentTo[E comparable](source, target *Array[E]) bool {
	return Equivalent(target, source)
}

// EqualNullable compares two nullable values: both nil are equal, one nil is
// not, otherwise the pointed-to values are compared. Pointer identity is
// irrelevant.
func EqualNullable[E comparable](x, y *E) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}

	return equalValues(*x, *y)
}

// EqualBoxed compares a typed value with a boxed one. It is true only when y
// holds a value of exactly type E equal to x. An empty box equals x only when
// x itself boxes to nil.
func EqualBoxed[E comparable](x E, y any) bool {
	if y == nil {
		return any(x) == nil
	}
	v, ok := y.(E)

	return ok && equalValues(v, x)
}

// equalValues is == with two amendments: a NaN equals a NaN, and a comparison
// that panics on an uncomparable dynamic type is retried with reflect.DeepEqual.
func equalValues[E comparable](x, y E) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(x, y)
		}
	}()

	return x == y || (x != x && y != y)
}
