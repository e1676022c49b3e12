// SPDX-License-Identifier: MIT
// Package: array2d
//
// Purpose:
//   - Convert an Array[E] into an Array[R] through a Converter chosen at the
//     call site. There is no runtime type discovery: the set of legal
//     conversions is whatever converters the caller can name.
//
// Contract:
//   - An absent source cell (nil *E) becomes the zero value of the target,
//     via OrZero or Nullable.
//   - The first failing element aborts the call; no partial result escapes.
//   - Empty arrays never invoke the converter, so they cannot fail.

package array2d

import (
	"errors"
	"fmt"
)

// Convert returns a new array of a's shape where out[i,j] = conv(a[i,j]).
// Errors:
//   - ErrNilArray if a is nil, ErrNilFunc if conv is nil.
//   - ErrConversion (with the failing cell in the message) if conv fails.
//
// Time: O(r*c). Space: O(r*c).
func Convert[E, R any](a *Array[E], conv Converter[E, R]) (*Array[R], error) {
	if err := validateArray(a); err != nil {
		return nil, opErrorf("Convert", err)
	}
	if conv == nil {
		return nil, opErrorf("Convert", ErrNilFunc)
	}

	out := newArray[R](a.r, a.c)
	for i := 0; i < a.r; i++ {
		base := i * a.c
		for j := 0; j < a.c; j++ {
			v, err := conv(a.data[base+j])
			if err != nil {
				if !errors.Is(err, ErrConversion) {
					err = fmt.Errorf("%w: %w", ErrConversion, err)
				}
				return nil, cellErrorf("Convert", i, j, err)
			}
			out.data[base+j] = v
		}
	}

	return out, nil
}

// Numeric converts between numeric types with Go conversion semantics
// (truncation toward zero for float→int, wrap-around for integer narrowing).
// It never fails.
func Numeric[E, R Number]() Converter[E, R] {
	return func(v E) (R, error) {
		return R(v), nil
	}
}

// CheckedNumeric converts between numeric types and fails with ErrConversion
// when the value does not survive the round trip or changes sign: overflow,
// dropped fraction or NaN into an integer type.
func CheckedNumeric[E, R Number]() Converter[E, R] {
	return func(v E) (R, error) {
		r := R(v)
		if v != v { // NaN source: only a NaN target represents it
			if r != r {
				return r, nil
			}
			return r, fmt.Errorf("%w: NaN is not representable as %T", ErrConversion, r)
		}
		if E(r) != v || (v < 0) != (r < 0) {
			return r, fmt.Errorf("%w: %v is not representable as %T", ErrConversion, v, r)
		}

		return r, nil
	}
}

// Boxed converts any element into an interface value. It never fails.
func Boxed[E any]() Converter[E, any] {
	return func(v E) (any, error) {
		return v, nil
	}
}

// Assert unboxes an interface element into R by type assertion.
// A nil box is absent and yields the zero R; a value of any other dynamic
// type fails with ErrConversion.
func Assert[R any]() Converter[any, R] {
	return func(v any) (R, error) {
		var zero R
		if v == nil {
			return zero, nil
		}
		r, ok := v.(R)
		if !ok {
			return zero, fmt.Errorf("%w: %T is not %T", ErrConversion, v, zero)
		}

		return r, nil
	}
}

// OrZero lifts conv over a nullable source: a nil cell yields the zero R
// without calling conv; otherwise conv receives the pointed-to value.
// Returns nil if conv is nil, so Convert reports ErrNilFunc.
func OrZero[E, R any](conv Converter[E, R]) Converter[*E, R] {
	if conv == nil {
		return nil
	}

	return func(p *E) (R, error) {
		if p == nil {
			var zero R
			return zero, nil
		}

		return conv(*p)
	}
}

// Nullable lifts conv over nullable source and target: a nil cell stays nil,
// otherwise the underlying value is converted and the result re-wrapped.
// Returns nil if conv is nil, so Convert reports ErrNilFunc.
func Nullable[E, R any](conv Converter[E, R]) Converter[*E, *R] {
	if conv == nil {
		return nil
	}

	return func(p *E) (*R, error) {
		if p == nil {
			return nil, nil
		}
		r, err := conv(*p)
		if err != nil {
			return nil, err
		}

		return &r, nil
	}
}
