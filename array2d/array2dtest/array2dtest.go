// SPDX-License-Identifier: MIT

// Package array2dtest provides testify-style assertions for array2d arrays.
// Failures print both operands in the array2d.Format rendering, e.g.
//
//	expected: equivalent to < < 1, 2 >, < 3, 4 > >
//	actual  : < < 1, 2 >, < 3, 5 > >
package array2dtest

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arraykit/array2d"
)

type tHelper interface {
	Helper()
}

// AssertEquivalent asserts that actual is equivalent to expected
// (same shape, equal elements, or both nil).
func AssertEquivalent[E comparable](t assert.TestingT, expected, actual *array2d.Array[E], msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if array2d.Equivalent(expected, actual) {
		return true
	}

	return assert.Fail(t, failureMessage(array2d.Format(expected), array2d.Format(actual)), msgAndArgs...)
}

// AssertEquivalentFunc is AssertEquivalent for operands of different element
// types, compared with eq.
func AssertEquivalentFunc[A, B any](t assert.TestingT, expected *array2d.Array[A], actual *array2d.Array[B], eq func(A, B) bool, msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if array2d.EquivalentFunc(expected, actual, eq) {
		return true
	}

	return assert.Fail(t, failureMessage(array2d.Format(expected), array2d.Format(actual)), msgAndArgs...)
}

// AssertNotEquivalent asserts that actual differs from expected in shape,
// presence or at least one element.
func AssertNotEquivalent[E comparable](t assert.TestingT, expected, actual *array2d.Array[E], msgAndArgs ...interface{}) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !array2d.Equivalent(expected, actual) {
		return true
	}

	return assert.Fail(t, fmt.Sprintf("Should not be equivalent to %s", array2d.Format(expected)), msgAndArgs...)
}

// RequireEquivalent is AssertEquivalent that stops the test on failure.
func RequireEquivalent[E comparable](t require.TestingT, expected, actual *array2d.Array[E], msgAndArgs ...interface{}) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if AssertEquivalent(t, expected, actual, msgAndArgs...) {
		return
	}
	t.FailNow()
}

func failureMessage(expected, actual string) string {
	return fmt.Sprintf("Not equivalent:\nexpected: equivalent to %s\nactual  : %s", expected, actual)
}
