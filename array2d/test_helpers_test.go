// SPDX-License-Identifier: MIT
// Package array2d_test contains test helpers.

package array2d_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arraykit/array2d"
)

// MustFromRows builds an array from rows or fails the test.
func MustFromRows[E any](t *testing.T, rows [][]E) *array2d.Array[E] {
	t.Helper()
	a, err := array2d.FromRows(rows)
	require.NoError(t, err)

	return a
}

// MustNew allocates an r×c zero array or fails the test.
func MustNew[E any](t *testing.T, r, c int) *array2d.Array[E] {
	t.Helper()
	a, err := array2d.New[E](r, c)
	require.NoError(t, err)

	return a
}

func ptr[E any](v E) *E { return &v }
