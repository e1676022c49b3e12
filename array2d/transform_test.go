// SPDX-License-Identifier: MIT

package array2d_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arraykit/array2d"
)

func TestMapSlice(t *testing.T) {
	t.Parallel()

	got, err := array2d.MapSlice([]int{1, 2, 3}, func(x int) int { return x * 2 })
	require.NoError(t, err)
	require.Equal(t, []int{2, 4, 6}, got)

	got, err = array2d.MapSliceIndexed([]int{1, 2, 3}, func(x, i int) int { return x * i })
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 6}, got)

	strs, err := array2d.MapSlice([]int{7}, strconv.Itoa)
	require.NoError(t, err)
	require.Equal(t, []string{"7"}, strs)
}

func TestMapSlice_Empty(t *testing.T) {
	t.Parallel()

	calls := 0
	got, err := array2d.MapSlice([]int{}, func(x int) int { calls++; return x })
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)

	got, err = array2d.MapSliceIndexed([]int{}, func(x, _ int) int { calls++; return x })
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
	require.Zero(t, calls)
}

func TestMapSlice_Errors(t *testing.T) {
	t.Parallel()

	_, err := array2d.MapSlice[int, int](nil, func(x int) int { return x })
	require.ErrorIs(t, err, array2d.ErrNilArray)
	_, err = array2d.MapSlice[int, int]([]int{1}, nil)
	require.ErrorIs(t, err, array2d.ErrNilFunc)
	_, err = array2d.MapSlice[int, int](nil, nil)
	require.ErrorIs(t, err, array2d.ErrNilArray)

	_, err = array2d.MapSliceIndexed[int, int](nil, func(x, _ int) int { return x })
	require.ErrorIs(t, err, array2d.ErrNilArray)
	_, err = array2d.MapSliceIndexed[int, int]([]int{1}, nil)
	require.ErrorIs(t, err, array2d.ErrNilFunc)
}

func TestMap_Scenario(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, 2}, {2, 3}, {3, 4}})
	got, err := array2d.Map(a, func(x int) int { return x * 2 })
	require.NoError(t, err)

	want := MustFromRows(t, [][]int{{2, 4}, {4, 6}, {6, 8}})
	require.True(t, array2d.Equivalent(want, got), "got %s", got)

	// Input untouched.
	require.Equal(t, [][]int{{1, 2}, {2, 3}, {3, 4}}, a.ToRows())
}

func TestMapIndexed(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]int{{1, 2}, {2, 3}, {3, 4}})
	got, err := array2d.MapIndexed(a, func(x, i, j int) int { return x * i * j })
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 0}, {0, 3}, {0, 8}}, got.ToRows())
}

func TestMapIndexed_RowMajorOrder(t *testing.T) {
	t.Parallel()

	a := MustNew[int](t, 2, 3)
	var visited [][2]int
	_, err := array2d.MapIndexed(a, func(_ int, i, j int) struct{} {
		visited = append(visited, [2]int{i, j})
		return struct{}{}
	})
	require.NoError(t, err)
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, visited)

	var order []int
	b := MustFromRows(t, [][]int{{1, 2}, {3, 4}})
	_, err = array2d.Map(b, func(x int) int { order = append(order, x); return x })
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4}, order)
}

func TestMap_EmptyKeepsShape(t *testing.T) {
	t.Parallel()

	for _, shape := range [][2]int{{0, 0}, {3, 0}, {0, 3}} {
		a := MustNew[int](t, shape[0], shape[1])
		calls := 0

		got, err := array2d.Map(a, func(x int) string { calls++; return "" })
		require.NoError(t, err)
		require.Equal(t, shape[0], got.Rows())
		require.Equal(t, shape[1], got.Cols())

		gotIdx, err := array2d.MapIndexed(a, func(x, _, _ int) int { calls++; return x })
		require.NoError(t, err)
		require.True(t, array2d.Equivalent(a, gotIdx))
		require.Zero(t, calls)
	}
}

func TestMap_Errors(t *testing.T) {
	t.Parallel()

	a := MustNew[int](t, 1, 1)

	_, err := array2d.Map[int, int](nil, func(x int) int { return x })
	require.ErrorIs(t, err, array2d.ErrNilArray)
	_, err = array2d.Map[int, int](a, nil)
	require.ErrorIs(t, err, array2d.ErrNilFunc)

	_, err = array2d.MapIndexed[int, int](nil, func(x, _, _ int) int { return x })
	require.ErrorIs(t, err, array2d.ErrNilArray)
	_, err = array2d.MapIndexed[int, int](a, nil)
	require.ErrorIs(t, err, array2d.ErrNilFunc)
}
