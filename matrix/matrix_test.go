// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Matrix construction and accessors.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/parmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewShape verifies that every rectangular R×C input builds with Shape (R, C).
func TestNewShape(t *testing.T) {
	for r := 1; r <= maxSweep; r++ {
		for c := 1; c <= maxSweep; c++ {
			m, err := matrix.New(Sequential(r, c))
			require.NoError(t, err)

			rows, cols := m.Shape()
			require.Equal(t, r, rows)
			require.Equal(t, c, cols)
			require.Equal(t, r, m.Rows())
			require.Equal(t, c, m.Cols())
			require.Equal(t, r*c, m.Len())
		}
	}
}

// TestNewErrors covers the construction error table.
func TestNewErrors(t *testing.T) {
	tests := []struct {
		name string
		data [][]int
		want error
	}{
		{"no rows", [][]int{}, matrix.ErrEmptyMatrix},
		{"nil rows", nil, matrix.ErrEmptyMatrix},
		{"empty first row", [][]int{{}, {1}}, matrix.ErrEmptyRow},
		{"empty later row", [][]int{{1, 2}, {}}, matrix.ErrEmptyRow},
		{"short second row", [][]int{{1, 2, 3}, {4, 5}}, matrix.ErrInconsistentRowLength},
		{"long middle row", [][]int{{1, 2, 3}, {4, 5, 6, 7}, {7, 8, 9}}, matrix.ErrInconsistentRowLength},
		{"ragged last row", [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8}}, matrix.ErrInconsistentRowLength},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.New(tc.data)
			require.Nil(t, m)
			require.Truef(t, errors.Is(err, tc.want), "expected errors.Is(%v, %v)", err, tc.want)
		})
	}
}

// TestNewInconsistentNamesRow checks the wrapped message carries the offending row.
func TestNewInconsistentNamesRow(t *testing.T) {
	_, err := matrix.New([][]int{{1, 2, 3}, {4, 5}})
	require.ErrorIs(t, err, matrix.ErrInconsistentRowLength)
	require.Contains(t, err.Error(), "row 1")
}

// TestNewCopiesByDefault ensures later writes to the input do not reach the Matrix.
func TestNewCopiesByDefault(t *testing.T) {
	data := [][]int{{1, 2}, {3, 4}}
	m := MustMatrix(t, data)

	data[0][0] = 99
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
}

// TestNewAdoptRows ensures WithAdoptRows shares the caller's backing slices.
func TestNewAdoptRows(t *testing.T) {
	data := [][]int{{1, 2}, {3, 4}}
	m, err := matrix.New(data, matrix.WithAdoptRows())
	require.NoError(t, err)

	data[1][1] = 40
	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 40, v)

	// last writer wins
	m2, err := matrix.New(data, matrix.WithAdoptRows(), matrix.WithCopyRows())
	require.NoError(t, err)
	data[1][1] = 41
	v, _ = m2.At(1, 1)
	require.Equal(t, 40, v)
}

// TestNewAdoptRowsRejected ensures a rejected input is not partially adopted.
func TestNewAdoptRowsRejected(t *testing.T) {
	m, err := matrix.New([][]int{{1}, {2, 3}}, matrix.WithAdoptRows())
	require.Nil(t, m)
	require.ErrorIs(t, err, matrix.ErrInconsistentRowLength)
}

// TestRowAccessors covers Row, RowAt, AllRows and their bounds.
func TestRowAccessors(t *testing.T) {
	m := MustMatrix(t, Sequential(3, 3))

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, row)

	_, err = m.Row(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	r, err := m.RowAt(2)
	require.NoError(t, err)
	require.Equal(t, []int{7, 8, 9}, r.View())
	_, err = m.RowAt(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	all := m.AllRows()
	require.Len(t, all, 3)
	want := Sequential(3, 3)
	for i := range all {
		require.Equal(t, want[i], all[i].View())
	}
	all[0], all[2] = all[2], all[0] // reordering the copy leaves m alone
	row, _ = m.Row(0)
	require.Equal(t, []int{1, 2, 3}, row)
}

// TestAt covers valid reads and every out-of-range edge.
func TestAt(t *testing.T) {
	m := MustMatrix(t, Sequential(2, 3))

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6, v)

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}} {
		_, err = m.At(rc[0], rc[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
	}
}

// TestNilMatrixAccessors checks that error-returning accessors reject a nil receiver.
func TestNilMatrixAccessors(t *testing.T) {
	var m *matrix.Matrix[int]

	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.Row(0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.RowAt(0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = m.Split(1)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestToSlicesIndependent ensures ToSlices returns a deep copy.
func TestToSlicesIndependent(t *testing.T) {
	m := MustMatrix(t, Sequential(2, 2))
	out := m.ToSlices()
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, out)

	out[0][0] = 100
	v, _ := m.At(0, 0)
	require.Equal(t, 1, v)
}

// TestStringOutput checks the diagnostic format.
func TestStringOutput(t *testing.T) {
	m := MustMatrix(t, [][]float64{{1, 2.5}, {3, 4}})
	require.Equal(t, "[1, 2.5]\n[3, 4]\n", m.String())
}

// TestNumberKinds instantiates Matrix over every supported element kind.
func TestNumberKinds(t *testing.T) {
	type celsius float64

	checkKind(t, [][]int{{1}})
	checkKind(t, [][]int8{{1}})
	checkKind(t, [][]int16{{1}})
	checkKind(t, [][]int32{{1}})
	checkKind(t, [][]int64{{1}})
	checkKind(t, [][]uint{{1}})
	checkKind(t, [][]uint8{{1}})
	checkKind(t, [][]uint16{{1}})
	checkKind(t, [][]uint32{{1}})
	checkKind(t, [][]uint64{{1}})
	checkKind(t, [][]uintptr{{1}})
	checkKind(t, [][]float32{{1}})
	checkKind(t, [][]float64{{1}})
	checkKind(t, [][]celsius{{1}})
}

func checkKind[T matrix.Number](t *testing.T, data [][]T) {
	t.Helper()
	m := MustMatrix(t, data)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, T(1), v)
}
