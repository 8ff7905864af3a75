// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for constructors and partitions.
//   • Keep the shape sweep in one place so property tests share it.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/parmat/matrix"
)

// maxSweep bounds rows, cols and workers in exhaustive property sweeps.
const maxSweep = 7

// MustMatrix builds a Matrix from data or fails the test.
func MustMatrix[T matrix.Number](t testing.TB, data [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New(data)
	if err != nil {
		t.Fatalf("New(%v): %v", data, err)
	}

	return m
}

// Sequential returns an r×c grid holding 1..r*c in row-major order.
func Sequential(r, c int) [][]int {
	out := make([][]int, r)
	v := 1
	for i := range out {
		out[i] = make([]int, c)
		for j := range out[i] {
			out[i][j] = v
			v++
		}
	}

	return out
}

// Zeros returns an r×c grid of zero float64s.
func Zeros(r, c int) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
	}

	return out
}

// sum adds up ints.
func sum(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}

	return s
}

// sweep calls fn for every rows, cols in 1..maxSweep and workers in 1..rows*cols+2.
func sweep(t *testing.T, fn func(t *testing.T, rows, cols, workers int)) {
	t.Helper()
	for r := 1; r <= maxSweep; r++ {
		for c := 1; c <= maxSweep; c++ {
			for w := 1; w <= r*c+2; w++ {
				fn(t, r, c, w)
			}
		}
	}
}
