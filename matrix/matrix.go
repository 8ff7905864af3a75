// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major, one Row per row) & safe accessors.
//
// Purpose:
//   - Own an ordered set of equally long Rows built once from rectangular input.
//   - Guarantee safety at the public surface: accessors return errors instead
//     of panicking.
//   - Keep shape immutable so concurrent shape/row reads need no locks.
//
// Shape policy:
//   - Zero rows is rejected (ErrEmptyMatrix) and every row must be non-empty,
//     so a constructed Matrix always has Rows() >= 1 and Cols() >= 1.
//
// AI-Hints:
//   - Build once with New, partition with Batch2DRanges or Split, hand one range
//     (or Segment) to each worker, join, then read with At/Row/ToSlices.
//   - WithAdoptRows avoids the O(r*c) copy when the caller gives up its input.
//
// Complexity quicksheet:
//   - New: O(r*c) validate + copy; Shape/Rows/Cols/Len/Row/RowAt/At: O(1);
//     AllRows: O(r); ToSlices/String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew   = "New"   // ctor tag used in error wrappers
	ctxAt    = "At"    // method tag used in error wrappers
	ctxRow   = "Row"   // method tag used in error wrappers
	ctxRowOf = "RowAt" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixErrorf wraps an error with a uniform Matrix context and call-site arguments.
//   - method: context tag (ctxNew/ctxAt/...)
//   - args:   rendered inside the parentheses, comma-separated
//
// Complexity: O(len(args)).
func matrixErrorf(method string, err error, args ...int) error {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}

	return fmt.Errorf("Matrix.%s(%s): %w", method, strings.Join(parts, ","), err)
}

// Matrix is a dense, row-oriented grid of Rows sharing one column count.
//   - rows keeps insertion order; row index is identity.
//   - cols is the common row length, fixed at construction.
//
// Methods that return an error report ErrNilMatrix on a nil receiver; the
// plain accessors (Rows, Cols, Shape, Len, AllRows, ToSlices, String) need a
// Matrix from New.
//
// A *Matrix may be shared freely across goroutines: shape and row identity
// never change after New. Element values change only through
// Row.RawMutable or Segment handles, under the disjoint-access contract.
type Matrix[T Number] struct {
	rows []*Row[T] // len >= 1 after New
	cols int       // >= 1 after New
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// New builds a Matrix from rectangular row data.
// MAIN DESCRIPTION:
//   - Validated, all-or-nothing constructor.
//
// Implementation:
//   - Stage 1: ValidateRectangular (empty matrix, empty row, ragged rows).
//   - Stage 2: resolve options (copy or adopt backing slices).
//   - Stage 3: wrap each row in a Row, preserving order.
//
// Behavior highlights:
//   - No partially built Matrix is ever returned.
//   - Input is deep-copied unless WithAdoptRows is given.
//
// Inputs:
//   - data: rows of elements; every row must have len(data[0]) elements.
//   - opts: construction options.
//
// Returns:
//   - *Matrix[T] on success.
//
// Errors:
//   - ErrEmptyMatrix, ErrEmptyRow, ErrInconsistentRowLength.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (O(r) with WithAdoptRows).
func New[T Number](data [][]T, opts ...Option) (*Matrix[T], error) {
	if err := ValidateRectangular(data); err != nil {
		return nil, fmt.Errorf("Matrix.%s: %w", ctxNew, err)
	}
	o := gatherOptions(opts...)

	rows := make([]*Row[T], len(data))
	for i, src := range data {
		if o.copyRows {
			buf := make([]T, len(src))
			copy(buf, src)
			rows[i] = newRowRaw(buf)
			continue
		}
		rows[i] = newRowRaw(src)
	}

	return &Matrix[T]{rows: rows, cols: len(data[0])}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return len(m.rows) }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
// Complexity: O(1).
func (m *Matrix[T]) Shape() (rows, cols int) { return len(m.rows), m.cols }

// Len returns the total element count rows*cols.
// Complexity: O(1).
func (m *Matrix[T]) Len() int { return len(m.rows) * m.cols }

// Row returns a read view of row i's elements, or ErrOutOfRange.
// The view aliases live storage: values may change while workers run.
// Complexity: O(1).
func (m *Matrix[T]) Row(i int) ([]T, error) {
	if m == nil {
		return nil, matrixErrorf(ctxRow, ErrNilMatrix, i)
	}
	if i < 0 || i >= len(m.rows) {
		return nil, matrixErrorf(ctxRow, ErrOutOfRange, i)
	}

	return m.rows[i].View(), nil
}

// RowAt returns the Row handle for row i, or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) RowAt(i int) (*Row[T], error) {
	if m == nil {
		return nil, matrixErrorf(ctxRowOf, ErrNilMatrix, i)
	}
	if i < 0 || i >= len(m.rows) {
		return nil, matrixErrorf(ctxRowOf, ErrOutOfRange, i)
	}

	return m.rows[i], nil
}

// AllRows returns every Row in order.
// The returned slice is a fresh header; reordering it does not affect m.
// Complexity: O(r).
func (m *Matrix[T]) AllRows() []*Row[T] {
	out := make([]*Row[T], len(m.rows))
	copy(out, m.rows)

	return out
}

// At returns the element at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	if m == nil {
		var zero T
		return zero, matrixErrorf(ctxAt, ErrNilMatrix, row, col)
	}
	if row < 0 || row >= len(m.rows) || col < 0 || col >= m.cols {
		var zero T
		return zero, matrixErrorf(ctxAt, ErrOutOfRange, row, col)
	}

	return m.rows[row].data[col], nil
}

// ToSlices returns a deep copy of the contents as [][]T.
// Call it after all workers have been joined.
// Complexity: O(r*c).
func (m *Matrix[T]) ToSlices() [][]T {
	out := make([][]T, len(m.rows))
	for i, r := range m.rows {
		out[i] = r.Clone()
	}

	return out
}

// String renders rows as "[a, b]\n" lines for diagnostics.
// Not for hot paths.
// Complexity: O(r*c).
func (m *Matrix[T]) String() string {
	var b strings.Builder
	for _, r := range m.rows { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		for j, v := range r.data {
			fmt.Fprintf(&b, "%v", v)
			if j+1 < len(r.data) {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
