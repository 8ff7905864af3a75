// SPDX-License-Identifier: MIT

// Package matrix - Row: one mutable element sequence shared across workers.
//
// Purpose:
//   - Hold one row of a Matrix in a single contiguous slice.
//   - Expose that slice to many goroutines at once without locks (RawMutable).
//   - Keep safe, bounds-checked reads at the public surface (At).
//
// Concurrency contract:
//   - A Row performs no locking, no atomics and no partition enforcement.
//   - Concurrent writers MUST touch disjoint element positions. The partition
//     routines in partition.go and the Segment handles in segment.go produce
//     such positions; any other access pattern is a data race.
//   - Rows never grow or shrink after construction, so the slice header
//     returned by View/RawMutable stays valid for the Matrix lifetime.
//
// Complexity quicksheet:
//   - NewRow: O(n) copy; Len/At/View/RawMutable: O(1); Clone: O(n).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxRowAt  = "At"  // method tag used in error wrappers
	ctxRowNew = "New" // ctor tag used in error wrappers
)

// rowErrorf wraps an error with a uniform Row context and the offending index.
func rowErrorf(method string, i int, err error) error {
	return fmt.Errorf("Row.%s(%d): %w", method, i, err)
}

// Row is a single ordered, mutable sequence of elements.
//   - data is the backing slice; its length is fixed at construction.
//
// A Row is owned by exactly one Matrix and lives as long as that Matrix.
type Row[T Number] struct {
	data []T // contiguous storage, len fixed after construction
}

// NewRow builds a Row holding a copy of elems, preserving order.
// MAIN DESCRIPTION:
//   - Validated construction path: empty input is rejected.
//
// Implementation:
//   - Stage 1: reject len(elems)==0 with ErrEmptyRow.
//   - Stage 2: copy into a fresh backing slice.
//
// Inputs:
//   - elems: source elements (not retained).
//
// Returns:
//   - *Row[T] on success.
//
// Errors:
//   - ErrEmptyRow.
//
// Complexity:
//   - Time O(n), Space O(n).
func NewRow[T Number](elems []T) (*Row[T], error) {
	if len(elems) == 0 {
		return nil, rowErrorf(ctxRowNew, 0, ErrEmptyRow)
	}
	buf := make([]T, len(elems))
	copy(buf, elems)

	return &Row[T]{data: buf}, nil
}

// newRowRaw wraps elems without copying or validation.
// Used only by Matrix assembly, which validates the whole input first.
func newRowRaw[T Number](elems []T) *Row[T] {
	return &Row[T]{data: elems}
}

// Len returns the element count.
// Complexity: O(1).
func (r *Row[T]) Len() int { return len(r.data) }

// At returns the element at position i or ErrOutOfRange.
// Complexity: O(1).
//
// AI-Hints:
//   - At is a plain load; reading a position another worker is writing is a
//     race like any other unsynchronized access.
func (r *Row[T]) At(i int) (T, error) {
	if i < 0 || i >= len(r.data) {
		var zero T
		return zero, rowErrorf(ctxRowAt, i, ErrOutOfRange)
	}

	return r.data[i], nil
}

// View returns the backing slice as a shared read view.
// Callers must not write through it; writers use RawMutable or a Segment.
// Complexity: O(1).
func (r *Row[T]) View() []T { return r.data }

// RawMutable returns the backing slice for in-place mutation.
//
// This is the unsafe aliasing primitive: any number of goroutines may hold the
// returned slice at the same time and nothing checks what they write. It is
// sound only when every concurrent holder restricts itself to element
// positions that no other holder touches, e.g. the columns of one Range2D
// from Matrix.Batch2DRanges. Prefer Matrix.Split, whose Segment handles carry
// exactly those positions and nothing else.
//
// Complexity: O(1).
func (r *Row[T]) RawMutable() []T { return r.data }

// Clone returns an independent copy of the row contents.
// Complexity: O(n).
func (r *Row[T]) Clone() []T {
	cp := make([]T, len(r.data))
	copy(cp, r.data)

	return cp
}
