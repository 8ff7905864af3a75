// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All constructors, accessors and partition routines MUST return
// these sentinels and tests MUST check them via errors.Is. No exported
// function panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites attach context with the *Errorf
// helpers (rowErrorf, matrixErrorf, validatorErrorf); callers still match
// with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> empty matrix -> empty row -> inconsistent row length
// -> worker count -> workload shape -> range coverage.

var (
	// ErrEmptyRow is returned when a row with zero elements is passed to a
	// validated constructor (NewRow, New).
	ErrEmptyRow = errors.New("matrix: row cannot be empty")

	// ErrInconsistentRowLength is returned when rows of differing lengths are
	// passed to New or ValidateRectangular.
	ErrInconsistentRowLength = errors.New("matrix: inconsistent row length")

	// ErrEmptyMatrix is returned when zero rows are passed to New.
	// A constructed Matrix therefore always has Rows() >= 1 and Cols() >= 1.
	ErrEmptyMatrix = errors.New("matrix: matrix has no rows")

	// ErrOutOfRange indicates that a row, column, element or segment offset
	// is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Matrix was passed to, or used as the
	// receiver of, a function that returns an error (partition entry points,
	// Split, Row, RowAt, At). Accessors without an error result require a
	// non-nil Matrix.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrInvalidWorkerCount is returned when a partition is requested for
	// fewer than one worker.
	ErrInvalidWorkerCount = errors.New("matrix: worker count must be > 0")

	// ErrInvalidWorkload is returned when a per-worker element count is
	// negative, or when an idle worker precedes a non-idle one.
	ErrInvalidWorkload = errors.New("matrix: invalid per-worker workload")

	// ErrWorkloadMismatch is returned when per-worker counts (or ranges) do
	// not add up to the matrix element count.
	ErrWorkloadMismatch = errors.New("matrix: workload does not cover matrix")

	// ErrRangeOverlap signals two worker ranges that share an element.
	ErrRangeOverlap = errors.New("matrix: worker ranges overlap")

	// ErrRangeGap signals an element that no worker range covers, or a range
	// whose bounds are inverted or outside the element space.
	ErrRangeGap = errors.New("matrix: worker ranges leave a gap")
)
