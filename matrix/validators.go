// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for input and partition checks.
//  - Keep constructors and Split minimal by delegating checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing beyond error values.
//  - ValidateRectangular is O(r); ValidateLinearRanges is O(w).
//
// AI-Hints:
//  - Run ValidateLinearRanges on any range set that did not come straight from
//    this package (e.g. decoded from a plan file) before handing it to workers.
//
// Note:
//  - Each validator follows a fixed check sequence, documented on the function.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRectangular checks that data can back a Matrix.
//
// Sequence: no rows → per row in order: empty row → length equals the first.
// Errors:
//   - ErrEmptyMatrix if len(data)==0.
//   - ErrEmptyRow naming the first empty row.
//   - ErrInconsistentRowLength naming the first offending row.
//
// Complexity: O(r).
func ValidateRectangular[T Number](data [][]T) error {
	if len(data) == 0 {
		return validatorErrorf("ValidateRectangular", ErrEmptyMatrix)
	}
	cols := len(data[0])
	for i := range data {
		if len(data[i]) == 0 {
			return validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d", i), ErrEmptyRow)
		}
		if len(data[i]) != cols {
			return validatorErrorf(
				fmt.Sprintf("ValidateRectangular: row %d has %d elements, want %d", i, len(data[i]), cols),
				ErrInconsistentRowLength,
			)
		}
	}

	return nil
}

// ValidateLinearRanges checks that ranges form a disjoint, exact cover of
// 0..total-1 consistent with counts.
//
// Sequence:
//  1. len(ranges) == len(counts) > 0.
//  2. counts pass the workload rules (non-negative, idle entries trail,
//     no count larger than what is left, sum == total).
//  3. every non-idle range starts right after the previous one ends, ends
//     below total and spans exactly counts[i] elements.
//  4. every idle range equals the last non-idle range.
//
// Errors:
//   - ErrInvalidWorkerCount, ErrInvalidWorkload, ErrWorkloadMismatch,
//     ErrRangeOverlap, ErrRangeGap.
//
// Complexity: O(w).
func ValidateLinearRanges(ranges []LinearRange, counts []int, total int) error {
	if len(counts) == 0 {
		return validatorErrorf("ValidateLinearRanges", ErrInvalidWorkerCount)
	}
	if len(ranges) != len(counts) {
		return validatorErrorf(
			fmt.Sprintf("ValidateLinearRanges: %d ranges for %d workers", len(ranges), len(counts)),
			ErrWorkloadMismatch,
		)
	}
	if err := validateWorkload(counts, total); err != nil {
		return validatorErrorf("ValidateLinearRanges", err)
	}

	var last LinearRange
	next := 0
	for i, r := range ranges {
		if counts[i] == 0 {
			if r != last {
				return validatorErrorf(
					fmt.Sprintf("ValidateLinearRanges: idle worker %d range %v, want %v", i, r, last),
					ErrWorkloadMismatch,
				)
			}
			continue
		}
		switch {
		case r.Start < next:
			return validatorErrorf(fmt.Sprintf("ValidateLinearRanges: worker %d starts at %d", i, r.Start), ErrRangeOverlap)
		case r.Start > next:
			return validatorErrorf(fmt.Sprintf("ValidateLinearRanges: worker %d starts at %d", i, r.Start), ErrRangeGap)
		case r.End >= total:
			return validatorErrorf(fmt.Sprintf("ValidateLinearRanges: worker %d ends at %d of %d", i, r.End, total), ErrRangeGap)
		case r.End-r.Start+1 != counts[i]:
			return validatorErrorf(
				fmt.Sprintf("ValidateLinearRanges: worker %d spans %d..%d, want %d elements", i, r.Start, r.End, counts[i]),
				ErrWorkloadMismatch,
			)
		}
		last = r
		next = r.End + 1
	}

	return nil
}
