// SPDX-License-Identifier: MIT

// Package matrix - work partitioning over the row-major element space.
//
// Purpose:
//   - Split the flattened index space 0..Len()-1 into one contiguous, inclusive
//     range per worker, with no overlaps and no gaps.
//   - Keep the split balanced (counts differ by at most 1) and deterministic
//     (surplus goes to the lowest worker indices).
//
// Pipeline:
//
//	ElementsPerWorker(w) -> BatchLinearRanges(counts) -> Batch2DRanges(w)
//	                                                 \-> Assignments(w)
//
// Idle workers:
//   - When workers > Len(), trailing workers get 0 elements. BatchLinearRanges
//     and Batch2DRanges give such a worker the same range as the last
//     non-idle worker (a non-advancing marker, not a claim on that element).
//     Assignments carries Count and Idle() so callers can tell the two apart.
//
// Complexity quicksheet:
//   - All entry points: O(w) time and space, w = worker count.

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxElementsPerWorker = "ElementsPerWorker"
	ctxBatchLinear       = "BatchLinearRanges"
	ctxBatch2D           = "Batch2DRanges"
	ctxAssignments       = "Assignments"
	ctxCoordOf           = "CoordOf"
)

// LinearRange is an inclusive [Start, End] span of row-major linear indices.
type LinearRange struct {
	Start int
	End   int
}

// Coord addresses one element by row and column (both 0-based).
type Coord struct {
	Row int
	Col int
}

// Range2D is an inclusive row-major span from Start to End.
// It is not a rectangle: it covers the tail of Start.Row, every full row in
// between, and the head of End.Row.
type Range2D struct {
	Start Coord
	End   Coord
}

// Assignment is one worker's share of the element space.
//   - Worker: 0-based worker index.
//   - Count:  number of elements assigned (0 for an idle worker).
//   - Linear/Range: the bounds as produced by BatchLinearRanges/Batch2DRanges.
type Assignment struct {
	Worker int
	Count  int
	Linear LinearRange
	Range  Range2D
}

// Idle reports whether the worker was assigned no elements.
// An idle Assignment's ranges repeat the previous worker's and must be ignored.
func (a Assignment) Idle() bool { return a.Count == 0 }

// ElementsPerWorker returns how many elements each of workers gets.
// MAIN DESCRIPTION:
//   - Near-equal split of Len() elements across workers.
//
// Implementation:
//   - Stage 1: validate workers >= 1.
//   - Stage 2: base = total/workers for everyone.
//   - Stage 3: the first total%workers workers get one extra element.
//
// Behavior highlights:
//   - Sum of the result == Len().
//   - Entries differ by at most 1 and never increase with worker index.
//   - workers > Len(): the first Len() workers get 1, the rest 0.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidWorkerCount.
//
// Complexity:
//   - Time O(w), Space O(w).
func (m *Matrix[T]) ElementsPerWorker(workers int) ([]int, error) {
	if m == nil {
		return nil, matrixErrorf(ctxElementsPerWorker, ErrNilMatrix, workers)
	}
	counts, err := elementsPerWorker(m.Len(), workers)
	if err != nil {
		return nil, matrixErrorf(ctxElementsPerWorker, err, workers)
	}

	return counts, nil
}

// elementsPerWorker is the shape-free kernel behind ElementsPerWorker.
func elementsPerWorker(total, workers int) ([]int, error) {
	if workers < 1 {
		return nil, ErrInvalidWorkerCount
	}
	counts := make([]int, workers)
	// total < workers falls out naturally: base == 0, extra == total.
	base, extra := total/workers, total%workers
	for i := range counts {
		counts[i] = base
		if i < extra {
			counts[i]++
		}
	}

	return counts, nil
}

// BatchLinearRanges turns per-worker counts into inclusive linear ranges.
// MAIN DESCRIPTION:
//   - Worker i's range starts right after worker i-1's range ends.
//
// Implementation:
//   - Stage 1: validate counts (see Errors) against Len().
//   - Stage 2: walk counts once with a running cursor.
//   - Stage 3: idle workers copy the last non-idle range.
//
// Inputs:
//   - perWorker: element counts, e.g. from ElementsPerWorker. Idle (0)
//     entries may only trail the non-idle ones.
//
// Returns:
//   - []LinearRange, len == len(perWorker).
//
// Errors:
//   - ErrNilMatrix.
//   - ErrInvalidWorkerCount if perWorker is empty.
//   - ErrInvalidWorkload on a negative count or an idle entry before a
//     non-idle one.
//   - ErrWorkloadMismatch if the counts do not sum to Len().
//
// Complexity:
//   - Time O(w), Space O(w).
func (m *Matrix[T]) BatchLinearRanges(perWorker []int) ([]LinearRange, error) {
	if m == nil {
		return nil, matrixErrorf(ctxBatchLinear, ErrNilMatrix, len(perWorker))
	}
	ranges, err := batchLinearRanges(perWorker, m.Len())
	if err != nil {
		return nil, matrixErrorf(ctxBatchLinear, err, len(perWorker))
	}

	return ranges, nil
}

// batchLinearRanges is the shape-free kernel behind BatchLinearRanges.
func batchLinearRanges(perWorker []int, total int) ([]LinearRange, error) {
	if len(perWorker) == 0 {
		return nil, ErrInvalidWorkerCount
	}
	if err := validateWorkload(perWorker, total); err != nil {
		return nil, err
	}

	out := make([]LinearRange, len(perWorker))
	var last LinearRange // most recent non-idle range
	next := 0            // first linear index not yet assigned
	for i, n := range perWorker {
		if n == 0 {
			out[i] = last
			continue
		}
		last = LinearRange{Start: next, End: next + n - 1}
		next += n
		out[i] = last
	}

	return out, nil
}

// validateWorkload checks per-worker counts before any range is built.
// Shape errors (ErrInvalidWorkload) win over coverage errors (ErrWorkloadMismatch).
func validateWorkload(perWorker []int, total int) error {
	idleSeen := false
	for i, n := range perWorker {
		switch {
		case n < 0:
			return fmt.Errorf("worker %d count %d: %w", i, n, ErrInvalidWorkload)
		case n == 0:
			idleSeen = true
		case idleSeen:
			return fmt.Errorf("worker %d follows an idle worker: %w", i, ErrInvalidWorkload)
		}
	}

	sum := 0
	for i, n := range perWorker {
		// keeps sum <= total, so it never wraps
		if n > total-sum {
			return fmt.Errorf("worker %d count %d exceeds remaining %d: %w", i, n, total-sum, ErrWorkloadMismatch)
		}
		sum += n
	}
	if sum != total {
		return fmt.Errorf("counts sum to %d, want %d: %w", sum, total, ErrWorkloadMismatch)
	}

	return nil
}

// Batch2DRanges partitions the matrix across workers in row/column terms.
// MAIN DESCRIPTION:
//   - ElementsPerWorker → BatchLinearRanges → (row = lin / cols, col = lin % cols).
//
// Behavior highlights:
//   - One Range2D per worker, in worker order.
//   - Non-idle ranges are disjoint and cover every element exactly once.
//   - Idle workers repeat the last non-idle range (see package notes).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidWorkerCount.
//
// Complexity:
//   - Time O(w), Space O(w).
func (m *Matrix[T]) Batch2DRanges(workers int) ([]Range2D, error) {
	as, err := m.assignments(ctxBatch2D, workers)
	if err != nil {
		return nil, err
	}
	out := make([]Range2D, len(as))
	for i, a := range as {
		out[i] = a.Range
	}

	return out, nil
}

// Assignments is Batch2DRanges with per-worker counts attached.
// Use it when idle workers must be told apart from the last busy one.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidWorkerCount.
//
// Complexity:
//   - Time O(w), Space O(w).
func (m *Matrix[T]) Assignments(workers int) ([]Assignment, error) {
	return m.assignments(ctxAssignments, workers)
}

// assignments runs the full pipeline and tags errors with the public caller.
func (m *Matrix[T]) assignments(method string, workers int) ([]Assignment, error) {
	if m == nil {
		return nil, matrixErrorf(method, ErrNilMatrix, workers)
	}
	counts, err := elementsPerWorker(m.Len(), workers)
	if err != nil {
		return nil, matrixErrorf(method, err, workers)
	}
	linear, err := batchLinearRanges(counts, m.Len())
	if err != nil {
		return nil, matrixErrorf(method, err, workers)
	}

	out := make([]Assignment, workers)
	for i := range out {
		out[i] = Assignment{
			Worker: i,
			Count:  counts[i],
			Linear: linear[i],
			Range: Range2D{
				Start: coordOf(linear[i].Start, m.cols),
				End:   coordOf(linear[i].End, m.cols),
			},
		}
	}

	return out, nil
}

// CoordOf maps a row-major linear index to its (row, col) coordinate.
//
// Errors:
//   - ErrNilMatrix, ErrOutOfRange if linear is outside 0..Len()-1.
//
// Complexity: O(1).
func (m *Matrix[T]) CoordOf(linear int) (Coord, error) {
	if m == nil {
		return Coord{}, matrixErrorf(ctxCoordOf, ErrNilMatrix, linear)
	}
	if linear < 0 || linear >= m.Len() {
		return Coord{}, matrixErrorf(ctxCoordOf, ErrOutOfRange, linear)
	}

	return coordOf(linear, m.cols), nil
}

// coordOf is the unchecked row-major split; cols must be > 0.
func coordOf(linear, cols int) Coord {
	return Coord{Row: linear / cols, Col: linear % cols}
}
