// Package matrix offers a dense, row-oriented container that many goroutines
// can mutate at once without locks, and the partitioning that makes doing so
// safe.
//
// The matrix package provides:
//
//   - Row, a single element sequence whose backing slice is handed out to
//     concurrent writers as-is (RawMutable). Nothing is locked; writers must
//     touch disjoint positions.
//   - Matrix, an immutable-shape grid of Rows validated for rectangularity at
//     construction (New). Empty input is rejected with ErrEmptyMatrix.
//   - ElementsPerWorker, BatchLinearRanges and Batch2DRanges, which split the
//     row-major element space into one balanced, contiguous, inclusive range
//     per worker.
//   - Split, which turns those ranges into Segment handles that can reach
//     their own elements and nothing else.
//
// Typical flow:
//
//	m, _ := matrix.New(data)
//	segs, _ := m.Split(runtime.NumCPU())
//	// one goroutine per segment: seg.Apply(...)
//	// join, then read m.ToSlices()
//
// The package starts no goroutines; see package dispatch for a worker pool
// that runs functions over the Segments of a Split.
package matrix
