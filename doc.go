// SPDX-License-Identifier: MIT

// Package parmat splits dense row-major matrices into disjoint per-worker
// ranges and runs goroutines over them.
//
// 🚀 What is parmat?
//
//	A small, generic library that brings together:
//		• Containers: Row and Matrix over any integer or float kind, rectangular by construction
//		• Partitioning: per-worker element counts, inclusive linear ranges, row/column ranges
//		• Segments: one disjoint, write-capable handle per worker
//		• Dispatch: an errgroup worker pool over those segments, with slog logging
//		• Plans: partitions stored as YAML, JSON or CBOR and validated on load
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/     — Row, Matrix, Number, partition math, Segment, validators
//	dispatch/   — Run and Apply: bounded concurrent work over matrix.Split
//	plan/       — Plan and Input documents, codecs, Validate
//	cmd/parmat/ — command-line front end (plan, fill, verify)
//
// Quick example, 3×3 across 4 workers:
//
//	elements:  0 1 2 | 3 4 | 5 6 | 7 8
//	counts:    [3, 2, 2, 2]
//	ranges:    w0 (0,0)→(0,2)  w1 (1,0)→(1,1)  w2 (1,2)→(2,0)  w3 (2,1)→(2,2)
//
//	m, _ := matrix.New([][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
//	_, err := dispatch.Apply(ctx, m, 4, func(r, c, v int) int { return v * 10 })
//
// When workers exceed elements, the surplus workers own nothing. They still
// get an entry (Count 0, Idle() true) whose range repeats the last busy
// worker's range; Split and dispatch skip them.
package parmat
