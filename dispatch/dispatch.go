// SPDX-License-Identifier: MIT

// Package dispatch runs work over the Segments of a matrix.Split.
//
// The matrix package only computes disjoint partitions; dispatch is the worker
// pool that consumes them. Run splits the matrix, starts one goroutine per
// non-idle Segment (bounded by WithLimit), and joins them all before
// returning, so results read through the Matrix afterwards are complete.
//
// The first worker error cancels the context handed to the remaining workers
// and is returned from Run. Workers that ignore the context still run to
// completion; Run always waits for every started goroutine.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/parmat/matrix"
)

// WorkFunc processes one Segment. It must only touch elements through seg.
type WorkFunc[T matrix.Number] func(ctx context.Context, seg *matrix.Segment[T]) error

// Report summarizes a finished Run.
type Report struct {
	Workers  int           // requested worker count
	Busy     int           // segments that owned at least one element
	Idle     int           // segments skipped because they owned nothing
	Elements int           // elements handed to workers; equals Matrix.Len()
	Elapsed  time.Duration // wall time from split to join
}

// Run partitions m across workers and calls fn once per busy Segment,
// concurrently.
//
// Errors:
//   - ErrNilWork, ErrInvalidLimit.
//   - matrix.ErrNilMatrix, matrix.ErrInvalidWorkerCount from the split.
//   - the first error returned by fn, wrapped with its worker index.
//   - ctx.Err() if ctx is done before a worker starts.
func Run[T matrix.Number](ctx context.Context, m *matrix.Matrix[T], workers int, fn WorkFunc[T], opts ...Option) (Report, error) {
	o := gatherOptions(opts...)
	if fn == nil {
		return Report{}, ErrNilWork
	}
	if o.limit < 0 {
		return Report{}, fmt.Errorf("dispatch: limit %d: %w", o.limit, ErrInvalidLimit)
	}

	start := time.Now()
	segs, err := m.Split(workers)
	if err != nil {
		return Report{}, fmt.Errorf("dispatch: %w", err)
	}

	rep := Report{Workers: workers}
	g, gCtx := errgroup.WithContext(ctx)
	if o.limit > 0 {
		g.SetLimit(o.limit)
	}

	o.logger.Debug("dispatch starting", "workers", workers, "elements", m.Len(), "limit", o.limit)
	for _, seg := range segs {
		if seg.Idle() {
			rep.Idle++
			o.logger.Debug("worker idle", "worker", seg.Worker())
			continue
		}
		rep.Busy++
		rep.Elements += seg.Len()

		seg := seg
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			began := time.Now()
			if err := fn(gCtx, seg); err != nil {
				o.logger.Warn("worker failed", "worker", seg.Worker(), "error", err)
				return fmt.Errorf("dispatch: worker %d: %w", seg.Worker(), err)
			}
			o.logger.Debug("worker done",
				"worker", seg.Worker(),
				"elements", seg.Len(),
				"elapsed", time.Since(began),
			)

			return nil
		})
	}

	err = g.Wait()
	rep.Elapsed = time.Since(start)
	if err != nil {
		return rep, err
	}
	o.logger.Info("dispatch finished",
		"workers", rep.Workers,
		"busy", rep.Busy,
		"idle", rep.Idle,
		"elapsed", rep.Elapsed,
	)

	return rep, nil
}

// Apply rewrites every element of m with fn(row, col, old), in parallel over
// workers Segments. fn must be safe to call from several goroutines.
func Apply[T matrix.Number](ctx context.Context, m *matrix.Matrix[T], workers int, fn func(row, col int, v T) T, opts ...Option) (Report, error) {
	if fn == nil {
		return Report{}, ErrNilWork
	}

	return Run(ctx, m, workers, func(_ context.Context, seg *matrix.Segment[T]) error {
		seg.Apply(fn)
		return nil
	}, opts...)
}
