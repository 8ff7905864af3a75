// SPDX-License-Identifier: MIT

// Package matrix - Segment: a worker's exclusive handle on its element range.
//
// Purpose:
//   - Turn a partition into handles that can only reach their own elements,
//     so disjointness is carried by the values handed to workers instead of by
//     a documented convention around Row.RawMutable.
//
// Construction:
//   - Matrix.Split runs the partition pipeline, re-checks the ranges with
//     ValidateLinearRanges, and slices every row a range touches with a full
//     slice expression row[lo:hi+1:hi+1]. Capacity equals length, so append on
//     a Span's Values reallocates instead of spilling into a neighbour.
//
// Ownership:
//   - Give each Segment to exactly one goroutine. A Segment is not safe for
//     concurrent use by several goroutines; distinct Segments of one Split are.
//   - Segments alias the Matrix storage; writes are visible through the Matrix
//     once the workers have been joined.
//
// Complexity quicksheet:
//   - Split: O(w + r); At/Set/Coord: O(1); Each/Apply: O(Len()).

package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxSplit    = "Split"
	ctxSegAt    = "At"
	ctxSegSet   = "Set"
	ctxSegCoord = "Coord"
)

// segmentErrorf wraps an error with the Segment's worker index and offset.
func segmentErrorf(method string, worker, k int, err error) error {
	return fmt.Errorf("Segment[%d].%s(%d): %w", worker, method, k, err)
}

// Span is the part of one row that a Segment owns.
//   - Row:          row index in the Matrix.
//   - ColLo, ColHi: inclusive column window.
//   - Values:       row[ColLo:ColHi+1] with cap == len.
type Span[T Number] struct {
	Row    int
	ColLo  int
	ColHi  int
	Values []T
}

// Segment is one worker's exclusive view of its assigned elements.
// Offsets k used by At/Set/Coord are segment-local: 0..Len()-1 in row-major order.
type Segment[T Number] struct {
	worker int
	count  int
	linear LinearRange
	rng    Range2D
	cols   int
	spans  []Span[T] // empty for idle workers
}

// Split partitions m across workers and returns one Segment per worker.
// MAIN DESCRIPTION:
//   - Checked hand-off: the full range set is consumed here and every worker
//     receives a handle limited to its own elements.
//
// Implementation:
//   - Stage 1: Assignments(workers).
//   - Stage 2: ValidateLinearRanges over the produced ranges.
//   - Stage 3: build capped row spans for every non-idle worker.
//
// Behavior highlights:
//   - len(result) == workers; result[i].Worker() == i.
//   - Idle workers get a Segment with Len()==0 and no spans.
//   - No two Segments share an element.
//
// Errors:
//   - ErrNilMatrix, ErrInvalidWorkerCount.
//
// Complexity:
//   - Time O(w + r), Space O(w + r).
func (m *Matrix[T]) Split(workers int) ([]*Segment[T], error) {
	as, err := m.assignments(ctxSplit, workers)
	if err != nil {
		return nil, err
	}

	counts := make([]int, len(as))
	linear := make([]LinearRange, len(as))
	for i, a := range as {
		counts[i], linear[i] = a.Count, a.Linear
	}
	if err = ValidateLinearRanges(linear, counts, m.Len()); err != nil {
		return nil, matrixErrorf(ctxSplit, err, workers)
	}

	segs := make([]*Segment[T], len(as))
	for i, a := range as {
		seg := &Segment[T]{
			worker: a.Worker,
			count:  a.Count,
			linear: a.Linear,
			rng:    a.Range,
			cols:   m.cols,
		}
		if !a.Idle() {
			seg.spans = m.spansOf(a.Range)
		}
		segs[i] = seg
	}

	return segs, nil
}

// spansOf slices every row touched by r with capacity clamped to the window.
func (m *Matrix[T]) spansOf(r Range2D) []Span[T] {
	spans := make([]Span[T], 0, r.End.Row-r.Start.Row+1)
	for row := r.Start.Row; row <= r.End.Row; row++ {
		lo, hi := 0, m.cols-1
		if row == r.Start.Row {
			lo = r.Start.Col
		}
		if row == r.End.Row {
			hi = r.End.Col
		}
		data := m.rows[row].data
		spans = append(spans, Span[T]{
			Row:    row,
			ColLo:  lo,
			ColHi:  hi,
			Values: data[lo : hi+1 : hi+1],
		})
	}

	return spans
}

// Worker returns the 0-based worker index this Segment was built for.
func (s *Segment[T]) Worker() int { return s.worker }

// Len returns the number of elements the Segment owns.
func (s *Segment[T]) Len() int { return s.count }

// Idle reports whether the Segment owns no elements.
func (s *Segment[T]) Idle() bool { return s.count == 0 }

// Linear returns the inclusive linear range, as from BatchLinearRanges.
// For an idle Segment this is the previous worker's range; check Idle first.
func (s *Segment[T]) Linear() LinearRange { return s.linear }

// Range returns the inclusive 2-D range, as from Batch2DRanges.
// For an idle Segment this is the previous worker's range; check Idle first.
func (s *Segment[T]) Range() Range2D { return s.rng }

// Spans returns the row windows owned by the Segment, in row order.
// The slice header is fresh; the Values inside alias Matrix storage.
func (s *Segment[T]) Spans() []Span[T] {
	out := make([]Span[T], len(s.spans))
	copy(out, s.spans)

	return out
}

// locate maps a segment-local offset to (span index, position in span).
func (s *Segment[T]) locate(k int) (int, int, bool) {
	if k < 0 || k >= s.count {
		return 0, 0, false
	}
	c := coordOf(s.linear.Start+k, s.cols)
	si := c.Row - s.spans[0].Row

	return si, c.Col - s.spans[si].ColLo, true
}

// Coord returns the matrix coordinate of segment-local offset k.
// Errors: ErrOutOfRange. Complexity: O(1).
func (s *Segment[T]) Coord(k int) (Coord, error) {
	if k < 0 || k >= s.count {
		return Coord{}, segmentErrorf(ctxSegCoord, s.worker, k, ErrOutOfRange)
	}

	return coordOf(s.linear.Start+k, s.cols), nil
}

// At reads the element at segment-local offset k.
// Errors: ErrOutOfRange. Complexity: O(1).
func (s *Segment[T]) At(k int) (T, error) {
	si, j, ok := s.locate(k)
	if !ok {
		var zero T
		return zero, segmentErrorf(ctxSegAt, s.worker, k, ErrOutOfRange)
	}

	return s.spans[si].Values[j], nil
}

// Set writes v at segment-local offset k.
// Offsets outside the Segment are rejected, so a worker cannot reach
// another worker's elements through its own handle.
// Errors: ErrOutOfRange. Complexity: O(1).
func (s *Segment[T]) Set(k int, v T) error {
	si, j, ok := s.locate(k)
	if !ok {
		return segmentErrorf(ctxSegSet, s.worker, k, ErrOutOfRange)
	}
	s.spans[si].Values[j] = v

	return nil
}

// Each calls fn for every owned element in row-major order.
// Complexity: O(Len()).
func (s *Segment[T]) Each(fn func(row, col int, v T)) {
	for _, sp := range s.spans {
		for j, v := range sp.Values {
			fn(sp.Row, sp.ColLo+j, v)
		}
	}
}

// Apply replaces every owned element with fn(row, col, old) in row-major order.
// Complexity: O(Len()).
func (s *Segment[T]) Apply(fn func(row, col int, v T) T) {
	for _, sp := range s.spans {
		for j, v := range sp.Values {
			sp.Values[j] = fn(sp.Row, sp.ColLo+j, v)
		}
	}
}
