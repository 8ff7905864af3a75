// SPDX-License-Identifier: MIT

// Package plan stores matrix partitions and matrix input on disk.
//
// A Plan is the serialisable form of matrix.Assignments: the matrix shape,
// the worker count and one entry per worker. Plans round-trip through YAML,
// JSON and CBOR; a decoded Plan should be checked with Validate before its
// ranges are trusted, since nothing stops a file from being edited by hand.
//
// Matrix input uses a single-key document:
//
//	data:
//	  - [1, 2, 3]
//	  - [4, 5, 6]
package plan

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/parmat/matrix"
)

// Coord is the wire form of matrix.Coord.
type Coord struct {
	Row int `json:"row" yaml:"row" cbor:"1,keyasint"`
	Col int `json:"col" yaml:"col" cbor:"2,keyasint"`
}

// Span is the wire form of matrix.LinearRange (inclusive).
type Span struct {
	Start int `json:"start" yaml:"start" cbor:"1,keyasint"`
	End   int `json:"end" yaml:"end" cbor:"2,keyasint"`
}

// Assignment is one worker's entry in a Plan.
type Assignment struct {
	Worker int   `json:"worker" yaml:"worker" cbor:"1,keyasint"`
	Count  int   `json:"count" yaml:"count" cbor:"2,keyasint"`
	Idle   bool  `json:"idle" yaml:"idle" cbor:"3,keyasint"`
	Linear Span  `json:"linear" yaml:"linear" cbor:"4,keyasint"`
	From   Coord `json:"from" yaml:"from" cbor:"5,keyasint"`
	To     Coord `json:"to" yaml:"to" cbor:"6,keyasint"`
}

// Plan is a complete partition of a rows×cols matrix across Workers.
type Plan struct {
	Rows        int          `json:"rows" yaml:"rows" cbor:"1,keyasint"`
	Cols        int          `json:"cols" yaml:"cols" cbor:"2,keyasint"`
	Workers     int          `json:"workers" yaml:"workers" cbor:"3,keyasint"`
	Assignments []Assignment `json:"assignments" yaml:"assignments" cbor:"4,keyasint"`
}

// Input is the document shape for matrix data files.
type Input[T matrix.Number] struct {
	Data [][]T `json:"data" yaml:"data" cbor:"1,keyasint"`
}

// Build partitions m across workers and returns the Plan.
//
// Errors: anything m.Assignments returns (matrix.ErrNilMatrix,
// matrix.ErrInvalidWorkerCount).
func Build[T matrix.Number](m *matrix.Matrix[T], workers int) (*Plan, error) {
	as, err := m.Assignments(workers)
	if err != nil {
		return nil, fmt.Errorf("plan: build: %w", err)
	}

	p := &Plan{
		Rows:        m.Rows(),
		Cols:        m.Cols(),
		Workers:     workers,
		Assignments: make([]Assignment, len(as)),
	}
	for i, a := range as {
		p.Assignments[i] = Assignment{
			Worker: a.Worker,
			Count:  a.Count,
			Idle:   a.Idle(),
			Linear: Span{Start: a.Linear.Start, End: a.Linear.End},
			From:   Coord{Row: a.Range.Start.Row, Col: a.Range.Start.Col},
			To:     Coord{Row: a.Range.End.Row, Col: a.Range.End.Col},
		}
	}

	return p, nil
}

// Validate checks that p describes a disjoint, exact cover of its matrix.
//
// Sequence:
//  1. Rows, Cols > 0, Rows*Cols fits in an int, Workers == len(Assignments) > 0.
//  2. Assignments are in worker order and Idle agrees with Count.
//  3. matrix.ValidateLinearRanges over the linear spans.
//  4. From/To are the row-major split of each linear span.
//
// Errors: ErrInvalidPlan wrapping the matrix sentinel that failed, if any.
func (p *Plan) Validate() error {
	if p == nil {
		return fmt.Errorf("plan: nil plan: %w", ErrInvalidPlan)
	}
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf("plan: shape %dx%d: %w", p.Rows, p.Cols, ErrInvalidPlan)
	}
	if p.Rows > math.MaxInt/p.Cols {
		return fmt.Errorf("plan: shape %dx%d overflows int: %w", p.Rows, p.Cols, ErrInvalidPlan)
	}
	if p.Workers <= 0 || p.Workers != len(p.Assignments) {
		return fmt.Errorf("plan: %d workers, %d assignments: %w", p.Workers, len(p.Assignments), ErrInvalidPlan)
	}

	counts := make([]int, len(p.Assignments))
	linear := make([]matrix.LinearRange, len(p.Assignments))
	for i, a := range p.Assignments {
		if a.Worker != i {
			return fmt.Errorf("plan: assignment %d is for worker %d: %w", i, a.Worker, ErrInvalidPlan)
		}
		if a.Idle != (a.Count == 0) {
			return fmt.Errorf("plan: worker %d idle=%t with count %d: %w", i, a.Idle, a.Count, ErrInvalidPlan)
		}
		counts[i] = a.Count
		linear[i] = matrix.LinearRange{Start: a.Linear.Start, End: a.Linear.End}
	}
	if err := matrix.ValidateLinearRanges(linear, counts, p.Rows*p.Cols); err != nil {
		return fmt.Errorf("plan: %w: %w", ErrInvalidPlan, err)
	}

	for i, a := range p.Assignments {
		from := Coord{Row: a.Linear.Start / p.Cols, Col: a.Linear.Start % p.Cols}
		to := Coord{Row: a.Linear.End / p.Cols, Col: a.Linear.End % p.Cols}
		if a.From != from || a.To != to {
			return fmt.Errorf("plan: worker %d coordinates disagree with linear span: %w", i, ErrInvalidPlan)
		}
	}

	return nil
}

// Encode writes p to w in format f.
func Encode(w io.Writer, p *Plan, f Format) error {
	return encode(w, p, f)
}

// Decode reads a Plan in format f from r. It does not call Validate.
func Decode(r io.Reader, f Format) (*Plan, error) {
	var p Plan
	if err := decode(r, &p, f); err != nil {
		return nil, err
	}

	return &p, nil
}

// LoadMatrix reads an Input document in format f and builds a Matrix from it.
//
// Errors: decoding errors, then matrix.New's (ErrEmptyMatrix, ErrEmptyRow,
// ErrInconsistentRowLength).
func LoadMatrix[T matrix.Number](r io.Reader, f Format, opts ...matrix.Option) (*matrix.Matrix[T], error) {
	var in Input[T]
	if err := decode(r, &in, f); err != nil {
		return nil, err
	}
	// Decoded slices are not shared with anyone else.
	opts = append([]matrix.Option{matrix.WithAdoptRows()}, opts...)
	m, err := matrix.New(in.Data, opts...)
	if err != nil {
		return nil, fmt.Errorf("plan: load matrix: %w", err)
	}

	return m, nil
}

// EncodeMatrix writes m's contents to w as an Input document in format f.
func EncodeMatrix[T matrix.Number](w io.Writer, m *matrix.Matrix[T], f Format) error {
	if m == nil {
		return fmt.Errorf("plan: encode matrix: %w", matrix.ErrNilMatrix)
	}

	return encode(w, Input[T]{Data: m.ToSlices()}, f)
}
