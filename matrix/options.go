// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Copy policy decides who owns the backing slices after New returns.
//     Copying (default) isolates the Matrix from later writes to the input.
//     Adopting skips the copy; the caller hands over its slices and must not
//     touch them afterwards, since workers will write into them directly.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCopyRows makes New deep-copy every input row.
	DefaultCopyRows = true
)

// Option configures Matrix construction.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them through gatherOptions.
type Options struct {
	copyRows bool // DefaultCopyRows
}

// WithCopyRows deep-copies the input rows on construction (the default).
// Complexity: O(r*c) at New.
func WithCopyRows() Option {
	return func(o *Options) { o.copyRows = true }
}

// WithAdoptRows makes New take ownership of the caller's row slices without
// copying them. Validation still runs first, so a rejected input is never
// adopted.
//
// AI-Hints:
//   - Use for large inputs that are produced once and handed straight to
//     workers; the caller must drop its own references to the slices.
func WithAdoptRows() Option {
	return func(o *Options) { o.copyRows = false }
}

// gatherOptions applies user setters over the documented defaults.
// Last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		copyRows: DefaultCopyRows,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
