// SPDX-License-Identifier: MIT

package dispatch

import "errors"

var (
	// ErrNilWork is returned when Run is called without a work function.
	ErrNilWork = errors.New("dispatch: nil work function")

	// ErrInvalidLimit is returned by Run when WithLimit was given a negative value.
	ErrInvalidLimit = errors.New("dispatch: concurrency limit must be >= 0")
)
