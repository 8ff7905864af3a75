// SPDX-License-Identifier: MIT

package dispatch

import (
	"io"
	"log/slog"
)

// DefaultLimit leaves concurrency unbounded: every busy Segment gets its own goroutine.
const DefaultLimit = 0

// Option configures Run.
type Option func(*options)

type options struct {
	logger *slog.Logger
	limit  int
}

// WithLogger routes dispatch logs to l. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithLimit caps how many Segments run at the same time.
// 0 means no cap; negative values make Run fail with ErrInvalidLimit.
func WithLimit(n int) Option {
	return func(o *options) { o.limit = n }
}

func gatherOptions(user ...Option) options {
	o := options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		limit:  DefaultLimit,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
