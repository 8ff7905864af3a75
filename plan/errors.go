// SPDX-License-Identifier: MIT

package plan

import "errors"

var (
	// ErrUnknownFormat is returned for a format name other than yaml, json or cbor.
	ErrUnknownFormat = errors.New("plan: unknown format")

	// ErrInvalidPlan is returned by Plan.Validate when the plan does not cover
	// its matrix exactly once, in worker order.
	ErrInvalidPlan = errors.New("plan: invalid plan")
)
