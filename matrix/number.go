// SPDX-License-Identifier: MIT

package matrix

// Number is the element capability accepted by Row and Matrix.
//
// The core needs only a zero value and copy-by-assignment, which every Go type
// has; the set is restricted to the built-in integer and floating-point kinds
// (and named types over them) so the container stays a numeric building block
// for downstream kernels. No arithmetic is performed by this package.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
