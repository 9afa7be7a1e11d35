// Copyright 2026 libgeodecomp-go Authors. SPDX-License-Identifier: Apache-2.0

package grid

import "errors"

var (
	// ErrOutOfBounds indicates a write to a coordinate outside the grid's
	// bounding box.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")

	// ErrInconsistentPermutation indicates a weight matrix whose row
	// permutation conflicts with the permutation a previous matrix
	// already imposed on the grid's storage.
	ErrInconsistentPermutation = errors.New("grid: inconsistent row permutation")

	// ErrDimensionMismatch indicates a weight matrix whose dimension does
	// not equal the grid's cell count.
	ErrDimensionMismatch = errors.New("grid: matrix dimension mismatch")
)
