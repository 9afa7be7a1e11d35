// Copyright 2026 libgeodecomp-go Authors. SPDX-License-Identifier: Apache-2.0

package sell

import "errors"

var (
	// ErrBadShape indicates invalid construction parameters: a negative
	// dimension, a chunk width below 1, a sort window below 1, or a
	// non-square interop source.
	ErrBadShape = errors.New("sell: bad matrix shape")

	// ErrOutOfRange indicates a row or column index outside [0, Dim()).
	ErrOutOfRange = errors.New("sell: index out of range")

	// ErrNotFinalized indicates access to the chunked representation
	// before Finalize was called.
	ErrNotFinalized = errors.New("sell: matrix not finalized")

	// ErrFinalized indicates an Insert or second Finalize on an already
	// finalized matrix.
	ErrFinalized = errors.New("sell: matrix already finalized")
)
