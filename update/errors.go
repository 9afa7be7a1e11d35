// Copyright 2026 libgeodecomp-go Authors. SPDX-License-Identifier: Apache-2.0

package update

import "errors"

var (
	// ErrNoKernel indicates a Kernels value advertising neither a
	// per-cell nor a line kernel.
	ErrNoKernel = errors.New("update: model provides no kernel")

	// ErrKernelFailure wraps a panic raised by a model kernel. The step
	// is aborted; new-grid contents of unfinished streaks are undefined.
	ErrKernelFailure = errors.New("update: kernel failure")

	// ErrNoWeights indicates an update over a grid that has not adopted
	// any finalized weight matrix.
	ErrNoWeights = errors.New("update: grid carries no finalized weight matrix")
)
