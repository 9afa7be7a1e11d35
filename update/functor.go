// Copyright 2026 libgeodecomp-go Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package update

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/valleymouth/libgeodecomp/geom"
	"github.com/valleymouth/libgeodecomp/grid"
	"github.com/valleymouth/libgeodecomp/sell"
)

// Apply performs one region update: for every cell of region (given in
// logical coordinates), it computes the next state from gridOld into
// gridNew using the model's kernels. The region is remapped through the
// old grid's row permutation into physical index space first.
//
// Reads go to gridOld, writes to gridNew; the grids are not swapped.
// All writes have completed when Apply returns. On error the new grid's
// contents are undefined for streaks that had not finished.
func Apply[C any, W sell.Float](
	region *geom.Region,
	gridOld, gridNew *grid.Grid[C, W],
	nanoStep uint,
	spec Concurrency,
	k Kernels[C, W],
) error {
	phys, err := gridOld.RemapRegion(region)
	if err != nil {
		return err
	}
	return ApplyRemapped(phys, gridOld, gridNew, nanoStep, spec, k)
}

// ApplyRemapped is Apply for a region already in physical index space,
// as produced by Grid.RemapRegion. Simulators that reuse one remapped
// region across many steps call this directly.
func ApplyRemapped[C any, W sell.Float](
	physRegion *geom.Region,
	gridOld, gridNew *grid.Grid[C, W],
	nanoStep uint,
	spec Concurrency,
	k Kernels[C, W],
) error {
	if k.Update == nil && k.UpdateLine == nil {
		return ErrNoKernel
	}
	if gridOld.NumMatrices() == 0 {
		return ErrNoWeights
	}
	if physRegion.Empty() {
		return nil
	}

	var streaks []geom.Streak
	for s := range physRegion.Streaks() {
		streaks = append(streaks, s)
	}

	var trap kernelTrap
	runRange := func(a, b int) {
		defer trap.catch()
		runKernel(gridOld, gridNew, a, b, nanoStep, k)
	}

	switch {
	case spec.Outer:
		// Streak fan-out. Work stealing absorbs the length imbalance
		// between streaks; nested fan-out is collapsed into this
		// single-level partition.
		spec.pool().ParallelForStealing(len(streaks), 1, func(start, end int) {
			for i := start; i < end; i++ {
				runRange(streaks[i].Origin.X, streaks[i].EndX)
			}
		})

	case spec.Inner:
		// Streaks stay sequential, each one split across workers.
		pieces := spec.pool().NumWorkers()
		if k.Threads > 0 {
			pieces = min(pieces, k.Threads)
		}
		for _, s := range streaks {
			splitStreak(spec, s.Origin.X, s.EndX, pieces, runRange)
		}

	default:
		for _, s := range streaks {
			runRange(s.Origin.X, s.EndX)
		}
	}

	return trap.err()
}

// splitStreak cuts [a, b) into at most pieces contiguous subranges and
// runs them on the pool. Subranges are disjoint, so any schedule writes
// the same bits.
func splitStreak(spec Concurrency, a, b, pieces int, runRange func(int, int)) {
	n := b - a
	pieces = min(pieces, n)
	if pieces <= 1 {
		runRange(a, b)
		return
	}
	chunk := (n + pieces - 1) / pieces
	spec.pool().ParallelForStealing(pieces, 1, func(start, end int) {
		for p := start; p < end; p++ {
			lo := a + p*chunk
			hi := min(lo+chunk, b)
			if lo < hi {
				runRange(lo, hi)
			}
		}
	})
}

// runKernel updates the physical index range [a, b) with the preferred
// kernel variant.
func runKernel[C any, W sell.Float](
	gridOld, gridNew *grid.Grid[C, W],
	a, b int,
	nanoStep uint,
	k Kernels[C, W],
) {
	if k.UpdateLine != nil {
		hoodNew, hoodOld := newHoods(gridOld, gridNew, a)
		k.UpdateLine(hoodNew, b, hoodOld, nanoStep)
		return
	}

	hood := &Neighborhood[C, W]{src: gridOld, phys: a}
	for r := a; r < b; r++ {
		hood.phys = r
		cell := gridNew.PhysGet(r)
		k.Update(&cell, hood, nanoStep)
		gridNew.PhysSet(r, cell)
	}
}

// kernelTrap converts the first kernel panic into an error so that a
// failing model aborts the step instead of tearing down the worker pool.
type kernelTrap struct {
	mu    sync.Mutex
	first error
}

func (t *kernelTrap) catch() {
	if r := recover(); r != nil {
		t.mu.Lock()
		defer t.mu.Unlock()
		if t.first == nil {
			t.first = errors.Wrapf(ErrKernelFailure, "%v", r)
		}
	}
}

func (t *kernelTrap) err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.first
}
