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
	"github.com/valleymouth/libgeodecomp/sell"
	"github.com/valleymouth/libgeodecomp/workerpool"
)

// Concurrency selects how a region update is scheduled.
//
//   - Outer distributes whole streaks across the worker pool.
//   - Inner allows a single streak's index range to be split across
//     workers, bounded by the model's thread hint.
//
// When both are set, the outer partition wins: streak fan-out already
// saturates the pool, so nesting is collapsed into the single-level
// partition. Every combination writes the same bits to the new grid.
type Concurrency struct {
	Outer bool
	Inner bool

	// Pool runs the parallel phases; nil selects workerpool.Default().
	Pool *workerpool.Pool
}

// Sequential is the all-off default.
var Sequential = Concurrency{}

func (c Concurrency) pool() *workerpool.Pool {
	if c.Pool != nil {
		return c.Pool
	}
	return workerpool.Default()
}

// Kernels describes a cell model's update capabilities to the functor.
// At least one of Update and UpdateLine must be set; when both are
// present the line kernel is preferred.
type Kernels[C any, W sell.Float] struct {
	// Update computes one cell in place from its neighborhood. The cell
	// starts out as the target grid's current content.
	Update func(cell *C, hood *Neighborhood[C, W], nanoStep uint)

	// UpdateLine advances both hoods from hoodNew.Index() up to endIndex,
	// writing every cell in between. The starting index is not
	// chunk-aligned in general; kernels that vectorize must peel (see
	// Peel).
	UpdateLine func(hoodNew *NewHood[C, W], endIndex int, hoodOld *OldHood[C, W], nanoStep uint)

	// Threads caps the fine-grain fan-out of Concurrency.Inner. Zero
	// means "as many as the pool offers".
	Threads int
}
