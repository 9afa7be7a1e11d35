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
	"fmt"
	"iter"

	"github.com/valleymouth/libgeodecomp/grid"
	"github.com/valleymouth/libgeodecomp/sell"
)

// Neighborhood is the read-side view a per-cell kernel receives: the
// weights of the current row and the source cells they address. It is
// stack-lived, borrows grid and matrix for the duration of one kernel
// call and owns no storage.
type Neighborhood[C any, W sell.Float] struct {
	src  *grid.Grid[C, W]
	phys int
}

// Index returns the current physical row.
func (n *Neighborhood[C, W]) Index() int { return n.phys }

// At returns the source cell at a physical index, typically one of the
// column indices yielded by Weights. Out-of-range indices return the
// grid's edge cell.
func (n *Neighborhood[C, W]) At(col int32) C {
	return n.src.PhysGet(int(col))
}

// Weights iterates the (physical column, weight) pairs of the current
// row in the weight matrix registered under id. It panics if no such
// matrix exists; kernels are hot paths and carry no error returns.
func (n *Neighborhood[C, W]) Weights(id int) iter.Seq2[int32, W] {
	return n.matrix(id).PhysRow(n.phys)
}

func (n *Neighborhood[C, W]) matrix(id int) *sell.Matrix[W] {
	m := n.src.Matrix(id)
	if m == nil {
		panic(fmt.Sprintf("update: no weight matrix %d", id))
	}
	return m
}

// OldHood is the read-side view a line kernel receives. It extends
// Neighborhood with an advancing index and chunk-level access to the
// weight slots, which is what vectorized kernels gather from.
type OldHood[C any, W sell.Float] struct {
	Neighborhood[C, W]
}

// Next advances to the next physical row.
func (h *OldHood[C, W]) Next() { h.phys++ }

// Advance moves the index forward by n rows; chunk-vectorized kernels
// advance by the chunk width.
func (h *OldHood[C, W]) Advance(n int) { h.phys += n }

// Slots iterates the weight slots of the chunk containing the current
// index. Kernels call it with the index aligned to a chunk boundary (the
// body spans produced by Peel) so that slot lane l belongs to row
// Index()+l.
func (h *OldHood[C, W]) Slots(id int) iter.Seq[sell.Slot[W]] {
	m := h.matrix(id)
	return m.Slots(h.phys / m.ChunkWidth())
}

// ChunkWidth returns the chunk width of the matrix registered under id.
func (h *OldHood[C, W]) ChunkWidth(id int) int {
	return h.matrix(id).ChunkWidth()
}

// Source exposes the borrowed source grid so layout-aware kernels can
// reach its raw cell array (AoS) or member accessor (SoA).
func (h *OldHood[C, W]) Source() *grid.Grid[C, W] { return h.src }

// NewHood is the write-side view a line kernel receives: a cursor over
// the target grid in physical index space. The kernel owns the advance;
// the starting index is the start of the streak, or of the piece of it
// being processed when Concurrency.Inner splits streaks, and is not
// necessarily chunk-aligned.
type NewHood[C any, W sell.Float] struct {
	dst  *grid.Grid[C, W]
	raw  []C // AoS fast path, nil for SoA
	phys int
}

// Index returns the current physical row.
func (h *NewHood[C, W]) Index() int { return h.phys }

// Next advances to the next physical row.
func (h *NewHood[C, W]) Next() { h.phys++ }

// Advance moves the cursor forward by n rows.
func (h *NewHood[C, W]) Advance(n int) { h.phys += n }

// Cell returns a mutable reference to the target cell at the current
// index. Only AoS grids have addressable cells; SoA kernels go through
// Set or the grid's accessor instead.
func (h *NewHood[C, W]) Cell() *C {
	if h.raw == nil {
		panic("update: Cell on an SoA target, use Set or the accessor")
	}
	return &h.raw[h.phys]
}

// Get reads the target cell at the current index.
func (h *NewHood[C, W]) Get() C { return h.dst.PhysGet(h.phys) }

// Set writes the target cell at the current index.
func (h *NewHood[C, W]) Set(c C) { h.dst.PhysSet(h.phys, c) }

// Target exposes the borrowed target grid for layout-aware kernels.
func (h *NewHood[C, W]) Target() *grid.Grid[C, W] { return h.dst }

func newHoods[C any, W sell.Float](gridOld, gridNew *grid.Grid[C, W], start int) (*NewHood[C, W], *OldHood[C, W]) {
	raw, _ := gridNew.Raw()
	hoodNew := &NewHood[C, W]{dst: gridNew, raw: raw, phys: start}
	hoodOld := &OldHood[C, W]{Neighborhood[C, W]{src: gridOld, phys: start}}
	return hoodNew, hoodOld
}
