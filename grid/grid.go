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

package grid

import (
	"github.com/pkg/errors"

	"github.com/valleymouth/libgeodecomp/geom"
	"github.com/valleymouth/libgeodecomp/sell"
)

// Grid holds the cell state of a 1-D unstructured mesh. Logical addressing
// is by coordinate; once a weight matrix has been adopted via SetWeights,
// cells live in the matrix's physical row order and the storage is padded
// to a whole number of chunks.
//
// Grids are double-buffered by the enclosing simulator: one grid is read
// ("old") while its sibling is written ("new") during a step, then the two
// swap roles. A Grid is safe for concurrent reads; writes require the
// streak-disjoint partitioning the update functor guarantees.
type Grid[C any, W sell.Float] struct {
	box      geom.CoordBox
	layout   Layout
	store    storage[C]
	fill     C // initial cell value, also used for padding slots
	edge     C
	perm     []int // logical offset -> physical index, nil until adopted
	matrices map[int]*sell.Matrix[W]
}

// NewDense creates an array-of-structs grid over a 1-D bounding box with
// every cell set to defaultCell. Reads outside the box return edgeCell.
func NewDense[C any, W sell.Float](box geom.CoordBox, defaultCell, edgeCell C) (*Grid[C, W], error) {
	if box.Rank != 1 {
		return nil, errors.Wrapf(geom.ErrInvalidGeometry, "unstructured grid needs a 1-D box, got rank %d", box.Rank)
	}
	cells := make([]C, box.Size.X)
	for i := range cells {
		cells[i] = defaultCell
	}
	return &Grid[C, W]{
		box:      box,
		layout:   AoS,
		store:    &denseStorage[C]{cells: cells},
		fill:     defaultCell,
		edge:     edgeCell,
		matrices: map[int]*sell.Matrix[W]{},
	}, nil
}

// NewSoA creates a struct-of-arrays grid backed by the model's accessor.
// The accessor is resized to the box and every cell set to defaultCell.
func NewSoA[C any, W sell.Float](box geom.CoordBox, acc Accessor[C], defaultCell, edgeCell C) (*Grid[C, W], error) {
	if box.Rank != 1 {
		return nil, errors.Wrapf(geom.ErrInvalidGeometry, "unstructured grid needs a 1-D box, got rank %d", box.Rank)
	}
	acc.Resize(box.Size.X)
	for i := 0; i < box.Size.X; i++ {
		acc.Set(i, defaultCell)
	}
	return &Grid[C, W]{
		box:      box,
		layout:   SoA,
		store:    &soaStorage[C]{acc: acc},
		fill:     defaultCell,
		edge:     edgeCell,
		matrices: map[int]*sell.Matrix[W]{},
	}, nil
}

// Box returns the grid's bounding box.
func (g *Grid[C, W]) Box() geom.CoordBox { return g.box }

// Layout returns the storage layout tag.
func (g *Grid[C, W]) Layout() Layout { return g.layout }

// Edge returns the edge cell handed out for reads outside the box.
func (g *Grid[C, W]) Edge() C { return g.edge }

// Dim returns the logical cell count.
func (g *Grid[C, W]) Dim() int { return g.box.Size.X }

// PhysLen returns the physical slot count. Once a matrix has been adopted
// it is Dim rounded up to a whole number of chunks, so it can exceed Dim.
func (g *Grid[C, W]) PhysLen() int { return g.store.len() }

// Permuted reports whether a weight matrix permutation has been adopted.
func (g *Grid[C, W]) Permuted() bool { return g.perm != nil }

// Get returns the cell at a logical coordinate, or the edge cell when c
// lies outside the bounding box.
func (g *Grid[C, W]) Get(c geom.Coord) C {
	if !g.box.Contains(c) {
		return g.edge
	}
	return g.store.get(g.physIndex(c.X - g.box.Origin.X))
}

// Set stores a cell at a logical coordinate.
func (g *Grid[C, W]) Set(c geom.Coord, cell C) error {
	if !g.box.Contains(c) {
		return errors.Wrapf(ErrOutOfBounds, "set %v in %v", c, g.box)
	}
	g.store.set(g.physIndex(c.X-g.box.Origin.X), cell)
	return nil
}

func (g *Grid[C, W]) physIndex(logical int) int {
	if g.perm == nil {
		return logical
	}
	return g.perm[logical]
}

// PhysGet reads the cell at a physical index; out-of-range indices return
// the edge cell.
func (g *Grid[C, W]) PhysGet(i int) C {
	if i < 0 || i >= g.store.len() {
		return g.edge
	}
	return g.store.get(i)
}

// PhysSet writes the cell at a physical index.
func (g *Grid[C, W]) PhysSet(i int, cell C) {
	g.store.set(i, cell)
}

// Raw exposes the contiguous cell array of an AoS grid in physical order.
// ok is false for SoA grids.
func (g *Grid[C, W]) Raw() (cells []C, ok bool) {
	if d, isDense := g.store.(*denseStorage[C]); isDense {
		return d.cells, true
	}
	return nil, false
}

// SoAAccessor exposes the accessor of an SoA grid; ok is false for AoS
// grids. Kernels downcast it to the model's concrete type to reach the
// member arrays.
func (g *Grid[C, W]) SoAAccessor() (Accessor[C], bool) {
	if s, isSoA := g.store.(*soaStorage[C]); isSoA {
		return s.acc, true
	}
	return nil, false
}

// SetWeights registers a finalized weight matrix under the given id. The
// first matrix donates its row permutation: existing cells are reordered
// into physical order and the storage grows to the padded chunk count,
// new slots holding the construction-time default cell. Later matrices
// must induce the identical permutation or the call fails with
// ErrInconsistentPermutation, leaving the grid unchanged.
func (g *Grid[C, W]) SetWeights(id int, m *sell.Matrix[W]) error {
	if !m.Finalized() {
		return errors.Wrap(sell.ErrNotFinalized, "SetWeights")
	}
	if m.Dim() != g.Dim() {
		return errors.Wrapf(ErrDimensionMismatch, "matrix dim %d, grid dim %d", m.Dim(), g.Dim())
	}

	if g.perm == nil {
		g.adopt(m)
		g.matrices[id] = m
		return nil
	}

	if m.PhysDim() != g.store.len() {
		return errors.Wrapf(ErrInconsistentPermutation,
			"matrix pads to %d physical rows, grid has %d", m.PhysDim(), g.store.len())
	}
	for logical, phys := range g.perm {
		if m.PermAt(logical) != phys {
			return errors.Wrapf(ErrInconsistentPermutation, "row %d maps to %d, grid expects %d",
				logical, m.PermAt(logical), phys)
		}
	}
	g.matrices[id] = m
	return nil
}

// adopt reorders the storage from the current (identity) order into the
// matrix's physical row order and pads it to whole chunks.
func (g *Grid[C, W]) adopt(m *sell.Matrix[W]) {
	n := g.Dim()
	old := make([]C, n)
	for i := range old {
		old[i] = g.store.get(i)
	}

	g.store.resize(m.PhysDim())
	for i := 0; i < m.PhysDim(); i++ {
		g.store.set(i, g.fill)
	}
	for logical := 0; logical < n; logical++ {
		g.store.set(m.PermAt(logical), old[logical])
	}
	g.perm = m.Perm()
}

// Matrix returns the weight matrix registered under id, or nil.
func (g *Grid[C, W]) Matrix(id int) *sell.Matrix[W] {
	return g.matrices[id]
}

// NumMatrices returns how many weight matrices the grid carries.
func (g *Grid[C, W]) NumMatrices() int { return len(g.matrices) }

// RemapRegion translates a region of logical coordinates into physical
// index space: iterating the result visits exactly the physical indices
// of the input's cells, grouped into maximal contiguous streaks. A single
// logical streak may fragment into many physical ones.
func (g *Grid[C, W]) RemapRegion(r *geom.Region) (*geom.Region, error) {
	out := geom.NewRegion(1)
	for s := range r.Streaks() {
		if s.Origin.Y != 0 || s.Origin.Z != 0 {
			return nil, errors.Wrapf(ErrOutOfBounds, "remap %v on a 1-D grid", s)
		}
		for x := s.Origin.X; x < s.EndX; x++ {
			if x < g.box.Origin.X || x >= g.box.Origin.X+g.box.Size.X {
				return nil, errors.Wrapf(ErrOutOfBounds, "remap %v in %v", s, g.box)
			}
			phys := g.physIndex(x - g.box.Origin.X)
			out.Insert(geom.NewStreak(phys, phys+1))
		}
	}
	return out, nil
}
