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

package sell

import (
	"iter"
	"sort"

	"github.com/pkg/errors"
)

// Float constrains the weight scalar type.
type Float interface {
	~float32 | ~float64
}

type entry[W Float] struct {
	col    int
	weight W
}

// Matrix is a square sparse matrix in SELL-C-sigma format. It is built in
// two phases: Insert collects (row, col, weight) triples in logical index
// space, then Finalize computes the row permutation, remaps columns to
// physical indices and lays out the padded chunks. After Finalize the
// matrix is immutable and safe for concurrent reads.
type Matrix[W Float] struct {
	dim        int // logical rows/cols
	chunkWidth int // C
	sortWindow int // sigma
	finalized  bool

	// Build state: per logical row, triples in insertion order.
	pending [][]entry[W]
	nnz     int

	// Finalized state. Column indices are physical. Slot j of chunk ci
	// occupies cols[chunkOff[ci]+j*C : ...+C], one lane per chunk row.
	perm      []int // logical -> physical, len dim
	inv       []int // physical -> logical, len physDim, -1 for padding rows
	physDim   int   // dim rounded up to a chunk multiple
	chunkOff  []int
	slotCount []int // per chunk: width of its longest row
	rowLen    []int // per physical row: real nonzero count
	cols      []int32
	weights   []W
}

// New constructs an empty dim x dim matrix with chunk width C and sort
// window sigma. A sort window of 1 disables sorting (identity
// permutation); the window does not have to be a multiple of the chunk
// width.
func New[W Float](dim, chunkWidth, sortWindow int) (*Matrix[W], error) {
	if dim < 0 || chunkWidth < 1 || sortWindow < 1 {
		return nil, errors.Wrapf(ErrBadShape, "dim=%d C=%d sigma=%d", dim, chunkWidth, sortWindow)
	}
	return &Matrix[W]{
		dim:        dim,
		chunkWidth: chunkWidth,
		sortWindow: sortWindow,
		pending:    make([][]entry[W], dim),
	}, nil
}

// Dim returns the logical row (and column) count.
func (m *Matrix[W]) Dim() int { return m.dim }

// PhysDim returns the physical row count: Dim rounded up to a whole
// number of chunks. Available after Finalize.
func (m *Matrix[W]) PhysDim() int { return m.physDim }

// ChunkWidth returns C.
func (m *Matrix[W]) ChunkWidth() int { return m.chunkWidth }

// SortWindow returns sigma.
func (m *Matrix[W]) SortWindow() int { return m.sortWindow }

// NNZ returns the number of inserted triples.
func (m *Matrix[W]) NNZ() int { return m.nnz }

// Finalized reports whether Finalize has completed.
func (m *Matrix[W]) Finalized() bool { return m.finalized }

// Insert records the triple (row, col, weight). Insertion order is
// preserved per row and duplicates are kept. Insert fails on a finalized
// matrix and on indices outside [0, Dim()).
func (m *Matrix[W]) Insert(row, col int, weight W) error {
	if m.finalized {
		return ErrFinalized
	}
	if row < 0 || row >= m.dim || col < 0 || col >= m.dim {
		return errors.Wrapf(ErrOutOfRange, "triple (%d, %d)", row, col)
	}
	m.pending[row] = append(m.pending[row], entry[W]{col: col, weight: weight})
	m.nnz++
	return nil
}

// Finalize computes the sigma-local row permutation and lays out the
// padded chunk storage. The matrix is read-only afterwards.
func (m *Matrix[W]) Finalize() error {
	if m.finalized {
		return ErrFinalized
	}
	c := m.chunkWidth
	m.physDim = (m.dim + c - 1) / c * c
	numChunks := m.physDim / c

	m.computePermutation()

	m.chunkOff = make([]int, numChunks+1)
	m.slotCount = make([]int, numChunks)
	m.rowLen = make([]int, m.physDim)
	for phys, logical := range m.inv {
		if logical >= 0 {
			m.rowLen[phys] = len(m.pending[logical])
		}
	}

	total := 0
	for ci := 0; ci < numChunks; ci++ {
		w := 0
		for lane := 0; lane < c; lane++ {
			w = max(w, m.rowLen[ci*c+lane])
		}
		m.slotCount[ci] = w
		m.chunkOff[ci] = total
		total += w * c
	}
	m.chunkOff[numChunks] = total

	m.cols = make([]int32, total)
	m.weights = make([]W, total)
	for ci := 0; ci < numChunks; ci++ {
		off := m.chunkOff[ci]
		for j := 0; j < m.slotCount[ci]; j++ {
			for lane := 0; lane < c; lane++ {
				phys := ci*c + lane
				idx := off + j*c + lane
				if j < m.rowLen[phys] {
					e := m.pending[m.inv[phys]][j]
					m.cols[idx] = int32(m.perm[e.col])
					m.weights[idx] = e.weight
				} else {
					// Neutral padding: weight 0, column pointing at the
					// row itself so gathers stay in bounds.
					m.cols[idx] = int32(phys)
					m.weights[idx] = 0
				}
			}
		}
	}

	m.finalized = true
	return nil
}

// computePermutation stable-sorts every sigma window of rows descending by
// nonzero count. Rows past Dim (the phantom tail filling the last chunk)
// take part with length 0; stability keeps them behind every real row, so
// the permutation restricted to [0, Dim) is a bijection onto [0, Dim).
func (m *Matrix[W]) computePermutation() {
	m.perm = make([]int, m.dim)
	m.inv = make([]int, m.physDim)

	rowLen := func(r int) int {
		if r < m.dim {
			return len(m.pending[r])
		}
		return 0
	}

	order := make([]int, m.physDim)
	for ws := 0; ws < m.physDim; ws += m.sortWindow {
		we := min(ws+m.sortWindow, m.physDim)
		window := order[ws:we]
		for i := range window {
			window[i] = ws + i
		}
		sort.SliceStable(window, func(a, b int) bool {
			return rowLen(window[a]) > rowLen(window[b])
		})
	}

	for phys, logical := range order {
		if logical < m.dim {
			m.perm[logical] = phys
			m.inv[phys] = logical
		} else {
			m.inv[phys] = -1
		}
	}
}

// PermAt maps a logical row to its physical index.
func (m *Matrix[W]) PermAt(logical int) int { return m.perm[logical] }

// InverseAt maps a physical row back to its logical index, or -1 for a
// padding row past Dim.
func (m *Matrix[W]) InverseAt(phys int) int { return m.inv[phys] }

// Perm returns a copy of the logical-to-physical permutation.
func (m *Matrix[W]) Perm() []int {
	return append([]int(nil), m.perm...)
}

// PermEqual reports whether the matrix induces the same row permutation
// as other. Both matrices must be finalized.
func (m *Matrix[W]) PermEqual(other *Matrix[W]) bool {
	if len(m.perm) != len(other.perm) {
		return false
	}
	for i, p := range m.perm {
		if other.perm[i] != p {
			return false
		}
	}
	return true
}

// ChunkCount returns the number of chunks.
func (m *Matrix[W]) ChunkCount() int { return len(m.slotCount) }

// SlotCount returns the padded width of chunk ci.
func (m *Matrix[W]) SlotCount(ci int) int { return m.slotCount[ci] }

// RowLen returns the real (non-padding) entry count of a physical row.
func (m *Matrix[W]) RowLen(phys int) int { return m.rowLen[phys] }

// Slot is one column of a chunk: parallel arrays of ChunkWidth physical
// column indices and weights, one lane per chunk row. Padding lanes carry
// weight 0 and a self column.
type Slot[W Float] struct {
	Cols    []int32
	Weights []W
}

// Slots iterates the slots of chunk ci in order. The yielded slices alias
// the matrix storage and must not be modified.
func (m *Matrix[W]) Slots(ci int) iter.Seq[Slot[W]] {
	return func(yield func(Slot[W]) bool) {
		c := m.chunkWidth
		off := m.chunkOff[ci]
		for j := 0; j < m.slotCount[ci]; j++ {
			s := Slot[W]{
				Cols:    m.cols[off+j*c : off+(j+1)*c],
				Weights: m.weights[off+j*c : off+(j+1)*c],
			}
			if !yield(s) {
				return
			}
		}
	}
}

// PhysRow iterates the real entries of a physical row as (physical column,
// weight) pairs, skipping padding.
func (m *Matrix[W]) PhysRow(phys int) iter.Seq2[int32, W] {
	return func(yield func(int32, W) bool) {
		c := m.chunkWidth
		ci := phys / c
		lane := phys % c
		off := m.chunkOff[ci]
		for j := 0; j < m.rowLen[phys]; j++ {
			idx := off + j*c + lane
			if !yield(m.cols[idx], m.weights[idx]) {
				return
			}
		}
	}
}

// Row iterates the entries of a logical row as (logical column, weight)
// pairs in insertion order, excluding padding. Before Finalize, and for
// indices outside [0, Dim()), it yields nothing; use Triples when an
// explicit error is needed.
func (m *Matrix[W]) Row(logical int) iter.Seq2[int, W] {
	return func(yield func(int, W) bool) {
		if !m.finalized || logical < 0 || logical >= m.dim {
			return
		}
		for physCol, w := range m.PhysRow(m.perm[logical]) {
			if !yield(m.inv[physCol], w) {
				return
			}
		}
	}
}

// Triple is one (row, col, weight) element in logical index space.
type Triple[W Float] struct {
	Row, Col int
	Weight   W
}

// Triples enumerates the whole matrix row by row in logical index space,
// excluding padding. The matrix must be finalized.
func (m *Matrix[W]) Triples() ([]Triple[W], error) {
	if !m.finalized {
		return nil, ErrNotFinalized
	}
	out := make([]Triple[W], 0, m.nnz)
	for r := 0; r < m.dim; r++ {
		for col, w := range m.Row(r) {
			out = append(out, Triple[W]{Row: r, Col: col, Weight: w})
		}
	}
	return out, nil
}
