// Copyright 2026 libgeodecomp-go Authors. SPDX-License-Identifier: Apache-2.0

package sell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatrix(t *testing.T, dim, c, sigma int) *Matrix[float64] {
	t.Helper()
	m, err := New[float64](dim, c, sigma)
	require.NoError(t, err)
	return m
}

func TestNewValidation(t *testing.T) {
	_, err := New[float64](-1, 4, 1)
	assert.ErrorIs(t, err, ErrBadShape)
	_, err = New[float64](10, 0, 1)
	assert.ErrorIs(t, err, ErrBadShape)
	_, err = New[float64](10, 4, 0)
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestInsertValidation(t *testing.T) {
	m := mustMatrix(t, 3, 2, 2)
	assert.ErrorIs(t, m.Insert(3, 0, 1), ErrOutOfRange)
	assert.ErrorIs(t, m.Insert(0, -1, 1), ErrOutOfRange)

	require.NoError(t, m.Finalize())
	assert.ErrorIs(t, m.Insert(0, 0, 1), ErrFinalized)
	assert.ErrorIs(t, m.Finalize(), ErrFinalized)
}

func TestAccessBeforeFinalize(t *testing.T) {
	m := mustMatrix(t, 3, 2, 2)
	_, err := m.Triples()
	assert.ErrorIs(t, err, ErrNotFinalized)
	_, err = m.ToDense()
	assert.ErrorIs(t, err, ErrNotFinalized)
}

// The canonical small example: C=2, sigma=2, rows of growing length force
// a swap in the first window.
func TestFinalizeChunkLayout(t *testing.T) {
	m := mustMatrix(t, 3, 2, 2)
	triples := []Triple[float64]{
		{0, 0, 1}, {1, 0, 2}, {1, 1, 3}, {2, 0, 4}, {2, 1, 5}, {2, 2, 6},
	}
	for _, tr := range triples {
		require.NoError(t, m.Insert(tr.Row, tr.Col, tr.Weight))
	}
	require.NoError(t, m.Finalize())

	assert.Equal(t, 4, m.PhysDim())
	require.Equal(t, 2, m.ChunkCount())
	// Window [0,2): row 1 (2 entries) sorts before row 0 (1 entry).
	assert.Equal(t, []int{1, 0, 2}, m.Perm())
	assert.Equal(t, 2, m.SlotCount(0))
	assert.Equal(t, 3, m.SlotCount(1))
	assert.Equal(t, -1, m.InverseAt(3))

	got, err := m.Triples()
	require.NoError(t, err)
	assert.Equal(t, triples, got)
}

func TestRoundTripReinsertion(t *testing.T) {
	m := mustMatrix(t, 10, 4, 8)
	for r := 0; r < 10; r++ {
		for c := 0; c <= r; c++ {
			require.NoError(t, m.Insert(r, c, float64(r*100+c)))
		}
	}
	require.NoError(t, m.Finalize())

	first, err := m.Triples()
	require.NoError(t, err)

	// Re-inserting the read-back triples yields an identical matrix.
	m2 := mustMatrix(t, 10, 4, 8)
	for _, tr := range first {
		require.NoError(t, m2.Insert(tr.Row, tr.Col, tr.Weight))
	}
	require.NoError(t, m2.Finalize())

	second, err := m2.Triples()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, m.PermEqual(m2))
}

func TestPermutationIsBijection(t *testing.T) {
	// 150 rows, C=4, sigma=128: the last window covers rows 128..151
	// including two phantom rows that must stay behind every real row.
	const dim = 150
	m := mustMatrix(t, dim, 4, 128)
	for r := 0; r < dim; r++ {
		for c := 0; c < r; c++ {
			require.NoError(t, m.Insert(r, c, 1))
		}
	}
	require.NoError(t, m.Finalize())

	assert.Equal(t, 152, m.PhysDim())
	seen := make([]bool, dim)
	for r := 0; r < dim; r++ {
		p := m.PermAt(r)
		require.GreaterOrEqual(t, p, 0)
		require.Less(t, p, dim, "physical index of a real row must stay below Dim")
		require.False(t, seen[p])
		seen[p] = true
		assert.Equal(t, r, m.InverseAt(p))
	}
	assert.Equal(t, -1, m.InverseAt(150))
	assert.Equal(t, -1, m.InverseAt(151))

	// Descending row length within the first window.
	assert.Equal(t, 0, m.PermAt(127))
	assert.Equal(t, 127, m.PermAt(0))
}

func TestSigmaOneIsIdentity(t *testing.T) {
	m := mustMatrix(t, 8, 4, 1)
	for r := 0; r < 8; r++ {
		for c := 0; c < r; c++ {
			require.NoError(t, m.Insert(r, c, 1))
		}
	}
	require.NoError(t, m.Finalize())
	for r := 0; r < 8; r++ {
		assert.Equal(t, r, m.PermAt(r))
	}
}

func TestPaddingIsNeutral(t *testing.T) {
	m := mustMatrix(t, 6, 4, 4)
	require.NoError(t, m.Insert(0, 0, 1))
	require.NoError(t, m.Insert(0, 1, 2))
	require.NoError(t, m.Insert(1, 3, 3))
	require.NoError(t, m.Finalize())

	for ci := 0; ci < m.ChunkCount(); ci++ {
		slot := 0
		for s := range m.Slots(ci) {
			require.Len(t, s.Cols, 4)
			require.Len(t, s.Weights, 4)
			for lane := 0; lane < 4; lane++ {
				phys := ci*4 + lane
				if slot >= m.RowLen(phys) {
					assert.Equal(t, int32(phys), s.Cols[lane], "padding points at self")
					assert.Equal(t, 0.0, s.Weights[lane])
				}
				// Every stored column is a defined physical index.
				assert.GreaterOrEqual(t, s.Cols[lane], int32(0))
				assert.Less(t, s.Cols[lane], int32(m.PhysDim()))
			}
			slot++
		}
		assert.Equal(t, m.SlotCount(ci), slot)
	}
}

func TestRowSumsSurviveChunking(t *testing.T) {
	m := mustMatrix(t, 20, 4, 8)
	want := make([]float64, 20)
	for r := 0; r < 20; r++ {
		for c := 0; c < 20; c += r + 1 {
			w := float64(r + 10*c)
			require.NoError(t, m.Insert(r, c, w))
			want[r] += w
		}
	}
	require.NoError(t, m.Finalize())

	// Scanning the chunk at the row's lane recovers the row sum; padding
	// contributes nothing.
	for r := 0; r < 20; r++ {
		sum := 0.0
		for _, w := range m.Row(r) {
			sum += w
		}
		assert.Equal(t, want[r], sum, "row %d", r)
	}
}

func TestDuplicateTriplesKept(t *testing.T) {
	m := mustMatrix(t, 2, 2, 1)
	require.NoError(t, m.Insert(0, 1, 2))
	require.NoError(t, m.Insert(0, 1, 3))
	require.NoError(t, m.Finalize())

	got, err := m.Triples()
	require.NoError(t, err)
	assert.Equal(t, []Triple[float64]{{0, 1, 2}, {0, 1, 3}}, got)
}

func BenchmarkFinalize(b *testing.B) {
	for b.Loop() {
		m, _ := New[float64](1024, 8, 64)
		for r := 0; r < 1024; r++ {
			for c := r - 8; c < r; c++ {
				if c >= 0 {
					_ = m.Insert(r, c, 1)
				}
			}
		}
		_ = m.Finalize()
	}
}
