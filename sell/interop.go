// Copyright 2026 libgeodecomp-go Authors. SPDX-License-Identifier: Apache-2.0

package sell

import (
	"github.com/james-bowman/sparse"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// FromCSR builds a finalized SELL-C-sigma matrix from a CSR matrix.
// The source must be square; entries arrive per row with ascending column
// indices, which becomes the insertion order seen by Row.
func FromCSR(c *sparse.CSR, chunkWidth, sortWindow int) (*Matrix[float64], error) {
	r, cols := c.Dims()
	if r != cols {
		return nil, errors.Wrapf(ErrBadShape, "CSR is %dx%d, want square", r, cols)
	}
	m, err := New[float64](r, chunkWidth, sortWindow)
	if err != nil {
		return nil, err
	}
	var insertErr error
	c.DoNonZero(func(i, j int, v float64) {
		if insertErr == nil {
			insertErr = m.Insert(i, j, v)
		}
	})
	if insertErr != nil {
		return nil, insertErr
	}
	if err := m.Finalize(); err != nil {
		return nil, err
	}
	return m, nil
}

// ToDense exports the finalized matrix as a dense gonum matrix in logical
// index space, summing duplicate triples. Padding entries are excluded.
func (m *Matrix[W]) ToDense() (*mat.Dense, error) {
	if !m.finalized {
		return nil, ErrNotFinalized
	}
	d := mat.NewDense(max(m.dim, 1), max(m.dim, 1), nil)
	for r := 0; r < m.dim; r++ {
		for col, w := range m.Row(r) {
			d.Set(r, col, d.At(r, col)+float64(w))
		}
	}
	return d, nil
}
