// SPDX-License-Identifier: MIT
// Package grid: copying bridge to gonum.org/v1/gonum/mat.
// The engine's arithmetic never calls gonum; this file only lets downstream
// numerical tooling consume engine tables (and feed them back) without
// changing the module's flat-slice representation.

package grid

import "gonum.org/v1/gonum/mat"

// Dense returns an independent *mat.Dense copy of the Grid.
// Mutating the result never affects the Grid.
// Complexity: O(rows*cols) time and memory.
func (g *Grid) Dense() *mat.Dense {
	cp := make([]float64, len(g.data))
	copy(cp, g.data)

	return mat.NewDense(g.rows, g.cols, cp)
}

// FromDense creates a Grid copying the contents of d.
// Stage 1 (Validate): d non-nil (ErrNilDense), positive dims
// (ErrInvalidDimensions; a zero-sized mat.Dense is rejected).
// Stage 2 (Execute): copy element-wise via RawMatrix to preserve layout.
// Complexity: O(rows*cols) time and memory.
func FromDense(d *mat.Dense) (*Grid, error) {
	if d == nil {
		return nil, ErrNilDense
	}
	r, c := d.Dims()
	if r <= 0 || c <= 0 {
		return nil, ErrInvalidDimensions
	}

	g := &Grid{rows: r, cols: c, data: make([]float64, r*c)}
	raw := d.RawMatrix()
	for i := 0; i < r; i++ {
		copy(g.data[i*c:(i+1)*c], raw.Data[i*raw.Stride:i*raw.Stride+c])
	}

	return g, nil
}
