// SPDX-License-Identifier: MIT
// Package blocks: block-wise reductions over grid tables.
// Both reductions accumulate in fixed ascending row order for bit-exact
// reproducibility across runs.

package blocks

import (
	"fmt"

	"github.com/katalvlaran/macroatom/grid"
)

// Operation name constants for unified error wrapping.
const (
	opSumColumns       = "SumColumns"
	opIntegrateColumns = "IntegrateColumns"
)

// SumColumns computes per-block column sums of t: the result is a B×S table
// where cell (k, c) holds the sum of t[i, c] over rows i of block k.
//
// Inputs:
//   - t: L×S table.
//   - refs: validated against L.
//
// Returns:
//   - *grid.Grid: freshly allocated B×S sums (empty blocks sum to 0).
//
// Errors:
//   - ErrNilGrid, or any Validate sentinel wrapped with the op name.
//
// Complexity: O(L*S) time, O(B*S) memory.
func SumColumns(t *grid.Grid, refs Refs) (*grid.Grid, error) {
	// Stage 1 (Validate): table and partition.
	if t == nil {
		return nil, fmt.Errorf("%s: %w", opSumColumns, ErrNilGrid)
	}
	if err := refs.Validate(t.Rows()); err != nil {
		return nil, fmt.Errorf("%s: %w", opSumColumns, err)
	}

	// Stage 2 (Prepare): B×S output.
	out, err := grid.New(refs.Count(), t.Cols())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSumColumns, err)
	}

	// Stage 3 (Execute): ascending-row accumulation per block.
	for k := 0; k < refs.Count(); k++ {
		lo, hi := refs.Bounds(k)
		dst := out.Row(k)
		for i := lo; i < hi; i++ {
			src := t.Row(i)
			for c, v := range src {
				dst[c] += v
			}
		}
	}

	return out, nil
}

// IntegrateColumns integrates f column-wise over each block by the
// trapezoid rule on the abscissa x: cell (k, c) of the result is
// ∫ f[:, c] dx restricted to the rows of block k. Blocks with fewer than
// two rows integrate to 0.
//
// Inputs:
//   - f: L×S integrand table.
//   - x: abscissa values, len(x) == L.
//   - refs: validated against L.
//
// Returns:
//   - *grid.Grid: freshly allocated B×S integrals.
//
// Errors:
//   - ErrNilGrid, ErrAbscissaLength, or any Validate sentinel, wrapped with
//     the op name.
//
// Complexity: O(L*S) time, O(B*S) memory.
func IntegrateColumns(f *grid.Grid, x []float64, refs Refs) (*grid.Grid, error) {
	// Stage 1 (Validate): integrand, abscissa, partition.
	if f == nil {
		return nil, fmt.Errorf("%s: %w", opIntegrateColumns, ErrNilGrid)
	}
	if len(x) != f.Rows() {
		return nil, fmt.Errorf("%s: len(x)=%d, rows=%d: %w",
			opIntegrateColumns, len(x), f.Rows(), ErrAbscissaLength)
	}
	if err := refs.Validate(f.Rows()); err != nil {
		return nil, fmt.Errorf("%s: %w", opIntegrateColumns, err)
	}

	// Stage 2 (Prepare): B×S output.
	out, err := grid.New(refs.Count(), f.Cols())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opIntegrateColumns, err)
	}

	// Stage 3 (Execute): trapezoid per block, ascending row order.
	for k := 0; k < refs.Count(); k++ {
		lo, hi := refs.Bounds(k)
		dst := out.Row(k)
		for i := lo + 1; i < hi; i++ {
			prev, cur := f.Row(i-1), f.Row(i)
			dx := x[i] - x[i-1]
			for c := range dst {
				dst[c] += 0.5 * dx * (prev[c] + cur[c])
			}
		}
	}

	return out, nil
}
