// SPDX-License-Identifier: MIT
// Package transprob: Phase 2 - block-wise column normalization.
//
// The zero-total policy lives here and only here: a column whose block
// total is exactly zero keeps scale 1.0, so an all-zero level group stays
// zero instead of turning into NaN.

package transprob

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/macroatom/blocks"
	"github.com/katalvlaran/macroatom/grid"
)

// NormalizeColumns rescales t in place so that, within every block of refs
// and every column, the values sum to one. Columns whose block total is
// exactly zero are left unchanged; empty blocks are no-ops. Normalizing an
// already-normalized table is numerically a no-op.
//
// Inputs:
//   - t: L×S table, mutated in place.
//   - refs: level-group boundaries, validated against L.
//
// Errors:
//   - ErrNilOutput when t is nil; ErrBlockRefs (wrapping the specific
//     blocks sentinel) on a bad partition. t is untouched on error.
//
// Determinism: per-column totals accumulate in ascending row order.
// Complexity: O(L·S) time, O(S) scratch per block.
func NormalizeColumns(t *grid.Grid, refs blocks.Refs) error {
	// Stage 1 (Validate): table and partition.
	if t == nil {
		return fmt.Errorf("%s: %w", opNormalize, ErrNilOutput)
	}
	if err := refs.Validate(t.Rows()); err != nil {
		return fmt.Errorf("%s: %w: %w", opNormalize, ErrBlockRefs, err)
	}

	// Stage 2 (Execute): serial block sweep.
	normalizeBlocks(t, refs, 1)

	return nil
}

// normalizeBlocks runs the Phase 2 sweep over all blocks, optionally
// distributing whole blocks across workers (disjoint row ranges, so blocks
// never contend). Inputs are pre-validated.
func normalizeBlocks(t *grid.Grid, refs blocks.Refs, workers int) {
	b := refs.Count()
	if workers <= 1 || b < 2 {
		for k := 0; k < b; k++ {
			lo, hi := refs.Bounds(k)
			normalizeBlock(t, lo, hi)
		}

		return
	}

	if workers > b {
		workers = b
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			// Round-robin block ownership keeps the per-goroutine load even
			// without a shared queue.
			for k := w; k < b; k += workers {
				lo, hi := refs.Bounds(k)
				normalizeBlock(t, lo, hi)
			}
		}(w)
	}
	wg.Wait()
}

// normalizeBlock rescales rows [lo, hi) of t column-wise.
// Stage 1: accumulate per-column totals in ascending row order.
// Stage 2: turn totals into scales; exact zero keeps scale 1.0.
// Stage 3: apply the scales to every row of the block.
// An empty block ([lo, hi) with lo == hi) does nothing.
// Complexity: O((hi-lo)·S) time, O(S) scratch.
func normalizeBlock(t *grid.Grid, lo, hi int) {
	if lo == hi {
		return
	}

	// Stage 1: column totals.
	scale := make([]float64, t.Cols())
	for i := lo; i < hi; i++ {
		row := t.Row(i)
		for c, v := range row {
			scale[c] += v
		}
	}

	// Stage 2: totals -> scales. Exact zero keeps the column as-is.
	for c, total := range scale {
		if total != 0 {
			scale[c] = 1.0 / total
		} else {
			scale[c] = 1.0 // preserves an all-zero column exactly (no NaN)
		}
	}

	// Stage 3: rescale the block.
	for i := lo; i < hi; i++ {
		row := t.Row(i)
		for c := range row {
			row[c] *= scale[c]
		}
	}
}
