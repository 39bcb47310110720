// SPDX-License-Identifier: MIT
// Package transprob: Compute - Phase 1 assembly plus optional Phase 2
// normalization.
//
// Determinism & Performance:
//   - Fixed i→j traversal; every output cell is written exactly once in
//     Phase 1, so row stripes parallelize with no shared mutable state.
//   - All loops run on raw row slices obtained after validation.

package transprob

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/macroatom/grid"
)

// Operation name constants for unified error wrapping.
const (
	opCompute   = "Compute"
	opNormalize = "NormalizeColumns"
)

// Compute fills out with the macro-atom transition probabilities derived
// from in, then (by default) normalizes them block-wise so that within each
// level group and each shell column the probabilities sum to one.
//
// Implementation:
//   - Stage 1: gather options, validate the full call contract (validate.go);
//     out is untouched on any error.
//   - Stage 2 (Phase 1): out[i,j] = Coef[i]·Beta[LineIndex[i],j], with the
//     stimulated-emission correction StimFactor·JBlues multiplied in for
//     KindInternalUp rows.
//   - Stage 3 (Phase 2): block normalization via normalizeBlocks, unless
//     disabled with WithoutNormalization.
//
// Inputs:
//   - in: caller-owned arrays (read-only here); see Inputs for shapes.
//   - out: caller-allocated L×S table, fully overwritten.
//   - opts: WithoutNormalization, WithWorkers.
//
// Returns:
//   - nil on success; out then holds the final table.
//
// Errors:
//   - ErrBadWorkers, ErrNilInput, ErrNilOutput, ErrDimensionMismatch,
//     ErrBlockRefs, ErrLineIndexRange (all wrapped with "Compute:").
//
// Determinism:
//   - Bit-identical results at any worker count: stripes own disjoint rows,
//     and each (block, column) total is accumulated in ascending row order
//     by exactly one goroutine.
//
// Complexity:
//   - Time O(L·S), scratch O(S) per level group.
//
// NaN/Inf policy: inputs are assumed finite and are not screened; non-finite
// values propagate into out undefined-behavior style. Validation covers
// shapes and indices only.
func Compute(in Inputs, out *grid.Grid, opts ...Option) error {
	// Stage 1 (Options): gather and enforce invariants.
	o, err := gatherOptions(opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", opCompute, err)
	}

	// Stage 1 (Validate): full call contract; out untouched on failure.
	l, _, err := validateCall(opCompute, in, out)
	if err != nil {
		return err
	}

	// Stage 2 (Phase 1): assemble every cell.
	if o.workers == 1 || l < 2 {
		assembleRows(in, out, 0, l)
	} else {
		assembleParallel(in, out, l, o.workers)
	}

	// Stage 3 (Phase 2): block normalization, unless the caller asked for
	// the raw assembled rates.
	if o.normalize {
		normalizeBlocks(out, in.Blocks, o.workers)
	}

	return nil
}

// assembleRows runs Phase 1 over transition rows [lo, hi).
// Each row resolves its physical line once; the per-cell work is a pure
// multiply over raw row slices. Complexity: O((hi-lo)·S).
func assembleRows(in Inputs, out *grid.Grid, lo, hi int) {
	for i := lo; i < hi; i++ {
		r := in.LineIndex[i] // physical line backing this transition row
		c := in.Coef[i]
		beta := in.Beta.Row(r)
		dst := out.Row(i)

		if in.Kinds[i] == KindInternalUp {
			// Radiative upward: correct for stimulated emission by the
			// local radiation field.
			stim := in.StimFactor.Row(r)
			jb := in.JBlues.Row(r)
			for j := range dst {
				dst[j] = c * beta[j] * stim[j] * jb[j]
			}
		} else {
			for j := range dst {
				dst[j] = c * beta[j]
			}
		}
	}
}

// assembleParallel splits Phase 1 into contiguous row stripes, one goroutine
// per stripe. Stripes are disjoint, so no synchronization beyond the final
// barrier is needed.
func assembleParallel(in Inputs, out *grid.Grid, l, workers int) {
	if workers > l {
		workers = l
	}
	stripe := (l + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < l; lo += stripe {
		hi := lo + stripe
		if hi > l {
			hi = l
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			assembleRows(in, out, lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
