// SPDX-License-Identifier: MIT
// Package blocks: the Refs boundary type.
// Refs is a plain []int so callers can build it literally ([]int{0, 3, 5})
// or from per-group counts; Validate enforces the partition invariants at
// call boundaries.

package blocks

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opFromCounts = "FromCounts"
	opValidate   = "Validate"
)

// Refs holds B+1 block boundaries over a row axis of some total length L:
// block k owns rows [Refs[k], Refs[k+1]). Invariants (checked by Validate):
// Refs[0] == 0, Refs[len(Refs)-1] == L, and the sequence is non-decreasing.
// Equal consecutive boundaries denote an empty block.
type Refs []int

// FromCounts builds boundaries from per-group row counts: the cumulative
// sum prefixed with 0, so counts [2, 0, 3] yield Refs [0, 2, 2, 5].
// Stage 1 (Validate): every count must be >= 0 (ErrNegativeCount).
// Stage 2 (Execute): running cumulative sum.
// Complexity: O(B) time and memory.
func FromCounts(counts []int) (Refs, error) {
	refs := make(Refs, len(counts)+1)
	refs[0] = 0
	for k, n := range counts {
		if n < 0 {
			return nil, fmt.Errorf("%s: group %d has count %d: %w", opFromCounts, k, n, ErrNegativeCount)
		}
		refs[k+1] = refs[k] + n
	}

	return refs, nil
}

// Validate checks the partition invariants against a row total.
// Stage 1: length >= 2 (ErrEmptyRefs).
// Stage 2: first boundary 0 (ErrFirstNotZero).
// Stage 3: non-decreasing steps (ErrNotAscending).
// Stage 4: last boundary == total (ErrLastNotTotal).
// Complexity: O(B).
func (r Refs) Validate(total int) error {
	// Stage 1: minimal length.
	if len(r) < 2 {
		return fmt.Errorf("%s: %w", opValidate, ErrEmptyRefs)
	}
	// Stage 2: anchored at zero.
	if r[0] != 0 {
		return fmt.Errorf("%s: first=%d: %w", opValidate, r[0], ErrFirstNotZero)
	}
	// Stage 3: monotone boundaries.
	for k := 1; k < len(r); k++ {
		if r[k] < r[k-1] {
			return fmt.Errorf("%s: refs[%d]=%d < refs[%d]=%d: %w",
				opValidate, k, r[k], k-1, r[k-1], ErrNotAscending)
		}
	}
	// Stage 4: covers the full range.
	if last := r[len(r)-1]; last != total {
		return fmt.Errorf("%s: last=%d, total=%d: %w", opValidate, last, total, ErrLastNotTotal)
	}

	return nil
}

// Count returns the number of blocks B. Complexity: O(1).
func (r Refs) Count() int { return len(r) - 1 }

// Bounds returns the half-open row range [lo, hi) of block k.
// Bounds panics when k is out of [0, Count()): it exists for validated hot
// loops only; boundary code must range over Count() itself.
// Complexity: O(1).
func (r Refs) Bounds(k int) (lo, hi int) {
	if k < 0 || k >= len(r)-1 {
		panic(fmt.Sprintf("blocks: Bounds(%d) out of range [0,%d)", k, len(r)-1))
	}

	return r[k], r[k+1]
}
