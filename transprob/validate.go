// SPDX-License-Identifier: MIT
// Package transprob - staged fail-fast validation of the engine call.
//
// Design principles:
//   - Deterministic, side-effect free: the output buffer is never touched
//     before validation succeeds.
//   - No logging, no panics on user input - only sentinel errors from
//     errors.go, wrapped with the operation name.
//   - O(L) worst case; no allocations.

package transprob

import (
	"fmt"

	"github.com/katalvlaran/macroatom/grid"
)

// validateCall verifies the full Compute contract and returns (L, P) on
// success.
//
// Contract:
//   - Beta, JBlues, StimFactor and out must be non-nil.
//   - len(Coef) == len(Kinds) == len(LineIndex) == out.Rows() == L.
//   - Beta, JBlues, StimFactor share one P×S shape; out.Cols() == S.
//   - Blocks satisfies the partition invariants over [0, L].
//   - every LineIndex entry lies in [0, P).
//
// Complexity: O(L) time, O(1) space.
func validateCall(op string, in Inputs, out *grid.Grid) (int, int, error) {
	// Stage 1: presence of tables.
	if in.Beta == nil || in.JBlues == nil || in.StimFactor == nil {
		return 0, 0, fmt.Errorf("%s: %w", op, ErrNilInput)
	}
	if out == nil {
		return 0, 0, fmt.Errorf("%s: %w", op, ErrNilOutput)
	}

	// Stage 2: length-L agreement across per-transition arrays and output rows.
	l := len(in.Coef)
	if len(in.Kinds) != l {
		return 0, 0, fmt.Errorf("%s: len(Kinds)=%d, len(Coef)=%d: %w",
			op, len(in.Kinds), l, ErrDimensionMismatch)
	}
	if len(in.LineIndex) != l {
		return 0, 0, fmt.Errorf("%s: len(LineIndex)=%d, len(Coef)=%d: %w",
			op, len(in.LineIndex), l, ErrDimensionMismatch)
	}
	if out.Rows() != l {
		return 0, 0, fmt.Errorf("%s: out rows=%d, len(Coef)=%d: %w",
			op, out.Rows(), l, ErrDimensionMismatch)
	}

	// Stage 3: one P×S shape across the physical-line tables; out matches S.
	p, s := in.Beta.Rows(), in.Beta.Cols()
	if in.JBlues.Rows() != p || in.JBlues.Cols() != s {
		return 0, 0, fmt.Errorf("%s: JBlues %dx%d, Beta %dx%d: %w",
			op, in.JBlues.Rows(), in.JBlues.Cols(), p, s, ErrDimensionMismatch)
	}
	if in.StimFactor.Rows() != p || in.StimFactor.Cols() != s {
		return 0, 0, fmt.Errorf("%s: StimFactor %dx%d, Beta %dx%d: %w",
			op, in.StimFactor.Rows(), in.StimFactor.Cols(), p, s, ErrDimensionMismatch)
	}
	if out.Cols() != s {
		return 0, 0, fmt.Errorf("%s: out cols=%d, shells=%d: %w",
			op, out.Cols(), s, ErrDimensionMismatch)
	}

	// Stage 4: block partition over [0, L].
	if err := in.Blocks.Validate(l); err != nil {
		return 0, 0, fmt.Errorf("%s: %w: %w", op, ErrBlockRefs, err)
	}

	// Stage 5: physical-line indirection stays in bounds. No clamping.
	for i, r := range in.LineIndex {
		if r < 0 || r >= p {
			return 0, 0, fmt.Errorf("%s: LineIndex[%d]=%d, physical lines=%d: %w",
				op, i, r, p, ErrLineIndexRange)
		}
	}

	return l, p, nil
}
