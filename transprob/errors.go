// SPDX-License-Identifier: MIT
// Package transprob: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All operations MUST
// return these sentinels and tests MUST check them via errors.Is. No
// operation panics on user input; panics are reserved for the raw accessors
// of the collaborating packages (grid.Row, blocks.Bounds).
//
// ERROR PRIORITY (documented, enforced in tests):
// option errors -> nil tables -> dimension mismatch -> block references
// -> line-index range.

package transprob

import "errors"

var (
	// ErrNilInput indicates that a required input table (Beta, JBlues,
	// StimFactor) is nil.
	ErrNilInput = errors.New("transprob: nil input table")

	// ErrNilOutput indicates that the output table is nil.
	ErrNilOutput = errors.New("transprob: nil output table")

	// ErrDimensionMismatch indicates disagreement on L (transition rows),
	// S (shell columns) or P (physical-line rows) between input arrays,
	// or between the inputs and the output table.
	ErrDimensionMismatch = errors.New("transprob: dimension mismatch")

	// ErrBlockRefs indicates that the block references violate the
	// partition invariants; the specific blocks sentinel is wrapped
	// alongside, so errors.Is matches both.
	ErrBlockRefs = errors.New("transprob: invalid block references")

	// ErrLineIndexRange indicates a LineIndex entry outside [0, P).
	// The engine never clamps or wraps.
	ErrLineIndexRange = errors.New("transprob: line index out of range")

	// ErrBadWorkers indicates a worker count < 1 passed to WithWorkers.
	ErrBadWorkers = errors.New("transprob: worker count must be >= 1")
)
