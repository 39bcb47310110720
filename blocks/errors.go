// SPDX-License-Identifier: MIT
// Package blocks: sentinel error set.
// All boundary-shape violations get their own sentinel so callers can
// diagnose exactly which invariant broke; tests match via errors.Is.

package blocks

import "errors"

var (
	// ErrEmptyRefs indicates a nil or too-short boundary slice
	// (at least two boundaries are required to describe one block range).
	ErrEmptyRefs = errors.New("blocks: empty or nil references")

	// ErrFirstNotZero indicates that the first boundary is not 0.
	ErrFirstNotZero = errors.New("blocks: first reference must be 0")

	// ErrNotAscending indicates a descending step between consecutive
	// boundaries (equal steps are legal: empty blocks).
	ErrNotAscending = errors.New("blocks: references must be non-decreasing")

	// ErrLastNotTotal indicates that the last boundary does not equal the
	// total row count the references are validated against.
	ErrLastNotTotal = errors.New("blocks: last reference must equal total rows")

	// ErrNegativeCount indicates a negative per-group count in FromCounts.
	ErrNegativeCount = errors.New("blocks: negative group count")

	// ErrNilGrid indicates a nil table argument to a reduction.
	ErrNilGrid = errors.New("blocks: nil grid")

	// ErrAbscissaLength indicates that the abscissa array length does not
	// match the integrand's row count.
	ErrAbscissaLength = errors.New("blocks: abscissa length mismatch")
)
