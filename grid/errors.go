// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the grid
// package. All constructors and accessors MUST return these sentinels and
// tests MUST check them via errors.Is. No method panics on user-triggered
// error conditions except the documented raw accessors (Row).

package grid

import "errors"

var (
	// ErrInvalidDimensions indicates that requested table dimensions are non-positive.
	ErrInvalidDimensions = errors.New("grid: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("grid: index out of bounds")

	// ErrRaggedRows indicates that a [][]float64 literal has rows of unequal length.
	ErrRaggedRows = errors.New("grid: ragged rows")

	// ErrNilGrid indicates that a nil *Grid (receiver or argument) was used.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrNilDense indicates that a nil *mat.Dense was passed to FromDense.
	ErrNilDense = errors.New("grid: nil dense matrix")
)
