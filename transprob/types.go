// SPDX-License-Identifier: MIT
// Package transprob: transition kinds and the engine input aggregate.

package transprob

import (
	"github.com/katalvlaran/macroatom/blocks"
	"github.com/katalvlaran/macroatom/grid"
)

// Kind classifies a macro-atom transition row. The values mirror the
// classification the line-list preprocessing emits:
//
//   - KindInternalUp   — radiative upward transition; its rate depends on
//     the local radiation field, so Phase 1 applies the stimulated-emission
//     correction (StimFactor · JBlues) to it.
//   - KindInternalDown — internal downward transition; bare Sobolev-weighted
//     coefficient.
//   - KindEmission     — radiative deactivation (packet emission); bare
//     Sobolev-weighted coefficient.
//
// The correction tests == KindInternalUp, so any value outside the closed
// enum also skips it; additional kinds can be introduced without touching
// the assembly loop.
type Kind int8

const (
	// KindEmission marks radiative deactivation of the macro-atom.
	KindEmission Kind = -1

	// KindInternalDown marks an internal downward transition.
	KindInternalDown Kind = 0

	// KindInternalUp marks a radiative upward transition (the only kind
	// subject to the stimulated-emission correction).
	KindInternalUp Kind = 1
)

// Inputs aggregates the caller-owned arrays the engine consumes. All fields
// are read-only to the engine.
//
// Shape conventions (validated by Compute):
//   - L = len(Coef) = len(Kinds) = len(LineIndex) = output rows: one entry
//     per transition row.
//   - P×S = shape of Beta, JBlues and StimFactor: one row per physical
//     line, one column per shell. Several transition rows may share a
//     physical line, hence the LineIndex indirection.
//   - Blocks partitions [0, L) into contiguous macro-atom level groups.
type Inputs struct {
	// Coef holds the per-transition scalar coefficient (length L),
	// precomputed from atomic data; it depends on the transition only,
	// never on the shell.
	Coef []float64

	// Beta is the Sobolev escape-probability table (P×S).
	Beta *grid.Grid

	// JBlues is the mean-intensity table at the blue wing of each line
	// (P×S); consumed only for KindInternalUp rows.
	JBlues *grid.Grid

	// StimFactor is the stimulated-emission correction table (P×S);
	// consumed only for KindInternalUp rows.
	StimFactor *grid.Grid

	// Kinds classifies each transition row (length L).
	Kinds []Kind

	// LineIndex maps transition row i to its physical-line row in the P×S
	// tables (length L, values in [0, P)).
	LineIndex []int

	// Blocks holds the level-group boundaries over [0, L].
	Blocks blocks.Refs
}
