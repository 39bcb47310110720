// SPDX-License-Identifier: MIT
// Package sobolev: escape-probability evaluation, scalar and table form.

package sobolev

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/macroatom/grid"
)

// ErrNilTable indicates a nil opacity table passed to Table.
var ErrNilTable = errors.New("sobolev: nil opacity table")

// Regime thresholds for the guarded asymptotics.
const (
	// tauHuge: beyond this, exp(-tau) underflows any contribution and
	// beta = 1/tau to full double precision.
	tauHuge = 1e3

	// tauTiny: below this, the two-term series 1 - tau/2 is exact to
	// double precision and avoids the 1-exp cancellation.
	tauTiny = 1e-4
)

// Escape returns the Sobolev escape probability beta(tau).
//
// Regimes:
//   - tau > 1e3  -> 1/tau
//   - tau < 1e-4 -> 1 - tau/2
//   - otherwise  -> (1 - exp(-tau)) / tau
//
// The limits are beta -> 1 as tau -> 0 and beta -> 0 as tau -> +Inf.
// Complexity: O(1).
func Escape(tau float64) float64 {
	switch {
	case tau > tauHuge:
		return 1.0 / tau
	case tau < tauTiny:
		return 1.0 - tau/2.0
	default:
		return (1.0 - math.Exp(-tau)) / tau
	}
}

// Table evaluates Escape elementwise over a (lines × shells) opacity table,
// returning a freshly allocated table of the same shape. tau is read-only.
//
// Errors: ErrNilTable when tau is nil.
// Complexity: O(rows·cols) time and memory.
func Table(tau *grid.Grid) (*grid.Grid, error) {
	if tau == nil {
		return nil, fmt.Errorf("Table: %w", ErrNilTable)
	}

	out := tau.Clone()
	data := out.Data()
	for i, v := range data {
		data[i] = Escape(v)
	}

	return out, nil
}
