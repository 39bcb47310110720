// SPDX-License-Identifier: MIT
// Package radfield: Planck and dilute-blackbody mean intensities.

package radfield

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/macroatom/grid"
)

// Physical constants, CGS, exact SI-2019 values.
const (
	planckErgS       = 6.62607015e-27 // Planck constant [erg s]
	boltzmannErgPerK = 1.380649e-16   // Boltzmann constant [erg K^-1]
	lightSpeedCmS    = 2.99792458e10  // speed of light [cm s^-1]
)

// Sentinel errors for the radiation-field builders.
var (
	// ErrNonPositiveFrequency indicates nu <= 0.
	ErrNonPositiveFrequency = errors.New("radfield: frequency must be > 0")

	// ErrNonPositiveTemperature indicates t <= 0.
	ErrNonPositiveTemperature = errors.New("radfield: temperature must be > 0")

	// ErrNegativeDilution indicates a dilution factor w < 0.
	ErrNegativeDilution = errors.New("radfield: dilution factor must be >= 0")

	// ErrDimensionMismatch indicates len(w) != len(t) in the table builder.
	ErrDimensionMismatch = errors.New("radfield: dilution/temperature length mismatch")
)

// Operation name constants for unified error wrapping.
const (
	opPlanck = "PlanckIntensity"
	opMean   = "MeanIntensity"
	opTable  = "MeanIntensityTable"
)

// PlanckIntensity returns the Planck specific intensity B_nu(T) in CGS:
//
//	B_nu = (2 h nu^3 / c^2) / (exp(h nu / k T) - 1)
//
// Deep in the Wien tail the exponential overflows to +Inf and the result
// degrades gracefully to 0, never NaN.
//
// Errors: ErrNonPositiveFrequency, ErrNonPositiveTemperature.
// Complexity: O(1).
func PlanckIntensity(nu, t float64) (float64, error) {
	if nu <= 0 {
		return 0, fmt.Errorf("%s: nu=%g: %w", opPlanck, nu, ErrNonPositiveFrequency)
	}
	if t <= 0 {
		return 0, fmt.Errorf("%s: t=%g: %w", opPlanck, t, ErrNonPositiveTemperature)
	}

	x := planckErgS * nu / (boltzmannErgPerK * t)

	return 2.0 * planckErgS * nu * nu * nu / (lightSpeedCmS * lightSpeedCmS) / math.Expm1(x), nil
}

// MeanIntensity returns the dilute-blackbody mean intensity W · B_nu(T).
//
// Errors: ErrNegativeDilution plus everything PlanckIntensity returns.
// Complexity: O(1).
func MeanIntensity(nu, w, t float64) (float64, error) {
	if w < 0 {
		return 0, fmt.Errorf("%s: w=%g: %w", opMean, w, ErrNegativeDilution)
	}
	b, err := PlanckIntensity(nu, t)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opMean, err)
	}

	return w * b, nil
}

// MeanIntensityTable builds the (lines × shells) mean-intensity table the
// engine consumes as JBlues: row i holds W[j] · B_nu(nu[i], T[j]) for every
// shell j.
//
// Inputs:
//   - nu: per-line frequencies [Hz], one row each.
//   - w, t: per-shell dilution factors and radiation temperatures, equal
//     length, one column each.
//
// Errors:
//   - ErrDimensionMismatch when len(w) != len(t);
//   - grid.ErrInvalidDimensions via grid.New on empty inputs;
//   - per-value sentinels from MeanIntensity, fail-fast on the first bad cell.
//
// Complexity: O(lines·shells).
func MeanIntensityTable(nu, w, t []float64) (*grid.Grid, error) {
	if len(w) != len(t) {
		return nil, fmt.Errorf("%s: len(w)=%d, len(t)=%d: %w",
			opTable, len(w), len(t), ErrDimensionMismatch)
	}

	out, err := grid.New(len(nu), len(w))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTable, err)
	}

	for i, f := range nu {
		row := out.Row(i)
		for j := range w {
			row[j], err = MeanIntensity(f, w[j], t[j])
			if err != nil {
				return nil, fmt.Errorf("%s: line %d shell %d: %w", opTable, i, j, err)
			}
		}
	}

	return out, nil
}
