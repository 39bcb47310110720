// SPDX-License-Identifier: MIT

// Package transprob: functional configuration for the engine. This file
// defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package transprob

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultNormalize runs Phase 2 block normalization after assembly.
	// Disable with WithoutNormalization when raw rates are wanted.
	DefaultNormalize = true

	// DefaultWorkers executes both phases serially. Raise with WithWorkers;
	// results are bit-identical at any worker count.
	DefaultWorkers = 1
)

// Options carries the gathered engine configuration. Fields are unexported;
// construct via the With* setters.
type Options struct {
	normalize bool
	workers   int
}

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// WithoutNormalization disables Phase 2: the output holds the raw assembled
// rates, exactly as Phase 1 wrote them.
func WithoutNormalization() Option {
	return func(o *Options) { o.normalize = false }
}

// WithWorkers sets the goroutine count for both phases. n < 1 is a
// configuration error surfaced by Compute as ErrBadWorkers (validated at
// gather time, not here, so option construction never fails).
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// gatherOptions folds opts over the defaults and enforces invariants.
func gatherOptions(opts ...Option) (Options, error) {
	o := Options{normalize: DefaultNormalize, workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		return Options{}, ErrBadWorkers
	}

	return o, nil
}
