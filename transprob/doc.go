// Package transprob computes normalized macro-atom transition probabilities:
// for every spectral line and every spatial shell, the probability that an
// excited macro-atom state decays via that specific transition rather than
// another.
//
// 🚀 What does the engine do?
//
//	One pure routine, two phases, executed over caller-owned tables:
//
//	  Phase 1 (assembly) — for every transition row i and shell column j:
//	    out[i,j] = Coef[i] * Beta[LineIndex[i], j]
//	    and, for radiative-upward transitions (KindInternalUp) only,
//	    out[i,j] *= StimFactor[LineIndex[i], j] * JBlues[LineIndex[i], j]
//	    (the stimulated-emission correction by the local radiation field).
//
//	  Phase 2 (normalization, default on) — within each macro-atom level
//	    group (a contiguous block of rows) and each shell column, rescale
//	    so the probabilities sum to 1. A column whose block total is
//	    exactly zero is left untouched: an all-zero group stays zero
//	    instead of becoming NaN.
//
// ✨ Contract highlights:
//   - stateless and deterministic: identical inputs reproduce identical
//     output bit-for-bit, at any worker count
//   - fail-fast staged validation with sentinel errors; the output buffer
//     is untouched on any validation failure
//   - the output grid is caller-allocated and fully overwritten; no input
//     is ever mutated
//   - NaN/Inf screening is deliberately absent: finite inputs are the
//     caller's precondition, and the hot loop does not pay for it
//
// ⚙️ Usage:
//
//	in := transprob.Inputs{
//	  Coef: coef, Beta: beta, JBlues: j, StimFactor: stim,
//	  Kinds: kinds, LineIndex: lineIdx, Blocks: refs,
//	}
//	out, _ := grid.New(len(coef), beta.Cols())
//	if err := transprob.Compute(in, out); err != nil { ... }
//
//	// unnormalized rates, computed on 4 goroutines:
//	err = transprob.Compute(in, out,
//	  transprob.WithoutNormalization(), transprob.WithWorkers(4))
//
// Performance: O(L·S) time, O(S) scratch per level group; the engine runs
// once per Monte Carlo iteration over millions of (line, shell) pairs, so
// Phase 1 and Phase 2 both operate on raw row slices after validation.
package transprob
