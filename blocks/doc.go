// Package blocks partitions the line axis of macroatom tables into
// contiguous row ranges ("level groups") and provides block-wise reductions
// over them.
//
// 🚀 What is a block?
//
//	A macro-atom level group owns a contiguous run of transition rows.
//	Refs encodes the partition as B+1 ascending boundaries:
//	group k owns rows [Refs[k], Refs[k+1]). The first boundary is 0, the
//	last equals the total row count, and equal consecutive boundaries
//	denote legal empty groups. This is exactly the convention the
//	transition-probability engine consumes for its normalization phase.
//
// ✨ Provided operations:
//   - FromCounts — build boundaries from per-group transition counts
//   - Validate   — check the boundary invariants against a row total
//   - SumColumns — per-block per-column sums of a table
//   - IntegrateColumns — per-block per-column trapezoid integration over
//     an abscissa array (the continuum-estimator reduction)
//
// Determinism: every reduction accumulates in fixed ascending row order,
// so results are bit-identical across runs.
package blocks
