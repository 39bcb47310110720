// Package macroatom is an in-memory toolkit for macro-atom line transfer:
// from Sobolev escape factors to normalized transition-probability tables,
// ready to drive a Monte Carlo radiative-transfer loop.
//
// 🚀 What is macroatom?
//
//	A small, deterministic numerics library that brings together:
//		• Dense tables: row-major (line × shell) float64 grids with strict bounds checks
//		• Level groups: block partitions of the line axis + block-wise reductions
//		• The engine: per-line probability assembly with stimulated-emission
//		  correction and block-wise normalization (transprob)
//		• Escape factors: the three-regime Sobolev escape probability (sobolev)
//		• Radiation field: dilute-blackbody mean intensities per line per shell (radfield)
//		• Snapshots: YAML datasets for fixtures and reproducible scenarios (dataset)
//
// ✨ Why choose macroatom?
//
//   - Deterministic by construction – fixed loop orders, bit-reproducible results
//     for any worker count
//   - Fail-fast contracts – sentinel errors, shape and bounds validation at every
//     public boundary
//   - Hot loops stay hot – flat backing slices and zero-copy row views after
//     validation
//   - Extensible – closed transition-kind enum, functional options, gonum bridge
//     for downstream tooling
//
// Everything is organized under focused subpackages:
//
//	grid/      — dense (line × shell) tables, gonum interop
//	blocks/    — level-group boundaries, block sums & trapezoid integration
//	transprob/ — transition-probability assembly + normalization (THE CORE)
//	sobolev/   — Sobolev escape probability
//	radfield/  — Planck and dilute-blackbody mean intensities
//	dataset/   — YAML snapshots of complete engine input sets
//
// Quick sketch of the pipeline:
//
//	tau ──▶ sobolev.Table ──▶ beta ─┐
//	W,T ──▶ radfield (j_blues) ─────┤──▶ transprob.Compute ──▶ probabilities
//	counts ─▶ blocks.FromCounts ────┘         (normalized per level group)
//
// Dive into the per-package docs for contracts, determinism notes and examples.
//
//	go get github.com/katalvlaran/macroatom
package macroatom
