// Package grid provides the dense numeric table used throughout macroatom:
// a row-major (lines × shells) float64 matrix with bounds-checked access
// and zero-copy row views for validated hot loops.
//
// 🚀 Why a dedicated table type?
//
//	Every array the transition-probability engine touches is a flat,
//	fixed-shape table: beta-Sobolev factors, mean intensities,
//	stimulated-emission corrections, and the output probabilities all
//	share the same (rows × cols) layout. Grid gives them one concrete
//	representation:
//	  • flat []float64 backing storage — cache friendly, no row pointers
//	  • At/Set with sentinel errors — safe boundary access
//	  • Row/Data views — raw-slice speed once shapes are validated
//	  • Dense/FromDense — copying bridge to gonum.org/v1/gonum/mat
//
// ⚙️ Usage:
//
//	t, err := grid.New(lines, shells)
//	if err != nil { ... }
//	row := t.Row(0)        // zero-copy; panics on bad row index
//	d := t.Dense()         // independent *mat.Dense copy for gonum tooling
//
// Determinism: Grid has no hidden state and no concurrency of its own;
// aliasing rules for Row and Data are documented on the methods.
package grid
