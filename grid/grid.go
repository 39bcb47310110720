// SPDX-License-Identifier: MIT
// Package grid: the Grid type and its accessors.
// Grid is a concrete, row-major float64 table storing elements in a flat
// slice for performance and cache friendliness. It is the representation of
// every 2-D array in the macroatom module.

package grid

import (
	"fmt"
	"strings"
)

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a row-major table of float64 values.
// rows and cols are the dimensions; data holds rows*cols elements in
// row-major order.
type Grid struct {
	rows, cols int       // number of rows and columns
	data       []float64 // flat backing storage, length == rows*cols
}

// New creates a rows×cols Grid initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Grid or ErrInvalidDimensions.
// Complexity: O(rows*cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	// Allocate and return
	return &Grid{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewFromRows creates a Grid from a slice of equal-length rows, copying
// every element.
// Stage 1 (Validate): non-empty outer slice, non-empty first row, all rows
// the same length (ErrInvalidDimensions / ErrRaggedRows).
// Stage 2 (Execute): copy rows into flat storage.
// Complexity: O(rows*cols) time and memory.
func NewFromRows(rows [][]float64) (*Grid, error) {
	// Validate outer shape
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	cols := len(rows[0])

	// Validate row lengths before any allocation-visible work
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cols, want %d: %w",
				i, len(rows[i]), cols, ErrRaggedRows)
		}
	}

	// Copy into flat storage
	g := &Grid{rows: len(rows), cols: cols, data: make([]float64, len(rows)*cols)}
	for i, r := range rows {
		copy(g.data[i*cols:(i+1)*cols], r)
	}

	return g, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns. Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (g *Grid) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= g.rows {
		return 0, gridErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate column index
	if col < 0 || col >= g.cols {
		return 0, gridErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	return row*g.cols + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (g *Grid) At(row, col int) (float64, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return g.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (g *Grid) Set(row, col int, v float64) error {
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Row returns the row-th row as a zero-copy subslice of the backing storage.
// Mutating the returned slice mutates the Grid. Row panics when row is out
// of range: it exists for validated hot loops only, in the manner of gonum's
// raw row views. Boundary code must use At/Set instead.
// Complexity: O(1).
func (g *Grid) Row(row int) []float64 {
	if row < 0 || row >= g.rows {
		panic(fmt.Sprintf("grid: Row(%d) out of range [0,%d)", row, g.rows))
	}

	return g.data[row*g.cols : (row+1)*g.cols]
}

// Data returns the flat row-major backing slice itself (no copy).
// The caller shares storage with the Grid; len(Data()) == Rows()*Cols().
// Complexity: O(1).
func (g *Grid) Data() []float64 { return g.data }

// Fill assigns v to every cell. Complexity: O(rows*cols).
func (g *Grid) Fill(v float64) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clone returns a deep copy of the Grid.
// Complexity: O(rows*cols) time and memory.
func (g *Grid) Clone() *Grid {
	cp := make([]float64, len(g.data))
	copy(cp, g.data)

	return &Grid{rows: g.rows, cols: g.cols, data: cp}
}

// Equal reports whether g and other have identical shape and bitwise-equal
// cells (exact float64 comparison; shape checked first).
// Complexity: O(rows*cols).
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, v := range g.data {
		if v != other.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(rows*cols) for string construction.
func (g *Grid) String() string {
	var b strings.Builder
	for i := 0; i < g.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < g.cols; j++ {
			fmt.Fprintf(&b, "%g", g.data[i*g.cols+j])
			if j < g.cols-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
