package blocks_test

import (
	"testing"

	"github.com/katalvlaran/macroatom/blocks"
	"github.com/katalvlaran/macroatom/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSumColumns_HandComputed verifies per-block column sums against a hand
// calculation, including an empty middle block.
func TestSumColumns_HandComputed(t *testing.T) {
	t.Parallel()

	tbl, err := grid.NewFromRows([][]float64{
		{1, 2},
		{3, 4},
		{5, 6},
	})
	require.NoError(t, err)

	refs := blocks.Refs{0, 2, 2, 3} // blocks: rows [0,2), [2,2) empty, [2,3)
	sums, err := blocks.SumColumns(tbl, refs)
	require.NoError(t, err)

	require.Equal(t, 3, sums.Rows())
	require.Equal(t, 2, sums.Cols())
	assert.Equal(t, []float64{4, 6}, sums.Row(0))
	assert.Equal(t, []float64{0, 0}, sums.Row(1), "empty block sums to zero")
	assert.Equal(t, []float64{5, 6}, sums.Row(2))
}

// TestSumColumns_Errors verifies nil-grid and bad-refs propagation.
func TestSumColumns_Errors(t *testing.T) {
	t.Parallel()

	_, err := blocks.SumColumns(nil, blocks.Refs{0, 1})
	assert.ErrorIs(t, err, blocks.ErrNilGrid)

	tbl, err := grid.New(3, 1)
	require.NoError(t, err)
	_, err = blocks.SumColumns(tbl, blocks.Refs{0, 2})
	assert.ErrorIs(t, err, blocks.ErrLastNotTotal)
}

// TestIntegrateColumns_Trapezoid verifies the block trapezoid against hand
// integrals on a non-uniform abscissa.
func TestIntegrateColumns_Trapezoid(t *testing.T) {
	t.Parallel()

	// f(x) = x in the first column, constant 2 in the second.
	f, err := grid.NewFromRows([][]float64{
		{0, 2},
		{1, 2},
		{3, 2},
		{4, 2},
	})
	require.NoError(t, err)
	x := []float64{0, 1, 3, 4}

	refs := blocks.Refs{0, 2, 4} // [x0,x1] and [x2,x3]
	got, err := blocks.IntegrateColumns(f, x, refs)
	require.NoError(t, err)

	// Block 0: ∫x dx over [0,1] = 0.5; ∫2 dx = 2.
	assert.InDelta(t, 0.5, got.Row(0)[0], 1e-15)
	assert.InDelta(t, 2.0, got.Row(0)[1], 1e-15)
	// Block 1: ∫x dx over [3,4] = 3.5; ∫2 dx = 2.
	assert.InDelta(t, 3.5, got.Row(1)[0], 1e-15)
	assert.InDelta(t, 2.0, got.Row(1)[1], 1e-15)
}

// TestIntegrateColumns_DegenerateBlocks verifies that empty and singleton
// blocks integrate to exactly zero.
func TestIntegrateColumns_DegenerateBlocks(t *testing.T) {
	t.Parallel()

	f, err := grid.NewFromRows([][]float64{{5}, {7}, {9}})
	require.NoError(t, err)
	x := []float64{0, 1, 2}

	refs := blocks.Refs{0, 0, 1, 3} // empty, singleton {0}, pair {1,2}
	got, err := blocks.IntegrateColumns(f, x, refs)
	require.NoError(t, err)

	assert.Zero(t, got.Row(0)[0], "empty block")
	assert.Zero(t, got.Row(1)[0], "singleton block has no interval")
	assert.InDelta(t, 8.0, got.Row(2)[0], 1e-15)
}

// TestIntegrateColumns_AbscissaMismatch verifies the ErrAbscissaLength sentinel.
func TestIntegrateColumns_AbscissaMismatch(t *testing.T) {
	t.Parallel()

	f, err := grid.New(3, 1)
	require.NoError(t, err)
	_, err = blocks.IntegrateColumns(f, []float64{0, 1}, blocks.Refs{0, 3})
	assert.ErrorIs(t, err, blocks.ErrAbscissaLength)
}
