package transprob_test

import (
	"testing"

	"github.com/katalvlaran/macroatom/blocks"
	"github.com/katalvlaran/macroatom/grid"
	"github.com/katalvlaran/macroatom/transprob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sumTol = 1e-10

// mustGrid builds a Grid from row literals, failing the test on error.
func mustGrid(t *testing.T, rows [][]float64) *grid.Grid {
	t.Helper()
	g, err := grid.NewFromRows(rows)
	require.NoError(t, err)

	return g
}

// mustOut allocates an L×S output table.
func mustOut(t *testing.T, l, s int) *grid.Grid {
	t.Helper()
	g, err := grid.New(l, s)
	require.NoError(t, err)

	return g
}

// referenceInputs builds a 5-transition, 2-shell scenario exercising every
// kind, a shared physical line, and two level groups.
//
// Physical lines (P=4, S=2):
//
//	beta         jblues       stim
//	[0.5 0.25]   [2.0 4.0]    [1.0  0.5]
//	[1.0 1.0 ]   [1.0 3.0]    [0.8  1.0]
//	[0.2 0.4 ]   [5.0 1.0]    [1.0  1.0]
//	[0.1 0.9 ]   [2.0 2.0]    [0.5  0.5]
//
// Transitions (L=5): rows 3 and 4 share physical line 3.
func referenceInputs(t *testing.T) transprob.Inputs {
	t.Helper()

	return transprob.Inputs{
		Coef: []float64{2.0, 3.0, 1.0, 4.0, 0.5},
		Beta: mustGrid(t, [][]float64{
			{0.5, 0.25},
			{1.0, 1.0},
			{0.2, 0.4},
			{0.1, 0.9},
		}),
		JBlues: mustGrid(t, [][]float64{
			{2.0, 4.0},
			{1.0, 3.0},
			{5.0, 1.0},
			{2.0, 2.0},
		}),
		StimFactor: mustGrid(t, [][]float64{
			{1.0, 0.5},
			{0.8, 1.0},
			{1.0, 1.0},
			{0.5, 0.5},
		}),
		Kinds: []transprob.Kind{
			transprob.KindInternalDown,
			transprob.KindInternalUp,
			transprob.KindEmission,
			transprob.KindInternalUp,
			transprob.KindEmission,
		},
		LineIndex: []int{0, 1, 2, 3, 3},
		Blocks:    blocks.Refs{0, 3, 5},
	}
}

// referenceAssembly recomputes Phase 1 cell by cell through the public At
// accessor, in the engine's operand order, so exact equality is meaningful.
func referenceAssembly(t *testing.T, in transprob.Inputs) [][]float64 {
	t.Helper()

	want := make([][]float64, len(in.Coef))
	for i := range in.Coef {
		r := in.LineIndex[i]
		want[i] = make([]float64, in.Beta.Cols())
		for j := range want[i] {
			beta, err := in.Beta.At(r, j)
			require.NoError(t, err)
			want[i][j] = in.Coef[i] * beta
			if in.Kinds[i] == transprob.KindInternalUp {
				stim, err := in.StimFactor.At(r, j)
				require.NoError(t, err)
				jb, err := in.JBlues.At(r, j)
				require.NoError(t, err)
				want[i][j] = in.Coef[i] * beta * stim * jb
			}
		}
	}

	return want
}

// TestCompute_WorkedExample pins the engine to the canonical two-transition,
// one-shell scenario: the normalized output must be [[0.4],[0.6]].
func TestCompute_WorkedExample(t *testing.T) {
	t.Parallel()

	in := transprob.Inputs{
		Coef:       []float64{2.0, 3.0},
		Beta:       mustGrid(t, [][]float64{{1.0}, {1.0}}),
		JBlues:     mustGrid(t, [][]float64{{1.0}, {2.0}}),
		StimFactor: mustGrid(t, [][]float64{{1.0}, {0.5}}),
		Kinds:      []transprob.Kind{transprob.KindInternalDown, transprob.KindInternalUp},
		LineIndex:  []int{0, 1},
		Blocks:     blocks.Refs{0, 2},
	}
	out := mustOut(t, 2, 1)

	require.NoError(t, transprob.Compute(in, out))
	assert.InDelta(t, 0.4, out.Row(0)[0], sumTol)
	assert.InDelta(t, 0.6, out.Row(1)[0], sumTol)
}

// TestCompute_Passthrough verifies that WithoutNormalization yields exactly
// the Phase 1 assembly: the bare coefficient·beta product, with the
// stimulated-emission correction multiplied in only on KindInternalUp rows.
func TestCompute_Passthrough(t *testing.T) {
	t.Parallel()

	in := referenceInputs(t)
	out := mustOut(t, 5, 2)

	require.NoError(t, transprob.Compute(in, out, transprob.WithoutNormalization()))

	want := referenceAssembly(t, in)
	for i := range want {
		for j := range want[i] {
			assert.Equal(t, want[i][j], out.Row(i)[j], "cell (%d,%d)", i, j)
		}
	}
}

// TestCompute_NormalizedBlockSums verifies that every (block, column) pair
// sums to 1 after a default Compute.
func TestCompute_NormalizedBlockSums(t *testing.T) {
	t.Parallel()

	in := referenceInputs(t)
	out := mustOut(t, 5, 2)
	require.NoError(t, transprob.Compute(in, out))

	sums, err := blocks.SumColumns(out, in.Blocks)
	require.NoError(t, err)
	for k := 0; k < sums.Rows(); k++ {
		for c, v := range sums.Row(k) {
			assert.InDelta(t, 1.0, v, sumTol, "block %d column %d", k, c)
		}
	}
}

// TestCompute_NormalizationPreservesRatios verifies that within a block and
// column, normalization preserves the Phase 1 ratios.
func TestCompute_NormalizationPreservesRatios(t *testing.T) {
	t.Parallel()

	in := referenceInputs(t)
	raw := mustOut(t, 5, 2)
	norm := mustOut(t, 5, 2)
	require.NoError(t, transprob.Compute(in, raw, transprob.WithoutNormalization()))
	require.NoError(t, transprob.Compute(in, norm))

	// Rows 0 and 2 share block 0: their ratio must survive normalization.
	for c := 0; c < 2; c++ {
		wantRatio := raw.Row(0)[c] / raw.Row(2)[c]
		gotRatio := norm.Row(0)[c] / norm.Row(2)[c]
		assert.InDelta(t, wantRatio, gotRatio, sumTol, "column %d", c)
	}
}

// TestCompute_ZeroBlockStaysZero verifies the zero-total policy: a level
// group whose every rate is zero stays exactly zero (no NaN) while other
// groups still normalize to one.
func TestCompute_ZeroBlockStaysZero(t *testing.T) {
	t.Parallel()

	in := referenceInputs(t)
	in.Coef = []float64{2.0, 3.0, 1.0, 0.0, 0.0} // second group all-zero
	out := mustOut(t, 5, 2)
	require.NoError(t, transprob.Compute(in, out))

	for _, i := range []int{3, 4} {
		for c, v := range out.Row(i) {
			assert.Zero(t, v, "row %d column %d must stay exactly zero", i, c)
		}
	}
	for c := 0; c < 2; c++ {
		total := out.Row(0)[c] + out.Row(1)[c] + out.Row(2)[c]
		assert.InDelta(t, 1.0, total, sumTol, "first group still sums to one")
	}
}

// TestCompute_EmptyBlockNoOp verifies that an empty block neither errors nor
// perturbs its neighbors' totals.
func TestCompute_EmptyBlockNoOp(t *testing.T) {
	t.Parallel()

	in := referenceInputs(t)
	in.Blocks = blocks.Refs{0, 3, 3, 5} // empty block between the two groups
	out := mustOut(t, 5, 2)
	require.NoError(t, transprob.Compute(in, out))

	sums, err := blocks.SumColumns(out, blocks.Refs{0, 3, 5})
	require.NoError(t, err)
	for k := 0; k < sums.Rows(); k++ {
		for c, v := range sums.Row(k) {
			assert.InDelta(t, 1.0, v, sumTol, "block %d column %d", k, c)
		}
	}
}

// TestCompute_WorkersBitIdentical verifies that parallel execution
// reproduces the serial result bit-for-bit for several worker counts,
// with and without normalization.
func TestCompute_WorkersBitIdentical(t *testing.T) {
	t.Parallel()

	in := referenceInputs(t)

	serial := mustOut(t, 5, 2)
	require.NoError(t, transprob.Compute(in, serial))
	serialRaw := mustOut(t, 5, 2)
	require.NoError(t, transprob.Compute(in, serialRaw, transprob.WithoutNormalization()))

	for _, n := range []int{2, 3, 8} {
		par := mustOut(t, 5, 2)
		require.NoError(t, transprob.Compute(in, par, transprob.WithWorkers(n)))
		assert.Equal(t, serial.Data(), par.Data(), "workers=%d normalized", n)

		parRaw := mustOut(t, 5, 2)
		require.NoError(t, transprob.Compute(in, parRaw,
			transprob.WithWorkers(n), transprob.WithoutNormalization()))
		assert.Equal(t, serialRaw.Data(), parRaw.Data(), "workers=%d raw", n)
	}
}

// TestCompute_BadWorkers verifies the ErrBadWorkers sentinel for n < 1.
func TestCompute_BadWorkers(t *testing.T) {
	t.Parallel()

	in := referenceInputs(t)
	out := mustOut(t, 5, 2)
	err := transprob.Compute(in, out, transprob.WithWorkers(0))
	assert.ErrorIs(t, err, transprob.ErrBadWorkers)
}

// TestCompute_Rerun verifies that re-running with identical inputs
// reproduces identical output bit-for-bit.
func TestCompute_Rerun(t *testing.T) {
	t.Parallel()

	in := referenceInputs(t)
	first := mustOut(t, 5, 2)
	second := mustOut(t, 5, 2)
	require.NoError(t, transprob.Compute(in, first))
	require.NoError(t, transprob.Compute(in, second))
	assert.Equal(t, first.Data(), second.Data())
}
