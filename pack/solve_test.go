// Package pack_test exercises Solve end-to-end against the concrete
// scenarios a rectangle-packing engine must satisfy: external _test
// package, small local instance constructors, table-driven where the
// scenarios share shape, testify/require for assertions.
package pack_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gopacklab/packcircle/pack"
)

func squareInstance(n int, side, outerPad, innerPad float64) pack.Instance {
	rects := make([]pack.Rectangle, n)
	var i int
	for i = 0; i < n; i++ {
		rects[i] = pack.Rectangle{W: side, H: side}
	}

	return pack.Instance{Rectangles: rects, OuterPad: outerPad, InnerPad: innerPad}
}

// Scenario 1: two 10x10 squares, FIXED_0, P_out=0, P_in=0.
func TestSolve_TwoSquares_FixedZero(t *testing.T) {
	t.Parallel()

	inst := squareInstance(2, 10, 0, 0)
	opts := pack.DefaultOptions()
	opts.RotationMode = pack.FixedZero
	opts.Seed = 42

	res, err := pack.Solve(inst, opts)
	require.NoError(t, err)
	require.True(t, res.Valid)
	require.LessOrEqual(t, res.Radius, 11.2)
	require.Len(t, res.Poses, 2)
	require.Equal(t, pack.FixedZero, res.StageUsed)
}

// Scenario 2: one 20x10 rectangle, P_out=1, FIXED_0.
func TestSolve_SingleRectangle_FixedZero(t *testing.T) {
	t.Parallel()

	inst := pack.Instance{
		Rectangles: []pack.Rectangle{{W: 20, H: 10}},
		OuterPad:   1,
	}
	opts := pack.DefaultOptions()
	opts.RotationMode = pack.FixedZero
	opts.Seed = 7

	res, err := pack.Solve(inst, opts)
	require.NoError(t, err)
	require.True(t, res.Valid)

	want := math.Hypot(10, 5) + 1
	require.InEpsilon(t, want, res.Radius, 0.02)
	require.Len(t, res.Poses, 1)
	require.InDelta(t, 0, res.Poses[0].CX, 1e-6)
	require.InDelta(t, 0, res.Poses[0].CY, 1e-6)
}

// Scenario 3: four 10x10 squares, DISCRETE_90.
func TestSolve_FourSquares_Discrete90(t *testing.T) {
	t.Parallel()

	inst := squareInstance(4, 10, 0, 0)
	opts := pack.DefaultOptions()
	opts.RotationMode = pack.Discrete90
	opts.Seed = 11

	res, err := pack.Solve(inst, opts)
	require.NoError(t, err)
	require.True(t, res.Valid)
	require.LessOrEqual(t, res.Radius, 14.15)
	require.Equal(t, 16, res.PermutationCountAttempted) // 2^4
}

// Scenario 4: three mixed rectangles, AUTO.
func TestSolve_MixedRectangles_Auto(t *testing.T) {
	t.Parallel()

	inst := pack.Instance{
		Rectangles: []pack.Rectangle{{W: 20, H: 10}, {W: 10, H: 20}, {W: 15, H: 15}},
		OuterPad:   0.5,
		InnerPad:   0.5,
	}
	opts := pack.DefaultOptions()
	opts.RotationMode = pack.Auto
	opts.Seed = 99

	res, err := pack.Solve(inst, opts)
	require.NoError(t, err)
	require.True(t, res.Valid)
	require.False(t, math.IsInf(res.Radius, 1))
	require.Len(t, res.Poses, 3)
}

// Scenario 5: one 5x5 rectangle, FREE.
func TestSolve_SingleRectangle_Free(t *testing.T) {
	t.Parallel()

	inst := pack.Instance{Rectangles: []pack.Rectangle{{W: 5, H: 5}}}
	opts := pack.DefaultOptions()
	opts.RotationMode = pack.Free
	opts.Seed = 3

	res, err := pack.Solve(inst, opts)
	require.NoError(t, err)
	require.True(t, res.Valid)
	require.InEpsilon(t, math.Hypot(5, 5)/2, res.Radius, 0.02)
}

// Scenario 6: infeasible target radius cascades through every stage.
func TestSolve_InfeasibleTarget_CascadesToFinalStage(t *testing.T) {
	t.Parallel()

	inst := squareInstance(2, 10, 0, 0)
	opts := pack.DefaultOptions()
	opts.RotationMode = pack.Auto
	opts.TargetRadius = 1
	opts.Seed = 5

	res, err := pack.Solve(inst, opts)
	require.NoError(t, err)
	require.Greater(t, res.Radius, 1.0)
	require.Equal(t, pack.Free, res.StageUsed)
}

// Target radius already met by FIXED_0: no later stage runs.
func TestSolve_TargetMetByFixedZero_ShortCircuits(t *testing.T) {
	t.Parallel()

	inst := squareInstance(2, 10, 0, 0)
	opts := pack.DefaultOptions()
	opts.RotationMode = pack.Auto
	opts.TargetRadius = 20 // comfortably above FIXED_0's ~11.2 result
	opts.Seed = 42

	res, err := pack.Solve(inst, opts)
	require.NoError(t, err)
	require.True(t, res.Valid)
	require.Equal(t, pack.FixedZero, res.StageUsed)
}

func TestSolve_Deterministic_SameSeedSameResult(t *testing.T) {
	t.Parallel()

	inst := squareInstance(4, 10, 0, 0)
	opts := pack.DefaultOptions()
	opts.RotationMode = pack.Discrete90
	opts.Seed = 123

	r1, err := pack.Solve(inst, opts)
	require.NoError(t, err)
	r2, err := pack.Solve(inst, opts)
	require.NoError(t, err)

	require.Equal(t, r1.Radius, r2.Radius)
	require.Equal(t, r1.Valid, r2.Valid)
	require.Equal(t, r1.Poses, r2.Poses)
}

func TestSolve_PermutationCounts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode pack.RotationMode
		n    int
		want int
	}{
		{pack.FixedZero, 5, 1},
		{pack.Free, 5, 1},
		{pack.Discrete90, 3, 8},
		{pack.Discrete45, 3, 64},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.mode.String(), func(t *testing.T) {
			t.Parallel()

			inst := squareInstance(tc.n, 5, 0, 0)
			opts := pack.DefaultOptions()
			opts.RotationMode = tc.mode
			opts.Seed = 1
			opts.MaxGenerations = 5 // permutation count is what we're checking, not quality

			res, err := pack.Solve(inst, opts)
			require.NoError(t, err)
			require.Equal(t, tc.want, res.PermutationCountAttempted)
		})
	}
}

func TestSolve_InvalidInstance_RejectedBeforeOptimizing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		inst pack.Instance
		want error
	}{
		{"empty", pack.Instance{}, pack.ErrEmptyRectangleSet},
		{"zero width", pack.Instance{Rectangles: []pack.Rectangle{{W: 0, H: 5}}}, pack.ErrNonPositiveDimension},
		{"negative height", pack.Instance{Rectangles: []pack.Rectangle{{W: 5, H: -1}}}, pack.ErrNonPositiveDimension},
		{
			"negative padding",
			pack.Instance{Rectangles: []pack.Rectangle{{W: 5, H: 5}}, OuterPad: -1},
			pack.ErrNegativePadding,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := pack.Solve(tc.inst, pack.DefaultOptions())
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSolve_InvalidOptions_RejectedBeforeOptimizing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts func() pack.Options
		want error
	}{
		{"bad rotation mode", func() pack.Options {
			opts := pack.DefaultOptions()
			opts.RotationMode = pack.RotationMode(99)
			return opts
		}, pack.ErrUnsupportedRotationMode},
		{"F out of range", func() pack.Options {
			opts := pack.DefaultOptions()
			opts.F = 3
			return opts
		}, pack.ErrInvalidMutationFactor},
		{"CR out of range", func() pack.Options {
			opts := pack.DefaultOptions()
			opts.CR = 1.5
			return opts
		}, pack.ErrInvalidCrossoverRate},
		{"negative population size", func() pack.Options {
			opts := pack.DefaultOptions()
			opts.PopulationSize = -1
			return opts
		}, pack.ErrInvalidPopulationSize},
		{"population size too small for best/1/bin donors", func() pack.Options {
			opts := pack.DefaultOptions()
			opts.PopulationSize = 3
			return opts
		}, pack.ErrInvalidPopulationSize},
	}

	inst := squareInstance(2, 10, 0, 0)

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := pack.Solve(inst, tc.opts())
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSolve_AutoRadiusNeverWorseThanFixedZero(t *testing.T) {
	t.Parallel()

	inst := squareInstance(3, 8, 0.2, 0.2)

	fixedOpts := pack.DefaultOptions()
	fixedOpts.RotationMode = pack.FixedZero
	fixedOpts.Seed = 17
	fixedRes, err := pack.Solve(inst, fixedOpts)
	require.NoError(t, err)
	require.True(t, fixedRes.Valid)

	autoOpts := pack.DefaultOptions()
	autoOpts.RotationMode = pack.Auto
	autoOpts.Seed = 17
	autoRes, err := pack.Solve(inst, autoOpts)
	require.NoError(t, err)
	require.True(t, autoRes.Valid)

	require.LessOrEqual(t, autoRes.Radius, fixedRes.Radius+1e-9)
}

func TestSolve_ProgressSinkCalledForDiscreteStage(t *testing.T) {
	t.Parallel()

	inst := squareInstance(3, 5, 0, 0)
	opts := pack.DefaultOptions()
	opts.RotationMode = pack.Discrete90
	opts.Seed = 1

	var calls int
	var lastCompleted, lastTotal int
	opts.ProgressSink = func(completed, total int, bestValidRadius *float64) {
		calls++
		lastCompleted, lastTotal = completed, total
	}

	_, err := pack.Solve(inst, opts)
	require.NoError(t, err)
	require.Equal(t, 8, calls) // 2^3 permutations, one event each
	require.Equal(t, 8, lastCompleted)
	require.Equal(t, 8, lastTotal)
}

func TestSolve_SequentialMatchesParallelPermutationCount(t *testing.T) {
	t.Parallel()

	inst := squareInstance(3, 5, 0, 0)

	seqOpts := pack.DefaultOptions()
	seqOpts.RotationMode = pack.Discrete90
	seqOpts.Parallel = false
	seqOpts.Seed = 9

	res, err := pack.Solve(inst, seqOpts)
	require.NoError(t, err)
	require.Equal(t, 8, res.PermutationCountAttempted)
	require.True(t, res.Valid)
}
