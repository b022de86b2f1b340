// Package pack - the stage controller.
//
// Stages run in increasing-complexity order: FixedZero, Discrete90,
// Discrete45, Free. Each stage's best valid result is compared against
// Options.TargetRadius; meeting it short-circuits the cascade. At the end,
// the lowest-R valid result across every attempted stage wins, or - if no
// stage produced a valid result - the lowest-cost infeasible result, with
// Valid=false.
package pack

import (
	"context"
	"math"
)

// defaultCascade is the order Auto mode attempts stages in.
var defaultCascade = []RotationMode{FixedZero, Discrete90, Discrete45, Free}

// runSingleStage runs one DE optimization for FixedZero or Free mode: a
// single run, no permutation fan-out.
func runSingleStage(inst Instance, opts Options, mode RotationMode, masterSeed int64) Result {
	free := mode == Free

	var fixedAngles []float64
	if !free {
		fixedAngles = make([]float64, len(inst.Rectangles))
	}

	b := newBounds(inst, free)
	rng := rngFromSeed(masterSeed)

	e := newDEEngine(inst, free, fixedAngles, b, opts, rng, nil)
	res := e.run()

	return Result{
		Radius:                    res.bestVec[0],
		Valid:                     res.valid,
		Poses:                     posesFromVector(res.bestVec, len(inst.Rectangles), free, fixedAngles),
		StageUsed:                 mode,
		Generations:               res.generations,
		PermutationCountAttempted: 1,
	}
}

// stageSeed derives a per-stage seed from masterSeed so sibling stages in a
// cascade (e.g. Discrete90 and Discrete45 run back to back) never replay the
// same RNG stream under different rotation semantics.
func stageSeed(masterSeed int64, mode RotationMode) int64 {
	base := rngFromSeed(masterSeed)
	return deriveRNG(base, uint64(mode)).Int63()
}

// runStage dispatches to the single-run or permutation-sweep path for
// mode.
func runStage(ctx context.Context, inst Instance, opts Options, mode RotationMode, masterSeed int64) (Result, []string) {
	seed := stageSeed(masterSeed, mode)

	switch mode {
	case FixedZero, Free:
		return runSingleStage(inst, opts, mode, seed), nil
	case Discrete90, Discrete45:
		return runDiscreteStage(ctx, inst, opts, mode, seed)
	default:
		return Result{StageUsed: mode}, nil
	}
}

// runCascade implements Auto mode: attempt each stage in cascadeOrder,
// short-circuiting once a valid result meets opts.TargetRadius, and
// returning the best result seen across all attempted stages.
func runCascade(ctx context.Context, inst Instance, opts Options, cascadeOrder []RotationMode, masterSeed int64) (Result, []string) {
	var (
		best        Result
		haveBest    bool
		bestInfeasC = math.Inf(1)
		allWarnings []string
	)

	var mode RotationMode
	for _, mode = range cascadeOrder {
		stageResult, warnings := runStage(ctx, inst, opts, mode, masterSeed)
		allWarnings = append(allWarnings, warnings...)

		switch {
		case stageResult.Valid && (!haveBest || !best.Valid || stageResult.Radius < best.Radius):
			best = stageResult
			haveBest = true
		case !stageResult.Valid && (!haveBest || !best.Valid):
			// No valid result anywhere yet: keep the least-bad infeasible
			// candidate.
			c := infeasibleCostOf(stageResult, inst)
			if !haveBest || c < bestInfeasC {
				best = stageResult
				haveBest = true
				bestInfeasC = c
			}
		}

		if best.Valid && opts.TargetRadius > 0 && best.Radius <= opts.TargetRadius {
			break
		}
	}

	// StageUsed reports the stage the cascade ended on: the one that met
	// the target radius, or the last one attempted.
	if haveBest {
		best.StageUsed = mode
	}

	return best, allWarnings
}

// infeasibleCostOf re-derives an infeasible stage result's penalty cost so
// cascade stages can be ranked even when none produced a valid layout.
func infeasibleCostOf(r Result, inst Instance) float64 {
	n := len(r.Poses)
	if n == 0 {
		return math.Inf(1)
	}

	x := make([]float64, 1+2*n)
	angles := make([]float64, n)
	x[0] = r.Radius
	var i int
	for i = 0; i < n; i++ {
		x[1+2*i] = r.Poses[i].CX
		x[1+2*i+1] = r.Poses[i].CY
		angles[i] = r.Poses[i].Theta
	}

	return evaluate(x, inst, false, angles)
}
