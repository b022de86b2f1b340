// Package pack - Differential Evolution engine.
//
// deEngine holds all search state in one struct (configuration, population,
// best record, step counter) rather than threading them through closures:
// dependencies stay explicit, the hot loop reads fields instead of captured
// variables, and testing a single run in isolation is straightforward.
//
// Strategy: best/1/bin. Termination: max generations, population cost
// spread below tolerance, or an external stop predicate, checked once per
// generation rather than per trial.
package pack

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// engineState is the DE run's state machine.
type engineState int

const (
	stateInit engineState = iota
	stateEvolving
	stateConverged
	stateExhausted
	stateStopped
)

// deEngine runs one Differential Evolution optimization to completion.
type deEngine struct {
	// Configuration / policy.
	inst        Instance
	free        bool
	fixedAngles []float64 // nil when free
	b           bounds
	f           float64
	cr          float64
	maxGen      int
	convTol     float64
	rng         *rand.Rand
	stop        func() bool // external stop predicate, checked once per generation

	// targetRadius, if > 0, ends the run as soon as the best record is
	// valid and its radius is <= targetRadius: an early-stop condition
	// wired directly into the engine since it needs the engine's own best
	// record.
	targetRadius float64

	// Population: pop[i] is a state vector, costs[i] its cached cost.
	pop   [][]float64
	costs []float64

	// Best record.
	bestVec   []float64
	bestCost  float64
	bestValid bool
	bestGen   int

	generation int
	state      engineState
}

// deResult is what a completed DE run reports.
type deResult struct {
	bestVec     []float64
	bestCost    float64
	valid       bool
	generations int
}

// newDEEngine builds an engine ready to Run, seeding its population
// uniformly within b via rng.
func newDEEngine(inst Instance, free bool, fixedAngles []float64, b bounds, opts Options, rng *rand.Rand, stop func() bool) *deEngine {
	popSize := opts.PopulationSize
	if popSize <= 0 {
		popSize = popSizeFor(b.dim)
	}

	e := &deEngine{
		inst:         inst,
		free:         free,
		fixedAngles:  fixedAngles,
		b:            b,
		f:            opts.F,
		cr:           opts.CR,
		maxGen:       opts.MaxGenerations,
		convTol:      DefaultConvergenceTol,
		rng:          rng,
		stop:         stop,
		targetRadius: opts.TargetRadius,
		pop:          make([][]float64, popSize),
		costs:        make([]float64, popSize),
		state:        stateInit,
		bestCost:     math.Inf(1),
	}

	var i, j int
	for i = 0; i < popSize; i++ {
		v := make([]float64, b.dim)
		for j = 0; j < b.dim; j++ {
			v[j] = distuv.Uniform{Min: b.low[j], Max: b.high[j], Src: rng}.Rand()
		}
		e.pop[i] = v
		e.costs[i] = e.evalState(v)
	}

	e.refreshBest()

	return e
}

// popSizeFor derives the default population size M = max(5*dim, 15).
func popSizeFor(dim int) int {
	m := 5 * dim
	if m < 15 {
		m = 15
	}

	return m
}

func (e *deEngine) evalState(x []float64) float64 {
	return evaluate(x, e.inst, e.free, e.fixedAngles)
}

// refreshBest scans the full population for a new incumbent. Only called
// at init and after generations where a replacement might have beaten the
// current best (every generation, in practice - selection is cheap enough
// not to special-case this).
func (e *deEngine) refreshBest() {
	var i int
	for i = 0; i < len(e.pop); i++ {
		if e.costs[i] < e.bestCost {
			e.bestCost = e.costs[i]
			e.bestVec = append([]float64(nil), e.pop[i]...)
			e.bestGen = e.generation
		}
	}
	e.bestValid = e.bestVec != nil && isValid(e.bestVec, e.inst, e.free, e.fixedAngles)
}

// bestIndex returns the index of the lowest-cost population member.
func (e *deEngine) bestIndex() int {
	best := 0
	var i int
	for i = 1; i < len(e.pop); i++ {
		if e.costs[i] < e.costs[best] {
			best = i
		}
	}

	return best
}

// pickDistinct draws two indices distinct from each other, from i, and
// from exclude (the best index, already used as the mutation base).
func (e *deEngine) pickDistinct(i, exclude int) (int, int) {
	n := len(e.pop)
	var r1, r2 int
	for {
		r1 = e.rng.Intn(n)
		if r1 != i && r1 != exclude {
			break
		}
	}
	for {
		r2 = e.rng.Intn(n)
		if r2 != i && r2 != exclude && r2 != r1 {
			break
		}
	}

	return r1, r2
}

// mutateAndCross produces one trial vector u for target index i using
// best/1/bin: v = xBest + F*(x_r1 - x_r2), then binomial crossover against
// x_i with mandatory inheritance at j_rand.
func (e *deEngine) mutateAndCross(i, bestIdx int) []float64 {
	r1, r2 := e.pickDistinct(i, bestIdx)
	xBest := e.pop[bestIdx]
	xr1 := e.pop[r1]
	xr2 := e.pop[r2]
	target := e.pop[i]

	dim := e.b.dim
	u := make([]float64, dim)
	jRand := e.rng.Intn(dim)

	var j int
	var v float64
	for j = 0; j < dim; j++ {
		v = xBest[j] + e.f*(xr1[j]-xr2[j])
		v = e.repair(v, j)

		if j == jRand || e.rng.Float64() <= e.cr {
			u[j] = v
		} else {
			u[j] = target[j]
		}
	}

	return u
}

// repair brings value v for dimension j back inside bounds: angular
// dimensions wrap modulo pi, everything else reflects off the violated
// boundary.
func (e *deEngine) repair(v float64, j int) float64 {
	low, high := e.b.low[j], e.b.high[j]

	if e.b.isAngle[j] {
		span := high - low // == pi
		m := math.Mod(v-low, span)
		if m < 0 {
			m += span
		}

		return low + m
	}

	span := high - low
	if span <= 0 {
		return low
	}
	for v < low || v > high {
		if v < low {
			v = low + (low - v)
		}
		if v > high {
			v = high - (v - high)
		}
	}

	return v
}

// spreadBelowTolerance reports whether the population's cost spread
// (max-min) has fallen below convTol relative to max(|bestCost|, 1).
func (e *deEngine) spreadBelowTolerance() bool {
	minC, maxC := floats.Min(e.costs), floats.Max(e.costs)
	spread := maxC - minC

	denom := math.Abs(e.bestCost)
	if denom < 1 {
		denom = 1
	}

	return spread/denom < e.convTol
}

// run evolves the population until a termination condition fires, then
// returns the best vector observed.
func (e *deEngine) run() deResult {
	e.state = stateEvolving

	for {
		if e.maxGen > 0 && e.generation >= e.maxGen {
			e.state = stateExhausted
			break
		}
		if e.stop != nil && e.stop() {
			e.state = stateStopped
			break
		}
		if e.targetRadius > 0 && e.bestValid && e.bestVec[0] <= e.targetRadius {
			e.state = stateStopped
			break
		}
		if e.spreadBelowTolerance() {
			e.state = stateConverged
			break
		}

		bestIdx := e.bestIndex()

		var i int
		for i = 0; i < len(e.pop); i++ {
			u := e.mutateAndCross(i, bestIdx)
			cu := e.evalState(u)
			if cu <= e.costs[i] {
				e.pop[i] = u
				e.costs[i] = cu
			}
		}

		e.generation++
		e.refreshBest()
	}

	return deResult{
		bestVec:     e.bestVec,
		bestCost:    e.bestCost,
		valid:       e.bestValid,
		generations: e.generation,
	}
}
