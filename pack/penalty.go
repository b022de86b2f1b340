package pack

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/gopacklab/packcircle/geometry"
)

// Penalty weights. These are calibration, not contract: the contract is
// that any feasibility violation dominates legitimate R values within the
// search bounds, which these reference magnitudes satisfy for any instance
// within this engine's expected scale.
const (
	weightContainment = 1e3
	weightOverlap     = 1e4
)

// evaluate computes the scalar cost of state vector x for inst:
//
//	cost = R + sum_i sum_k Wc*max(0,e_ik)^2 + sum_{i<j} Wo*p(i,j)^2
//
// fixedAngles is nil in Free mode (angles live in x); otherwise it must
// have length n and supplies the permutation's per-rectangle angle.
//
// evaluate is a pure function: no side effects, safe to call concurrently
// from many goroutines as long as they don't share x.
func evaluate(x []float64, inst Instance, free bool, fixedAngles []float64) float64 {
	n := len(inst.Rectangles)
	r := x[0]

	type pose struct{ cx, cy, theta float64 }
	poses := make([]pose, n)

	var i int
	if free {
		for i = 0; i < n; i++ {
			base := 1 + 3*i
			poses[i] = pose{cx: x[base], cy: x[base+1], theta: x[base+2]}
		}
	} else {
		for i = 0; i < n; i++ {
			base := 1 + 2*i
			poses[i] = pose{cx: x[base], cy: x[base+1], theta: fixedAngles[i]}
		}
	}

	containmentSq := make([]float64, 0, n*4)
	var j, k int
	var corners [4]geometry.Point
	var e float64
	for i = 0; i < n; i++ {
		corners = geometry.Corners(inst.Rectangles[i].W, inst.Rectangles[i].H, poses[i].cx, poses[i].cy, poses[i].theta)
		for k = 0; k < 4; k++ {
			e = geometry.ContainmentExcess(corners[k], r, inst.OuterPad)
			if e > 0 {
				containmentSq = append(containmentSq, e*e)
			}
		}
	}

	overlapSq := make([]float64, 0, n*(n-1)/2)
	var p float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			p = geometry.SATPenetration(
				inst.Rectangles[i].W, inst.Rectangles[i].H, poses[i].cx, poses[i].cy, poses[i].theta,
				inst.Rectangles[j].W, inst.Rectangles[j].H, poses[j].cx, poses[j].cy, poses[j].theta,
				inst.InnerPad,
			)
			if p > 0 {
				overlapSq = append(overlapSq, p*p)
			}
		}
	}

	cost := r + weightContainment*floats.Sum(containmentSq) + weightOverlap*floats.Sum(overlapSq)

	if math.IsNaN(cost) {
		return math.Inf(1)
	}

	return cost
}

// isValid reports whether state vector x is feasible for inst: its cost
// evaluate(x) is at most r + 1e-9, so weighted squared violations summing
// to no more than 1e-9 (floating-point noise at the boundary) still count
// as feasible.
func isValid(x []float64, inst Instance, free bool, fixedAngles []float64) bool {
	cost := evaluate(x, inst, free, fixedAngles)

	return cost <= x[0]+1e-9
}
