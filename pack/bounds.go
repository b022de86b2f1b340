package pack

import "math"

// bounds holds the per-dimension [low, high] box the DE engine searches
// within, plus bookkeeping about which dimensions are angles (for mod-pi
// wrapping) and the instance dimension N.
type bounds struct {
	n      int // rectangle count
	dim    int // state vector dimension: 1+2N (fixed/discrete) or 1+3N (free)
	free   bool
	low    []float64
	high   []float64
	isAngle []bool
}

// halfDiagonal returns half the diagonal length of a w x h rectangle -
// the farthest any corner can be from the rectangle's own center.
func halfDiagonal(w, h float64) float64 {
	return math.Hypot(w, h) / 2
}

// newBounds derives the search bounds for inst under the given free-angle
// flag:
//
//	R in [R_min, R_max], R_min ~= max half-diagonal + outer pad,
//	                     R_max ~= sum of half-diagonals + padding margin
//	centers in [-R_max, +R_max]
//	angles in [0, pi) when free
func newBounds(inst Instance, free bool) bounds {
	n := len(inst.Rectangles)

	var (
		maxHalfDiag float64
		sumHalfDiag float64
		i           int
		hd          float64
	)
	for i = 0; i < n; i++ {
		hd = halfDiagonal(inst.Rectangles[i].W, inst.Rectangles[i].H)
		sumHalfDiag += hd
		if hd > maxHalfDiag {
			maxHalfDiag = hd
		}
	}

	rMin := maxHalfDiag + inst.OuterPad
	// R_max gives every rectangle room to sit side by side around the
	// circle with inner padding between consecutive ones, plus the outer
	// margin; generous on purpose (search bounds must contain all feasible
	// solutions, not tightly wrap them).
	rMax := sumHalfDiag + float64(n)*inst.InnerPad + inst.OuterPad + 1

	var dim int
	if free {
		dim = 1 + 3*n
	} else {
		dim = 1 + 2*n
	}

	low := make([]float64, dim)
	high := make([]float64, dim)
	isAngle := make([]bool, dim)

	low[0], high[0] = rMin, rMax

	if free {
		for i = 0; i < n; i++ {
			base := 1 + 3*i
			low[base], high[base] = -rMax, rMax         // cx
			low[base+1], high[base+1] = -rMax, rMax      // cy
			low[base+2], high[base+2] = 0, math.Pi       // theta
			isAngle[base+2] = true
		}
	} else {
		for i = 0; i < n; i++ {
			base := 1 + 2*i
			low[base], high[base] = -rMax, rMax
			low[base+1], high[base+1] = -rMax, rMax
		}
	}

	return bounds{n: n, dim: dim, free: free, low: low, high: high, isAngle: isAngle}
}
