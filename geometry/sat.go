package geometry

import "math"

// ContainmentExcess returns how far a corner lies outside the circle of
// radius (r - outerPad) centered at the origin.
//
// e = ‖corner‖ - (r - outerPad). A positive e is a violation of magnitude e;
// e <= 0 means the corner is contained (the boundary case e == 0 is valid).
func ContainmentExcess(corner Point, r, outerPad float64) float64 {
	return corner.Norm() - (r - outerPad)
}

// projectOntoAxis projects each of the 4 corners onto axis (assumed unit
// length) and returns [min, max] of the scalar projections.
func projectOntoAxis(corners [4]Point, axis Point) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)

	var i int
	var d float64
	for i = 0; i < 4; i++ {
		d = corners[i].Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}

	return min, max
}

// SATPenetration computes the penetration depth between two rectangles A
// and B for the required inner clearance innerPad.
//
// Candidate separating axes are the edge normals of A and B (2 distinct
// directions each, 4 total). For each axis a, the signed overlap is
//
//	o(a) = min(maxA, maxB) - max(minA, minB)
//
// o(a) is positive when the projections truly overlap on that axis and
// negative when there is a real gap (a gap of -o(a)). The per-axis
// violation is v(a) = innerPad + o(a): an overlapping axis (o(a) > 0) adds
// straight to the violation, while a gapped axis only stays non-violating
// once the gap (-o(a)) reaches innerPad.
//
// The pair is valid iff some axis has v(a) <= 0 (a true separating axis with
// the required clearance). The reported penetration depth is the minimum
// v(a) across all candidate axes: when that minimum is <= 0, the pair is
// separated and SATPenetration returns 0 (no violation); otherwise it
// returns the minimum violation, the amount by which the pair most-closely
// fails to be separated.
func SATPenetration(wA, hA, cxA, cyA, thA, wB, hB, cxB, cyB, thB, innerPad float64) float64 {
	cornersA := Corners(wA, hA, cxA, cyA, thA)
	cornersB := Corners(wB, hB, cxB, cyB, thB)

	normalsA := EdgeNormals(thA)
	normalsB := EdgeNormals(thB)

	axes := [4]Point{normalsA[0], normalsA[1], normalsB[0], normalsB[1]}

	minV := math.Inf(1)

	var (
		i                  int
		minA, maxA         float64
		minB, maxB         float64
		overlap            float64
		v                  float64
	)
	for i = 0; i < 4; i++ {
		minA, maxA = projectOntoAxis(cornersA, axes[i])
		minB, maxB = projectOntoAxis(cornersB, axes[i])

		overlap = math.Min(maxA, maxB) - math.Max(minA, minB)
		v = innerPad + overlap
		if v < minV {
			minV = v
		}
	}

	if minV <= 0 {
		return 0
	}

	return minV
}
