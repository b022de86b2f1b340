// Package geometry_test exercises the collision primitives: corner
// rotation, circle containment, and SAT pairwise separation.
package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopacklab/packcircle/geometry"
)

func TestCorners_AxisAligned(t *testing.T) {
	t.Parallel()

	corners := geometry.Corners(10, 4, 0, 0, 0)
	want := [4]geometry.Point{
		{X: -5, Y: -2},
		{X: 5, Y: -2},
		{X: 5, Y: 2},
		{X: -5, Y: 2},
	}
	require.Equal(t, want, corners)
}

func TestCorners_QuarterTurnMatchesSwappedHalfExtents(t *testing.T) {
	t.Parallel()

	// Rotating a w=10,h=4 rectangle by 90deg should place corners where a
	// w=4,h=10 rectangle's corners would be (up to floating-point noise).
	// Both lists are CCW, but the rotated list starts from the rotated
	// local (-w/2,-h/2) corner, which lands on the swapped rectangle's
	// second corner: rotated[i] matches swapped[(i+1)%4].
	rotated := geometry.Corners(10, 4, 0, 0, math.Pi/2)
	swapped := geometry.Corners(4, 10, 0, 0, 0)

	for i := 0; i < 4; i++ {
		assert.InDelta(t, swapped[(i+1)%4].X, rotated[i].X, 1e-9)
		assert.InDelta(t, swapped[(i+1)%4].Y, rotated[i].Y, 1e-9)
	}
}

func TestContainmentExcess(t *testing.T) {
	t.Parallel()

	corner := geometry.Point{X: 3, Y: 4} // norm 5
	// r - outerPad == 5 exactly => excess == 0, the boundary is valid.
	assert.InDelta(t, 0, geometry.ContainmentExcess(corner, 6, 1), 1e-12)
	// Shrinking r makes the corner stick out.
	assert.Greater(t, geometry.ContainmentExcess(corner, 5, 1), 0.0)
	// Growing r keeps it comfortably inside (negative excess).
	assert.Less(t, geometry.ContainmentExcess(corner, 10, 1), 0.0)
}

func TestSATPenetration_SeparatedSquares(t *testing.T) {
	t.Parallel()

	// Two 2x2 squares, centers 10 apart along X: comfortably separated.
	p := geometry.SATPenetration(2, 2, 0, 0, 0, 2, 2, 10, 0, 0, 0)
	assert.Zero(t, p)
}

func TestSATPenetration_TouchingSquaresWithZeroPadRequired(t *testing.T) {
	t.Parallel()

	// Two 2x2 squares touching edge-to-edge (centers 2 apart along X):
	// overlap on the X axis is exactly 0, which satisfies innerPad=0 exactly.
	p := geometry.SATPenetration(2, 2, 0, 0, 0, 2, 2, 2, 0, 0, 0)
	assert.Zero(t, p)
}

func TestSATPenetration_OverlappingSquares(t *testing.T) {
	t.Parallel()

	// Same center: total overlap, should report a positive penetration.
	p := geometry.SATPenetration(2, 2, 0, 0, 0, 2, 2, 0, 0, 0, 0)
	assert.Greater(t, p, 0.0)
}

func TestSATPenetration_InnerPaddingEnforced(t *testing.T) {
	t.Parallel()

	// Two 2x2 squares separated by exactly 1 unit of gap (centers 3 apart);
	// requiring innerPad=2 should report the shortfall (2-1=1).
	p := geometry.SATPenetration(2, 2, 0, 0, 0, 2, 2, 3, 0, 0, 2)
	assert.InDelta(t, 1.0, p, 1e-9)
}

func TestSATPenetration_DifferentSizedRectanglesSeparate(t *testing.T) {
	t.Parallel()

	// A wide rectangle and a tall one placed corner-adjacent, just touching
	// on one axis, should be detected as separated.
	p := geometry.SATPenetration(10, 2, 0, 0, 0, 2, 10, 6, 6, 0, 0)
	assert.Zero(t, p)
}
