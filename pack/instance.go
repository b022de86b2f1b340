package pack

// Rectangle is an immutable rectangle spec: width and height only. Position
// and orientation are decision variables owned by the solver, not the
// input.
type Rectangle struct {
	W, H float64
}

// Instance is the immutable problem input: a collection of rectangles plus
// the two clearance parameters.
type Instance struct {
	// Rectangles are packed in the order given; Result.Poses preserves this
	// order.
	Rectangles []Rectangle

	// OuterPad is the mandatory clearance between every rectangle and the
	// enclosing circle boundary.
	OuterPad float64

	// InnerPad is the mandatory clearance between any two rectangles.
	InnerPad float64
}

// RotationMode selects how rectangle orientations are searched.
type RotationMode int

const (
	// FixedZero holds every rectangle at angle 0; only centers (and R) are
	// searched.
	FixedZero RotationMode = iota

	// Discrete90 searches centers plus a per-rectangle angle drawn from
	// {0, pi/2}, enumerating all 2^N combinations.
	Discrete90

	// Discrete45 searches centers plus a per-rectangle angle drawn from
	// {0, pi/4, pi/2, 3pi/4}, enumerating all 4^N combinations.
	Discrete45

	// Free searches centers and a continuous angle per rectangle in
	// [0, pi).
	Free

	// Auto runs the staged cascade FixedZero -> Discrete90 -> Discrete45 ->
	// Free, short-circuiting once Options.TargetRadius is met.
	Auto
)

// String renders the rotation mode for logs and debug output.
func (m RotationMode) String() string {
	switch m {
	case FixedZero:
		return "FIXED_0"
	case Discrete90:
		return "DISCRETE_90"
	case Discrete45:
		return "DISCRETE_45"
	case Free:
		return "FREE"
	case Auto:
		return "AUTO"
	default:
		return "UNKNOWN"
	}
}

// Pose is the placement of one rectangle: center (CX, CY) and rotation
// Theta in radians.
type Pose struct {
	CX, CY, Theta float64
}

// Result is the outcome of a Solve call.
type Result struct {
	// Radius is the enclosing circle radius.
	Radius float64

	// Valid is true iff every containment and separation constraint is
	// satisfied, up to a 1e-9 tolerance on the penalty (cost <= Radius+1e-9).
	Valid bool

	// Poses holds one pose per input rectangle, in input order.
	Poses []Pose

	// StageUsed is the rotation mode that produced this result (for Auto,
	// the stage that either met the target radius or ran last).
	StageUsed RotationMode

	// Generations is the number of DE generations consumed by the winning
	// run (the single DE run for FixedZero/Free, or the winning
	// permutation's run for the discrete stages).
	Generations int

	// PermutationCountAttempted is the number of permutations attempted in
	// the winning stage (1 for FixedZero/Free).
	PermutationCountAttempted int

	// Warnings carries non-fatal advisories, e.g. the discrete-permutation
	// budget warning for large Discrete45 sweeps.
	Warnings []string
}
