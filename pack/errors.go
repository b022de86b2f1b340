// Package pack implements the penalty evaluator, the Differential
// Evolution engine, the staged rotation policy, and the permutation
// dispatcher that together pack rectangles into a minimal enclosing
// circle.
//
// Design goals:
//   - Determinism: every randomized component is driven by an explicit,
//     seedable RNG; identical seeds and options always produce the same
//     Result (modulo worker arrival order, which never affects selection).
//   - Strict sentinels: only errors declared here; no fmt.Errorf where a
//     sentinel suffices.
//   - Graceful infeasibility: a solve never fails because no feasible
//     layout was found; Result.Valid reports that instead.
package pack

import "errors"

// Input-invariant sentinels: the InvalidInstance error class.
// These are rejected before any optimization work begins.
var (
	// ErrEmptyRectangleSet indicates the instance has zero rectangles.
	ErrEmptyRectangleSet = errors.New("pack: instance has no rectangles")

	// ErrNonPositiveDimension indicates some rectangle has w <= 0 or h <= 0.
	ErrNonPositiveDimension = errors.New("pack: rectangle has non-positive width or height")

	// ErrNegativePadding indicates OuterPad or InnerPad is negative.
	ErrNegativePadding = errors.New("pack: padding must be non-negative")
)

// Options-shape sentinels.
var (
	// ErrUnsupportedRotationMode is returned when Options.RotationMode
	// names a mode the dispatcher does not recognize.
	ErrUnsupportedRotationMode = errors.New("pack: unsupported rotation mode")

	// ErrInvalidMutationFactor indicates Options.F is outside [0, 2] (DE's
	// usual working range; values outside it are almost certainly a typo).
	ErrInvalidMutationFactor = errors.New("pack: mutation factor F out of range")

	// ErrInvalidCrossoverRate indicates Options.CR is outside [0, 1].
	ErrInvalidCrossoverRate = errors.New("pack: crossover rate CR out of range")

	// ErrInvalidPopulationSize indicates Options.PopulationSize is negative,
	// or positive but below minPopulationSize (too small for best/1/bin to
	// draw distinct donors from).
	ErrInvalidPopulationSize = errors.New("pack: population size must be 0 or at least 4")
)
