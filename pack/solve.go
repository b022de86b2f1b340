package pack

import "context"

// Solve packs inst.Rectangles into the smallest enclosing circle it can
// find, subject to OuterPad/InnerPad clearances, following opts.RotationMode.
//
// Stage 1 - validate. Stage 2 - route to a single DE run (FixedZero, Free),
// a permutation sweep (Discrete90, Discrete45), or the full Auto cascade.
// Stage 3 - none; callers needing a post-pass (e.g. re-solving at a tighter
// TargetRadius) call Solve again.
func Solve(inst Instance, opts Options) (Result, error) {
	if err := validateAll(inst, opts); err != nil {
		return Result{}, err
	}

	masterSeed := opts.Seed
	if masterSeed == 0 {
		masterSeed = defaultRNGSeed
	}

	ctx := context.Background()

	var (
		result   Result
		warnings []string
	)

	switch opts.RotationMode {
	case FixedZero, Discrete90, Discrete45, Free:
		result, warnings = runStage(ctx, inst, opts, opts.RotationMode, masterSeed)
	default:
		cascade := opts.StagesToTry
		if cascade == nil {
			cascade = defaultCascade
		}
		result, warnings = runCascade(ctx, inst, opts, cascade, masterSeed)
	}

	result.Warnings = append(result.Warnings, warnings...)

	return result, nil
}
