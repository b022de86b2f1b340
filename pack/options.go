package pack

// Default knobs for the DE engine and the discrete-stage permutation sweep.
const (
	// DefaultMutationFactor is DE's F, the reference mutation scale.
	DefaultMutationFactor = 0.5

	// DefaultCrossoverRate is DE's CR, the binomial crossover probability.
	DefaultCrossoverRate = 0.9

	// DefaultMaxGenerations caps a single DE run.
	DefaultMaxGenerations = 1000

	// DefaultConvergenceTol is the relative population cost-spread below
	// which a DE run is considered CONVERGED.
	DefaultConvergenceTol = 1e-6

	// DefaultDiscreteWarnThreshold is the rectangle count above which
	// Discrete45's 4^N permutation budget earns a non-fatal warning.
	DefaultDiscreteWarnThreshold = 8

	// minPopulationSize is the smallest population best/1/bin can mutate
	// from: picking a trial's base (best), plus two further distinct
	// donors r1/r2, plus the target itself, needs four distinct indices.
	minPopulationSize = 4
)

// Options configures a Solve call. The zero value is not meaningful; start
// from DefaultOptions() and override fields as needed.
type Options struct {
	// RotationMode selects the search mode, or Auto for the staged cascade.
	// Default: Auto.
	RotationMode RotationMode

	// TargetRadius, if > 0, lets Auto (or a single stage) stop early once a
	// valid result with Radius <= TargetRadius is found. Zero means "no
	// target" (always exhaust the configured stages).
	TargetRadius float64

	// StagesToTry restricts Auto's cascade to a prefix/subset of stages, in
	// cascade order. Nil means the full FixedZero->Discrete90->Discrete45->
	// Free cascade.
	StagesToTry []RotationMode

	// MaxGenerations caps each DE run. Default: DefaultMaxGenerations.
	MaxGenerations int

	// PopulationSize sets the DE population size. Zero means "derive from
	// dimension": max(5*dim, 15). If non-zero it must be at least 4 -
	// best/1/bin needs four distinct population indices (target, best, and
	// two mutation donors) to draw a trial vector.
	PopulationSize int

	// F is DE's mutation factor, acceptable range [0.3, 1.0] by convention;
	// values in [0, 2] are accepted, anything wider is almost certainly a
	// mistake. Default: DefaultMutationFactor.
	F float64

	// CR is DE's binomial crossover rate in [0, 1]. Default:
	// DefaultCrossoverRate.
	CR float64

	// Seed drives every deterministic RNG stream in this solve (the DE
	// population's, and each discrete-stage worker's). Zero selects a
	// fixed default seed, not a time-based one: Solve is always
	// reproducible for a given Options value.
	Seed int64

	// Parallel enables the goroutine worker pool for discrete stages. If
	// false, permutations are run sequentially on a single worker goroutine.
	// Default: true.
	Parallel bool

	// Parallelism overrides the worker count for discrete stages. Zero
	// means runtime.GOMAXPROCS(0).
	Parallelism int

	// ProgressSink, if non-nil, is invoked after each permutation
	// completes during a discrete-stage sweep.
	ProgressSink ProgressSink

	// DiscreteWarnThreshold is the rectangle count above which Discrete45
	// attaches a non-fatal budget warning to Result.Warnings. Default:
	// DefaultDiscreteWarnThreshold.
	DiscreteWarnThreshold int
}

// DefaultOptions returns a fully populated Options with safe, deterministic
// defaults:
//   - Auto cascade, no target radius (exhaust all stages)
//   - best/1/bin DE with reference F/CR, DefaultMaxGenerations cap
//   - population size derived from dimension
//   - deterministic RNG (Seed=0)
//   - parallel discrete sweeps using all available processors
func DefaultOptions() Options {
	return Options{
		RotationMode:          Auto,
		TargetRadius:          0,
		StagesToTry:           nil,
		MaxGenerations:        DefaultMaxGenerations,
		PopulationSize:        0,
		F:                     DefaultMutationFactor,
		CR:                    DefaultCrossoverRate,
		Seed:                  0,
		Parallel:              true,
		Parallelism:           0,
		ProgressSink:          nil,
		DiscreteWarnThreshold: DefaultDiscreteWarnThreshold,
	}
}
