package pack

// ProgressSink receives one event per completed permutation during a
// discrete-stage sweep: how many permutations have completed, the total
// attempted, and the best feasible radius observed so far (nil if none
// yet). Implementations must return promptly - the dispatcher calls the
// sink synchronously on its aggregation path, never from inside a DE run.
type ProgressSink func(completed, total int, bestValidRadius *float64)
