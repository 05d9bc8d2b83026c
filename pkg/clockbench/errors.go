package clockbench

import "errors"

// Sentinel errors for benchmark setup problems
var (
	// Configuration errors: non-positive counts are rejected before any
	// measurement runs, instead of dividing by zero later
	ErrInvalidIterations = errors.New("iterations must be positive")
	ErrInvalidWarmup     = errors.New("warmup rounds must be positive")
	ErrInvalidRepeats    = errors.New("repeats must be positive")

	// Candidate errors
	ErrNoCandidates = errors.New("no candidates to benchmark")
)
