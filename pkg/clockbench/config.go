package clockbench

import "fmt"

// Benchmark defaults. Applied uniformly to every candidate so the
// comparison stays fair.
const (
	DefaultIterations   = 1_000_000
	DefaultWarmupRounds = 100
	DefaultRepeats      = 5
)

// Config fixes the measurement protocol: Iterations calls per timed
// batch, Repeats timed batches per candidate, WarmupRounds untimed calls
// per candidate beforehand.
type Config struct {
	Iterations   int
	WarmupRounds int
	Repeats      int
}

// DefaultConfig returns the standard measurement protocol.
func DefaultConfig() Config {
	return Config{
		Iterations:   DefaultIterations,
		WarmupRounds: DefaultWarmupRounds,
		Repeats:      DefaultRepeats,
	}
}

// Validate rejects non-positive counts.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, c.Iterations)
	}
	if c.WarmupRounds <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWarmup, c.WarmupRounds)
	}
	if c.Repeats <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidRepeats, c.Repeats)
	}
	return nil
}
