package clockbench

import "math/rand/v2"

// MathRand draws from the package-global math/rand/v2 generator. This is
// the general-purpose, non-cryptographic baseline.
type MathRand struct{}

// NewMathRand creates the math/rand/v2 candidate.
func NewMathRand() *MathRand {
	return &MathRand{}
}

// Name returns the candidate name.
func (*MathRand) Name() string {
	return "math/rand/v2"
}

// Next generates a clock sequence from the global PRNG.
func (*MathRand) Next() (uint16, error) {
	return uint16(rand.Uint32() & ClockSeqMask), nil
}
