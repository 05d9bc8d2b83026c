package clockbench

// ClockSeqMask keeps the low 14 bits, the width of a UUID clock sequence.
const ClockSeqMask = 0x3fff

// Candidate is one clock-sequence generation strategy under test.
//
// Next returns a uniformly distributed value in [0, ClockSeqMask]. A
// candidate holds no state across calls; any randomness source handle it
// needs is acquired and released within Next.
type Candidate interface {
	Name() string
	Next() (uint16, error)
}

// DefaultCandidates returns the strategies the benchmark compares.
func DefaultCandidates() []Candidate {
	return []Candidate{
		NewMathRand(),
		NewCryptoRand(),
		NewGetrandom(),
		NewGetrandomUnrolled(),
		NewUUIDClockSeq(),
	}
}
