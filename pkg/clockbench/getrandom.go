package clockbench

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/sys/unix"
)

// Getrandom pulls two bytes of raw kernel entropy via getrandom(2) per
// call, bypassing the userspace layers the crypto/rand candidate goes
// through.
type Getrandom struct{}

// NewGetrandom creates the raw OS entropy candidate.
func NewGetrandom() *Getrandom {
	return &Getrandom{}
}

// Name returns the candidate name.
func (*Getrandom) Name() string {
	return "getrandom"
}

// Next generates a clock sequence from raw kernel entropy.
func (*Getrandom) Next() (uint16, error) {
	var buf [2]byte
	n, err := unix.Getrandom(buf[:], 0)
	if err != nil {
		return 0, fmt.Errorf("getrandom: %w", err)
	}
	if n != len(buf) {
		return 0, fmt.Errorf("getrandom: short read of %d bytes", n)
	}
	return decodeClockSeq(buf), nil
}

// GetrandomUnrolled is Getrandom with the big-endian decode unrolled by
// hand. The unroll changes nothing observable; the two decode paths are
// pinned bit-for-bit equal by tests. It rides along to show the baseline
// already is the fast path.
type GetrandomUnrolled struct{}

// NewGetrandomUnrolled creates the hand-unrolled raw entropy candidate.
func NewGetrandomUnrolled() *GetrandomUnrolled {
	return &GetrandomUnrolled{}
}

// Name returns the candidate name.
func (*GetrandomUnrolled) Name() string {
	return "getrandom (unrolled)"
}

// Next generates a clock sequence from raw kernel entropy.
func (*GetrandomUnrolled) Next() (uint16, error) {
	var buf [2]byte
	n, err := unix.Getrandom(buf[:], 0)
	if err != nil {
		return 0, fmt.Errorf("getrandom: %w", err)
	}
	if n != len(buf) {
		return 0, fmt.Errorf("getrandom: short read of %d bytes", n)
	}
	return decodeClockSeqUnrolled(buf), nil
}

// decodeClockSeq interprets two entropy bytes as a big-endian unsigned
// value and keeps the low 14 bits.
func decodeClockSeq(b [2]byte) uint16 {
	return binary.BigEndian.Uint16(b[:]) & ClockSeqMask
}

func decodeClockSeqUnrolled(b [2]byte) uint16 {
	return (uint16(b[0])<<8 | uint16(b[1])) & ClockSeqMask
}
