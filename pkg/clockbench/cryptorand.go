package clockbench

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// CryptoRand reads two bytes from crypto/rand.Reader per call and masks
// the big-endian value down to 14 bits.
type CryptoRand struct{}

// NewCryptoRand creates the crypto/rand candidate.
func NewCryptoRand() *CryptoRand {
	return &CryptoRand{}
}

// Name returns the candidate name.
func (*CryptoRand) Name() string {
	return "crypto/rand"
}

// Next generates a clock sequence from the cryptographic source.
func (*CryptoRand) Next() (uint16, error) {
	var buf [2]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("crypto/rand: %w", err)
	}
	return binary.BigEndian.Uint16(buf[:]) & ClockSeqMask, nil
}
