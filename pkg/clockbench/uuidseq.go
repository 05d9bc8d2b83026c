package clockbench

import "github.com/google/uuid"

// UUIDClockSeq asks github.com/google/uuid to reroll its clock sequence
// and reads it back. This is what callers get from the mainstream UUID
// library today, included as the incumbent to beat.
type UUIDClockSeq struct{}

// NewUUIDClockSeq creates the google/uuid candidate.
func NewUUIDClockSeq() *UUIDClockSeq {
	return &UUIDClockSeq{}
}

// Name returns the candidate name.
func (*UUIDClockSeq) Name() string {
	return "google/uuid"
}

// Next rerolls the library clock sequence and returns it.
func (*UUIDClockSeq) Next() (uint16, error) {
	uuid.SetClockSequence(-1)
	return uint16(uuid.ClockSequence()) & ClockSeqMask, nil
}
