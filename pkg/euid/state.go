package euid

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// State is the ordering state of one generator: the millisecond of the
// last ID, its Random High counter, and the payload filler drawn for that
// millisecond. The zero value is ready to use.
//
// State is not safe for concurrent use.
type State struct {
	lastMs   uint64
	lastHigh uint32
	filler   uint16
	used     bool
}

// Step is the outcome of one State transition.
type Step struct {
	RandomHigh uint32
	// Filler supplies the payload bits not taken by an extension. It is
	// fixed for the whole millisecond so that same-millisecond IDs differ
	// only in their counter and Random Low.
	Filler uint16
}

// Transition advances the state to nowMs.
//
// In a new millisecond it draws a fresh counter and filler from entropy.
// In the same millisecond it increments the counter, and fails with
// ErrCounterOverflow once the counter would leave 32 bits. The state is
// unchanged whenever an error is returned.
func (s *State) Transition(nowMs uint64, entropy io.Reader) (Step, error) {
	if s.used && nowMs == s.lastMs {
		if s.lastHigh == math.MaxUint32 {
			return Step{}, fmt.Errorf("%w: millisecond %d", ErrCounterOverflow, nowMs)
		}
		s.lastHigh++
		return Step{RandomHigh: s.lastHigh, Filler: s.filler}, nil
	}

	var b [6]byte
	if _, err := io.ReadFull(entropy, b[:]); err != nil {
		return Step{}, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}
	s.lastMs = nowMs
	s.lastHigh = binary.BigEndian.Uint32(b[0:4])
	s.filler = binary.BigEndian.Uint16(b[4:6]) & MaxPayload
	s.used = true
	return Step{RandomHigh: s.lastHigh, Filler: s.filler}, nil
}

// LastTimestamp returns the millisecond of the most recent transition.
func (s *State) LastTimestamp() uint64 {
	return s.lastMs
}

// LastRandomHigh returns the counter handed out by the most recent
// transition.
func (s *State) LastRandomHigh() uint32 {
	return s.lastHigh
}
