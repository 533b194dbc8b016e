package euid

import (
	"bytes"
	"math"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_NewMillisecondDraws(t *testing.T) {
	var s State
	entropy := bytes.NewReader([]byte{0, 0, 0, 5, 0xF2, 0x34, 0, 0, 0, 9, 0, 1})

	step, err := s.Transition(0, entropy)
	require.NoError(t, err)
	assert.Equal(t, Step{RandomHigh: 5, Filler: 0x7234}, step)
	assert.Equal(t, uint64(0), s.LastTimestamp())
	assert.Equal(t, uint32(5), s.LastRandomHigh())

	step, err = s.Transition(0, entropy)
	require.NoError(t, err)
	assert.Equal(t, Step{RandomHigh: 6, Filler: 0x7234}, step, "same millisecond increments and keeps filler")

	step, err = s.Transition(1, entropy)
	require.NoError(t, err)
	assert.Equal(t, Step{RandomHigh: 9, Filler: 1}, step)
	assert.Equal(t, uint64(1), s.LastTimestamp())
}

func TestState_CounterOverflowLeavesStateUnchanged(t *testing.T) {
	s := State{lastMs: 42, lastHigh: math.MaxUint32 - 1, filler: 7, used: true}

	step, err := s.Transition(42, zeroReader{})
	require.NoError(t, err)
	assert.Equal(t, uint32(math.MaxUint32), step.RandomHigh)

	before := s
	_, err = s.Transition(42, zeroReader{})
	require.ErrorIs(t, err, ErrCounterOverflow)
	assert.Equal(t, before, s)

	step, err = s.Transition(43, zeroReader{})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), step.RandomHigh)
}

func TestState_EntropyFailureLeavesStateUnchanged(t *testing.T) {
	s := State{lastMs: 1, lastHigh: 10, used: true}
	before := s

	_, err := s.Transition(2, iotest.ErrReader(assert.AnError))
	require.ErrorIs(t, err, ErrRandomSourceUnavailable)
	assert.Equal(t, before, s)
}

func TestState_ShortEntropy(t *testing.T) {
	var s State
	_, err := s.Transition(1, bytes.NewReader([]byte{1, 2, 3}))
	assert.ErrorIs(t, err, ErrRandomSourceUnavailable)
}
