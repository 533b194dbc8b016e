package euid

import (
	"math/rand/v2"
	"time"
)

type fakeClock struct {
	t   time.Time
	err error
}

func (c *fakeClock) Now() (time.Time, error) {
	return c.t, c.err
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newFakeClock(ms int64) *fakeClock {
	return &fakeClock{t: time.UnixMilli(ms)}
}

// zeroReader yields zero bytes forever, making counters start at 0.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func seededEntropy(seed byte) *rand.ChaCha8 {
	var s [32]byte
	s[0] = seed
	return rand.NewChaCha8(s)
}

func randomID(r *rand.Rand) ID {
	return FromLimbs(r.Uint64(), r.Uint64())
}
