package euid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"math/bits"
	"sync"
	"time"

	"github.com/getmockd/euid/pkg/logging"
)

// Generator produces IDs that increase within each millisecond.
//
// A Generator is not safe for concurrent use; see LockedGenerator.
type Generator struct {
	clock   Clock
	entropy io.Reader
	epochMs int64
	logger  *slog.Logger
	state   State
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock sets the time source. Defaults to SystemClock.
func WithClock(c Clock) Option {
	return func(g *Generator) {
		g.clock = c
	}
}

// WithEntropy sets the randomness source. Defaults to crypto/rand.Reader.
func WithEntropy(r io.Reader) Option {
	return func(g *Generator) {
		g.entropy = r
	}
}

// WithEpoch sets the zero point of the timestamp field, truncated to the
// millisecond. Defaults to the Unix epoch.
func WithEpoch(epoch time.Time) Option {
	return func(g *Generator) {
		g.epochMs = epoch.UnixMilli()
	}
}

// WithLogger sets the logger used for generation failures.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// NewGenerator creates a Generator with the given options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		clock:   SystemClock{},
		entropy: rand.Reader,
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Epoch returns the generator's epoch.
func (g *Generator) Epoch() time.Time {
	return time.UnixMilli(g.epochMs).UTC()
}

// New returns an ID without extension data.
func (g *Generator) New() (ID, error) {
	return g.Generate(0, 0)
}

// NewWithExtension embeds ext using as many bits as it needs, at least one.
// ext must fit in 15 bits.
func (g *Generator) NewWithExtension(ext uint16) (ID, error) {
	if ext > MaxPayload {
		return Nil, fmt.Errorf("%w: %d exceeds %d bits", ErrExtensionOverflow, ext, PayloadBits)
	}
	return g.Generate(uint8(max(1, bits.Len16(ext))), ext)
}

// Generate returns the next ID, with ext stored in the top extLen bits of
// the payload.
//
// Errors: ErrExtensionOverflow when ext does not fit extLen bits (or extLen
// exceeds 15), ErrClockUnavailable, ErrTimestampRangeExceeded,
// ErrRandomSourceUnavailable, and ErrCounterOverflow when the
// millisecond's counter is spent. None are retried.
//
// Within one millisecond IDs increase only while the extension is the same;
// changing it between calls changes the payload bits above the counter.
func (g *Generator) Generate(extLen uint8, ext uint16) (ID, error) {
	if extLen > MaxExtLen {
		return Nil, fmt.Errorf("%w: length %d exceeds %d", ErrExtensionOverflow, extLen, MaxExtLen)
	}
	if uint32(ext) >= 1<<extLen {
		return Nil, fmt.Errorf("%w: %d does not fit in %d bits", ErrExtensionOverflow, ext, extLen)
	}

	nowMs, err := g.now()
	if err != nil {
		return Nil, err
	}

	// Random Low is drawn before the transition so that a failed read
	// leaves the state untouched.
	var low [4]byte
	if _, err := io.ReadFull(g.entropy, low[:]); err != nil {
		g.logger.Debug("euid entropy read failed", "error", err)
		return Nil, fmt.Errorf("%w: %v", ErrRandomSourceUnavailable, err)
	}

	step, err := g.state.Transition(nowMs, g.entropy)
	if err != nil {
		g.logger.Debug("euid state transition failed", "timestamp", nowMs, "error", err)
		return Nil, err
	}

	fill := PayloadBits - extLen
	return Pack(Fields{
		Timestamp:  nowMs,
		ExtLen:     extLen,
		Payload:    ext<<fill | step.Filler&(1<<fill-1),
		RandomHigh: step.RandomHigh,
		RandomLow:  binary.BigEndian.Uint32(low[:]),
	})
}

func (g *Generator) now() (uint64, error) {
	t, err := g.clock.Now()
	if err != nil {
		g.logger.Debug("euid clock read failed", "error", err)
		return 0, fmt.Errorf("%w: %v", ErrClockUnavailable, err)
	}
	ms := t.UnixMilli() - g.epochMs
	if ms < 0 || ms > MaxTimestamp {
		return 0, fmt.Errorf("%w: %d ms since epoch %s", ErrTimestampRangeExceeded, ms, g.Epoch().Format(time.RFC3339))
	}
	return uint64(ms), nil
}

// LockedGenerator is a Generator guarded by a mutex.
type LockedGenerator struct {
	mu  sync.Mutex
	gen *Generator
}

// NewLockedGenerator creates a LockedGenerator with the given options.
func NewLockedGenerator(opts ...Option) *LockedGenerator {
	return &LockedGenerator{gen: NewGenerator(opts...)}
}

// New is Generator.New under the lock.
func (l *LockedGenerator) New() (ID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.New()
}

// NewWithExtension is Generator.NewWithExtension under the lock.
func (l *LockedGenerator) NewWithExtension(ext uint16) (ID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.NewWithExtension(ext)
}

// Generate is Generator.Generate under the lock.
func (l *LockedGenerator) Generate(extLen uint8, ext uint16) (ID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.gen.Generate(extLen, ext)
}

// New returns an ID from a fresh Generator with default options. IDs from
// separate calls carry no ordering guarantee within a millisecond.
func New() (ID, error) {
	return NewGenerator().New()
}
