package euid

import (
	"fmt"
	"time"

	"github.com/getmockd/euid/internal/uint128"
)

// Field widths in bits.
const (
	TimestampBits = 45
	PayloadBits   = 15
	ExtLenBits    = 4
	RandomBits    = 32
)

// Field limits.
const (
	MaxTimestamp = 1<<TimestampBits - 1
	MaxPayload   = 1<<PayloadBits - 1
	MaxExtLen    = PayloadBits
)

// Bit offsets within the high 64-bit limb (words 0 and 1).
const (
	payloadShift   = ExtLenBits
	timestampShift = payloadShift + PayloadBits
	extLenMask     = 1<<ExtLenBits - 1
)

// Fields is the unpacked form of an ID.
type Fields struct {
	// Timestamp is milliseconds since the generating epoch (45 bits).
	Timestamp uint64
	// ExtLen is how many top bits of Payload hold extension data (0-15).
	ExtLen uint8
	// Payload is the 15-bit extension-plus-filler field.
	Payload    uint16
	RandomHigh uint32
	RandomLow  uint32
}

// Pack assembles an ID from its fields. It returns ErrFieldOverflow if
// Timestamp, ExtLen or Payload is wider than its slot.
func Pack(f Fields) (ID, error) {
	switch {
	case f.Timestamp > MaxTimestamp:
		return Nil, fmt.Errorf("%w: timestamp %d exceeds %d bits", ErrFieldOverflow, f.Timestamp, TimestampBits)
	case f.ExtLen > MaxExtLen:
		return Nil, fmt.Errorf("%w: extension length %d exceeds %d", ErrFieldOverflow, f.ExtLen, MaxExtLen)
	case f.Payload > MaxPayload:
		return Nil, fmt.Errorf("%w: payload %#x exceeds %d bits", ErrFieldOverflow, f.Payload, PayloadBits)
	}

	hi := f.Timestamp<<timestampShift | uint64(f.Payload)<<payloadShift | uint64(f.ExtLen)
	lo := uint64(f.RandomHigh)<<RandomBits | uint64(f.RandomLow)
	return ID{v: uint128.New(hi, lo)}, nil
}

// Fields unpacks id. Every 128-bit value has a decomposition, so this
// cannot fail.
func (id ID) Fields() Fields {
	hi, lo := id.v.Hi, id.v.Lo
	return Fields{
		Timestamp:  hi >> timestampShift,
		ExtLen:     uint8(hi & extLenMask),
		Payload:    uint16(hi>>payloadShift) & MaxPayload,
		RandomHigh: uint32(lo >> RandomBits),
		RandomLow:  uint32(lo),
	}
}

// Timestamp returns the milliseconds since epoch recorded in id.
func (id ID) Timestamp() uint64 {
	return id.v.Hi >> timestampShift
}

// Time returns the wall-clock time recorded in id, given the epoch it was
// generated against.
func (id ID) Time(epoch time.Time) time.Time {
	return time.UnixMilli(epoch.UnixMilli() + int64(id.Timestamp())).UTC()
}

// ExtLen returns the number of payload bits holding extension data.
func (id ID) ExtLen() uint8 {
	return uint8(id.v.Hi & extLenMask)
}

// Extension returns the caller data embedded in id. ok is false when the
// ID carries no extension.
func (id ID) Extension() (ext uint16, ok bool) {
	f := id.Fields()
	if f.ExtLen == 0 {
		return 0, false
	}
	return f.Payload >> (PayloadBits - f.ExtLen), true
}
