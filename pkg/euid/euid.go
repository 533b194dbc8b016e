package euid

import (
	"fmt"

	"github.com/getmockd/euid/internal/uint128"
)

// Size is the binary length of an ID in bytes.
const Size = uint128.Size

// ID is an EUID. IDs are comparable values; == reports identity and
// Compare gives the unsigned 128-bit order, which is also creation order
// for IDs from one Generator.
type ID struct {
	v uint128.Uint128
}

// Nil is the all-zero ID.
var Nil ID

// FromLimbs returns the ID hi<<64 | lo.
func FromLimbs(hi, lo uint64) ID {
	return ID{v: uint128.New(hi, lo)}
}

// Limbs returns the high and low 64 bits of id.
func (id ID) Limbs() (hi, lo uint64) {
	return id.v.Hi, id.v.Lo
}

// FromWords returns the ID made of four big-endian 32-bit words.
func FromWords(w [4]uint32) ID {
	return ID{v: uint128.FromWords(w)}
}

// Words returns id as four 32-bit words, most significant first.
func (id ID) Words() [4]uint32 {
	return id.v.Words()
}

// FromBytes reads a 16-byte big-endian ID.
func FromBytes(b []byte) (ID, error) {
	if len(b) != Size {
		return Nil, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedLength, len(b), Size)
	}
	return ID{v: uint128.FromBytes(b)}, nil
}

// Bytes returns the 16-byte big-endian representation of id.
func (id ID) Bytes() []byte {
	b := make([]byte, Size)
	id.v.PutBytes(b)
	return b
}

// IsZero reports whether id is Nil.
func (id ID) IsZero() bool {
	return id.v.IsZero()
}

// Compare returns -1, 0 or 1 as id sorts before, equal to, or after other.
func (id ID) Compare(other ID) int {
	return id.v.Cmp(other.v)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
