// Package uint128 implements the unsigned 128-bit operations the identifier
// codec needs. Values are held as two 64-bit limbs so that nothing depends on
// a native wide-integer type.
package uint128

import (
	"encoding/binary"
	"math/big"
)

// Size is the width of a Uint128 in bytes.
const Size = 16

// Uint128 is an unsigned 128-bit integer. The zero value is 0.
type Uint128 struct {
	Hi, Lo uint64
}

// Max is the largest representable value.
var Max = Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}

// New returns the value hi<<64 | lo.
func New(hi, lo uint64) Uint128 {
	return Uint128{Hi: hi, Lo: lo}
}

// FromBytes reads a big-endian value from the first Size bytes of b.
// It panics if b is shorter than Size.
func FromBytes(b []byte) Uint128 {
	_ = b[Size-1]
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[0:8]),
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// PutBytes writes u big-endian into the first Size bytes of b.
func (u Uint128) PutBytes(b []byte) {
	_ = b[Size-1]
	binary.BigEndian.PutUint64(b[0:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:16], u.Lo)
}

// FromWords assembles a value from four 32-bit words, most significant first.
func FromWords(w [4]uint32) Uint128 {
	return Uint128{
		Hi: uint64(w[0])<<32 | uint64(w[1]),
		Lo: uint64(w[2])<<32 | uint64(w[3]),
	}
}

// Words splits u into four 32-bit words, most significant first.
func (u Uint128) Words() [4]uint32 {
	return [4]uint32{
		uint32(u.Hi >> 32),
		uint32(u.Hi),
		uint32(u.Lo >> 32),
		uint32(u.Lo),
	}
}

// IsZero reports whether u == 0.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Cmp returns -1, 0 or 1 as u is less than, equal to, or greater than v.
func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// Lsh returns u << n. Bits shifted past bit 127 are discarded.
func (u Uint128) Lsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Hi: u.Lo << (n - 64)}
	}
	return Uint128{Hi: u.Hi<<n | u.Lo>>(64-n), Lo: u.Lo << n}
}

// Rsh returns u >> n.
func (u Uint128) Rsh(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{}
	case n >= 64:
		return Uint128{Lo: u.Hi >> (n - 64)}
	}
	return Uint128{Hi: u.Hi >> n, Lo: u.Lo>>n | u.Hi<<(64-n)}
}

// Or64 returns u | x.
func (u Uint128) Or64(x uint64) Uint128 {
	return Uint128{Hi: u.Hi, Lo: u.Lo | x}
}

// Mod127 returns u mod 127.
//
// 2^7 ≡ 1 (mod 127), so 2^64 = 2^(7*9+1) ≡ 2 and the value reduces to
// 2*(Hi mod 127) + (Lo mod 127), which fits comfortably in a uint64.
func (u Uint128) Mod127() uint8 {
	return uint8((2*(u.Hi%127) + u.Lo%127) % 127)
}

// Big returns u as a big.Int.
func (u Uint128) Big() *big.Int {
	hi := new(big.Int).SetUint64(u.Hi)
	return hi.Lsh(hi, 64).Or(hi, new(big.Int).SetUint64(u.Lo))
}

// FromBig converts x to a Uint128. ok is false if x is negative or wider
// than 128 bits.
func FromBig(x *big.Int) (u Uint128, ok bool) {
	if x.Sign() < 0 || x.BitLen() > 128 {
		return Uint128{}, false
	}
	var b [Size]byte
	x.FillBytes(b[:])
	return FromBytes(b[:]), true
}

// String returns the decimal form of u.
func (u Uint128) String() string {
	return u.Big().String()
}
