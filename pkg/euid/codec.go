package euid

import (
	"fmt"

	"github.com/getmockd/euid/internal/uint128"
)

// EncodedLen is the length of the text form.
const EncodedLen = 27

// Crockford's base32: digits and letters without I, L, O and U.
const alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

const (
	invalidSymbol = 0xff
	symbolBits    = 5
	symbolMask    = 1<<symbolBits - 1

	// Symbols 0-24 hold ID bits 127..3; symbol 25 holds ID bits 2..0 and
	// the top two check bits; symbol 26 holds the low five check bits.
	fullSymbols = 25
	tailBits    = 128 - fullSymbols*symbolBits
	checkSplit  = symbolBits - tailBits
)

var decoding = newDecodingTable()

func newDecodingTable() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidSymbol
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		t[c] = byte(i)
		if c >= 'A' && c <= 'Z' {
			t[c+'a'-'A'] = byte(i)
		}
	}
	t['I'], t['i'], t['L'], t['l'] = 1, 1, 1, 1
	t['O'], t['o'] = 0, 0
	return t
}

// String returns the canonical 27-character form of id, with checksum.
func (id ID) String() string {
	return id.Encode(true)
}

// Encode returns the 27-character form of id. When withChecksum is false
// the check symbol carries NoChecksum.
func (id ID) Encode(withChecksum bool) string {
	return string(id.appendEncoded(make([]byte, 0, EncodedLen), withChecksum))
}

// AppendText implements encoding.TextAppender.
func (id ID) AppendText(b []byte) ([]byte, error) {
	return id.appendEncoded(b, true), nil
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	return id.appendEncoded(make([]byte, 0, EncodedLen), true), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

func (id ID) appendEncoded(dst []byte, withChecksum bool) []byte {
	check := uint8(NoChecksum)
	if withChecksum {
		check = id.Checksum()
	}
	for i := 0; i < fullSymbols; i++ {
		shift := uint(128 - symbolBits*(i+1))
		dst = append(dst, alphabet[id.v.Rsh(shift).Lo&symbolMask])
	}
	tail := id.v.Lo&(1<<tailBits-1)<<checkSplit | uint64(check>>symbolBits)
	dst = append(dst, alphabet[tail], alphabet[check&symbolMask])
	return dst
}

// Parse decodes the 27-character form. Lowercase is accepted, as are I and
// L for 1 and O for 0. A check symbol other than NoChecksum must match the
// decoded value. On error the returned ID is Nil.
//
// A single changed symbol is detected unless it turns the check bits into
// NoChecksum. Symbol 25 carries the top 2 check bits, so for IDs whose
// checksum is 31, 63 or 95 a change there that sets both bits goes
// unnoticed, as does a change of symbol 26 to Z when the checksum is 96 or
// more.
func Parse(s string) (ID, error) {
	if len(s) != EncodedLen {
		return Nil, fmt.Errorf("%w: got %d characters, want %d", ErrMalformedLength, len(s), EncodedLen)
	}

	var syms [EncodedLen]byte
	for i := 0; i < EncodedLen; i++ {
		sym := decoding[s[i]]
		if sym == invalidSymbol {
			return Nil, fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, rune(s[i]), i)
		}
		syms[i] = sym
	}

	var v uint128.Uint128
	for _, sym := range syms[:fullSymbols] {
		v = v.Lsh(symbolBits).Or64(uint64(sym))
	}
	v = v.Lsh(tailBits).Or64(uint64(syms[fullSymbols] >> checkSplit))
	claimed := (syms[fullSymbols]&(1<<checkSplit-1))<<symbolBits | syms[fullSymbols+1]

	id := ID{v: v}
	if claimed != NoChecksum {
		if sum := id.Checksum(); sum != claimed {
			return Nil, fmt.Errorf("%w: %q carries %d, value gives %d", ErrChecksumMismatch, s, claimed, sum)
		}
	}
	return id, nil
}

// MustParse is like Parse but panics on error. It is intended for
// constants in tests and initialisers.
func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return id
}
