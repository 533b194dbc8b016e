// Package euid implements EUID, a 128-bit, time-ordered, extensible unique
// identifier with a 27-character checksummed text form.
//
// # Layout
//
// An ID is 128 bits, big-endian, read as four 32-bit words:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                        Timestamp High                         |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|     Timestamp Low     |  Extension + Random Filler  | ExtLen|
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                          Random High                          |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                          Random Low                           |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//
// The timestamp is 45 bits of milliseconds since the generator's epoch
// (the Unix epoch unless WithEpoch is given). The 15-bit payload holds an
// optional caller extension in its top ExtLen bits; the remaining bits are
// random. Random High is the per-millisecond counter: within one
// millisecond a Generator increments it instead of drawing a new one, so
// IDs from the same Generator sort in creation order.
//
// # Text form
//
// IDs encode to 27 characters of Crockford's base32 alphabet
// (0123456789ABCDEFGHJKMNPQRSTVWXYZ). The 135 encoded bits are the 128 ID
// bits followed by a 7-bit check value, the ID modulo 127. A check value of
// 127 (NoChecksum) means the string carries no checksum and is accepted
// without verification. Parsing is case-insensitive and reads I and L as 1
// and O as 0.
//
// # Usage
//
//	gen := euid.NewGenerator()
//	id, err := gen.New()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // 27 characters, checksum last
//
//	parsed, err := euid.Parse(id.String())
//
// # Concurrency
//
// A Generator carries mutable ordering state and is not safe for
// concurrent use. Share a LockedGenerator, or give each goroutine its own
// Generator. Separate generators give no ordering guarantee relative to
// each other.
package euid
