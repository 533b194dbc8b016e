package euid

// NoChecksum is the check value written by Encode(false). Parse skips
// verification when it reads it.
const NoChecksum = 127

// Checksum returns id modulo 127, in [0, 126].
func (id ID) Checksum() uint8 {
	return id.v.Mod127()
}
