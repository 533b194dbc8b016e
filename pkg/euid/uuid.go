package euid

import (
	"github.com/google/uuid"

	"github.com/getmockd/euid/internal/uint128"
)

// UUID returns the 16 bytes of id as a uuid.UUID, for storage in UUID
// columns. The result carries no RFC 4122 version or variant.
func (id ID) UUID() uuid.UUID {
	var u uuid.UUID
	id.v.PutBytes(u[:])
	return u
}

// FromUUID reinterprets the bytes of u as an ID.
func FromUUID(u uuid.UUID) ID {
	return ID{v: uint128.FromBytes(u[:])}
}
