package cli

import "errors"

// Common CLI errors
var (
	ErrInvalidCount   = errors.New("count must be at least 1")
	ErrInvalidInteger = errors.New("expected a decimal or 0x-prefixed hex integer")
	ErrIntegerRange   = errors.New("integer does not fit in 128 bits")
)
