package euid

import "errors"

// Layout and generation errors.
var (
	// ErrFieldOverflow is returned by Pack when a field does not fit its width.
	ErrFieldOverflow = errors.New("euid: field overflow")

	// ErrExtensionOverflow is returned when an extension value does not fit
	// the requested extension length, or the length exceeds 15 bits.
	ErrExtensionOverflow = errors.New("euid: extension overflow")

	// ErrTimestampRangeExceeded is returned when the clock reads before the
	// epoch or more than 45 bits of milliseconds after it.
	ErrTimestampRangeExceeded = errors.New("euid: timestamp out of range")

	// ErrCounterOverflow is returned when the per-millisecond counter is
	// exhausted. The generator state is unchanged; retry once the clock
	// has advanced.
	ErrCounterOverflow = errors.New("euid: counter overflow within millisecond")

	// ErrClockUnavailable wraps a failure of the configured Clock.
	ErrClockUnavailable = errors.New("euid: clock unavailable")

	// ErrRandomSourceUnavailable wraps a failure of the entropy reader.
	ErrRandomSourceUnavailable = errors.New("euid: random source unavailable")
)

// Decoding errors.
var (
	ErrMalformedLength  = errors.New("euid: malformed length")
	ErrInvalidSymbol    = errors.New("euid: invalid symbol")
	ErrChecksumMismatch = errors.New("euid: checksum mismatch")

	// ErrScanValue is returned by Scan for unsupported source types.
	ErrScanValue = errors.New("euid: source value must be a string or byte slice")
)
