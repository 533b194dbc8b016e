package euid

import "time"

// Clock reports the current time. Implementations return an error when
// the time cannot be read; the Generator surfaces it as
// ErrClockUnavailable.
type Clock interface {
	Now() (time.Time, error)
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() (time.Time, error)

// Now calls f.
func (f ClockFunc) Now() (time.Time, error) {
	return f()
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() (time.Time, error) {
	return time.Now(), nil
}
