package euid

import (
	"database/sql/driver"
	"fmt"
)

// Scan implements sql.Scanner. It accepts the text form as a string or
// byte slice, the 16-byte binary form, or NULL (which yields Nil).
func (id *ID) Scan(src any) error {
	switch x := src.(type) {
	case nil:
		*id = Nil
		return nil
	case string:
		return id.UnmarshalText([]byte(x))
	case []byte:
		if len(x) == Size {
			return id.UnmarshalBinary(x)
		}
		return id.UnmarshalText(x)
	}
	return fmt.Errorf("%w: got %T", ErrScanValue, src)
}

// Value implements driver.Valuer, storing the canonical text form.
func (id ID) Value() (driver.Value, error) {
	return id.String(), nil
}
