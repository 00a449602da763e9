package valueobject

import "strings"

const (
	ErrPasswordEmpty    = ValidationError("password cannot be empty")
	ErrPasswordTooShort = ValidationError("password too short, min 8 characters")
)

const minPasswordLength = 8

// Password is a validated plain-text password. It exists only in memory
// between request binding and hashing; the aggregate stores a bcrypt hash.
type Password struct {
	value string
}

func NewPassword(raw string) (Password, error) {
	if strings.TrimSpace(raw) == "" {
		return Password{}, ErrPasswordEmpty
	}
	if len(raw) < minPasswordLength {
		return Password{}, ErrPasswordTooShort
	}
	return Password{value: raw}, nil
}

func (p Password) Value() string  { return p.value }
func (p Password) String() string { return p.value }

func (p Password) Equals(other Password) bool { return p.value == other.value }
