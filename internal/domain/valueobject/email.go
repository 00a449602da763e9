package valueobject

import (
	"regexp"
	"strings"
)

// ValidationError marks input errors the caller can fix. Handlers map it to 400.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

const (
	ErrEmailEmpty   = ValidationError("email cannot be empty")
	ErrEmailTooLong = ValidationError("email too long, max 254 characters")
	ErrEmailFormat  = ValidationError("invalid email format")
)

const maxEmailLength = 254

// single @, no whitespace on either side of it
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+$`)

// Email is a normalized (trimmed, lower-cased) email address.
// The zero value is invalid; construct via NewEmail.
type Email struct {
	value string
}

// NewEmail validates and normalizes raw. Checks run in order:
// emptiness, then length, then shape.
func NewEmail(raw string) (Email, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Email{}, ErrEmailEmpty
	}
	if len(trimmed) > maxEmailLength {
		return Email{}, ErrEmailTooLong
	}
	if !emailPattern.MatchString(trimmed) {
		return Email{}, ErrEmailFormat
	}
	return Email{value: strings.ToLower(trimmed)}, nil
}

func (e Email) Value() string  { return e.value }
func (e Email) String() string { return e.value }

func (e Email) Equals(other Email) bool { return e.value == other.value }
