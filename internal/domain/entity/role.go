package entity

import "fmt"

// Role is the closed set of authorization roles. It is persisted as a text
// code; unknown codes are rejected on read rather than silently defaulted.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }

func ParseRole(code string) (Role, error) {
	switch code {
	case string(RoleUser):
		return RoleUser, nil
	case string(RoleAdmin):
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role code %q", code)
	}
}
