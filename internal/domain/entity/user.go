package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fgcplatform/identity/internal/domain/event"
	"github.com/fgcplatform/identity/internal/domain/valueobject"
)

const maxNameLength = 100

const (
	ErrNameEmpty   = valueobject.ValidationError("name cannot be empty")
	ErrNameTooLong = valueobject.ValidationError("name too long, max 100 characters")
)

// User is the aggregate root. Mutations record domain events; the
// application layer persists the aggregate, publishes the events, then
// clears them. Cross-user rules (email uniqueness, admin authorization,
// redundant state transitions) are enforced by the use cases, not here.
type User struct {
	ID           uuid.UUID
	Email        valueobject.Email
	PasswordHash string
	Name         string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time

	events []event.Event
}

// NewUser creates a regular active user and records a creation event.
func NewUser(email valueobject.Email, passwordHash, name string) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	u := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	u.record(event.NewUserCreated(u.ID, u.Email.Value(), u.Name, u.CreatedAt))
	return u, nil
}

// NewAdmin creates an active admin user. The caller must have already
// verified that createdBy is an active admin.
func NewAdmin(email valueobject.Email, passwordHash, name string, createdBy uuid.UUID) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	u := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	u.record(event.NewAdminCreated(u.ID, u.Email.Value(), u.Name, createdBy, u.CreatedAt))
	return u, nil
}

// Rehydrate rebuilds a persisted user without recording events.
func Rehydrate(id uuid.UUID, email valueobject.Email, passwordHash, name string, role Role, isActive bool, createdAt time.Time, lastLoginAt *time.Time) *User {
	return &User{
		ID:           id,
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
		Role:         role,
		IsActive:     isActive,
		CreatedAt:    createdAt,
		LastLoginAt:  lastLoginAt,
	}
}

func (u *User) CanLogin() bool { return u.IsActive }

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// RecordLogin stamps LastLoginAt. The caller must have verified the user
// is active and the credentials match.
func (u *User) RecordLogin() {
	now := time.Now().UTC()
	u.LastLoginAt = &now
	u.record(event.NewUserAuthenticated(u.ID, u.Email.Value(), now))
}

// ChangePassword swaps in a new hash. Current-password verification and
// the active check belong to the caller.
func (u *User) ChangePassword(newHash string) {
	u.PasswordHash = newHash
	u.record(event.NewPasswordChanged(u.ID, u.Email.Value(), time.Now().UTC()))
}

func (u *User) Deactivate() {
	u.IsActive = false
	u.record(event.NewUserDeactivated(u.ID, u.Email.Value(), time.Now().UTC()))
}

func (u *User) Reactivate() {
	u.IsActive = true
	u.record(event.NewUserReactivated(u.ID, u.Email.Value(), time.Now().UTC()))
}

func (u *User) PromoteToAdmin() {
	u.Role = RoleAdmin
	u.record(event.NewUserPromoted(u.ID, u.Email.Value(), time.Now().UTC()))
}

func (u *User) DemoteToUser() {
	u.Role = RoleUser
	u.record(event.NewUserDemoted(u.ID, u.Email.Value(), time.Now().UTC()))
}

// Events returns a copy of the pending events.
func (u *User) Events() []event.Event {
	out := make([]event.Event, len(u.events))
	copy(out, u.events)
	return out
}

func (u *User) ClearEvents() { u.events = nil }

func (u *User) record(evt event.Event) { u.events = append(u.events, evt) }

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameEmpty
	}
	if len(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}
