package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fgcplatform/identity/internal/domain/entity"
	"github.com/fgcplatform/identity/internal/domain/event"
	"github.com/fgcplatform/identity/internal/domain/valueobject"
)

var (
	// ErrNotFound is returned when a user id or email does not resolve.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateEmail is the translation of a unique-email constraint
	// violation at the storage layer.
	ErrDuplicateEmail = errors.New("email already in use")
)

// UserRepository is the persistence boundary for the User aggregate.
// Save is an upsert by id; Delete deactivates, it never removes rows.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error)
	Save(ctx context.Context, u *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UniquenessChecker answers the cross-cutting "no two users share an email"
// rule, typically backed by ExistsByEmail.
type UniquenessChecker interface {
	IsEmailTaken(ctx context.Context, email valueobject.Email) (bool, error)
}

// EventSink receives drained domain events. Fire-and-forget: implementations
// log their own failures and never propagate them into the use case.
type EventSink interface {
	Publish(ctx context.Context, evt event.Event)
}
