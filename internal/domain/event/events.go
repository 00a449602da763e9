package event

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable fact recorded by aggregate mutations. Events are
// drained by the application layer after persistence and handed to sinks;
// they are best-effort notifications, not a durable log.
type Event interface {
	EventID() uuid.UUID
	Name() string
	OccurredAt() time.Time
}

type base struct {
	id uuid.UUID
	at time.Time
}

func newBase() base {
	return base{id: uuid.New(), at: time.Now().UTC()}
}

func (b base) EventID() uuid.UUID    { return b.id }
func (b base) OccurredAt() time.Time { return b.at }

type UserCreated struct {
	base
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	UserName  string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUserCreated(userID uuid.UUID, email, name string, createdAt time.Time) UserCreated {
	return UserCreated{base: newBase(), UserID: userID, Email: email, UserName: name, CreatedAt: createdAt}
}

func (UserCreated) Name() string { return "user.created" }

type AdminCreated struct {
	base
	NewAdminID       uuid.UUID `json:"new_admin_id"`
	Email            string    `json:"email"`
	UserName         string    `json:"name"`
	CreatedByAdminID uuid.UUID `json:"created_by_admin_id"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewAdminCreated(newAdminID uuid.UUID, email, name string, createdBy uuid.UUID, createdAt time.Time) AdminCreated {
	return AdminCreated{base: newBase(), NewAdminID: newAdminID, Email: email, UserName: name, CreatedByAdminID: createdBy, CreatedAt: createdAt}
}

func (AdminCreated) Name() string { return "admin.created" }

type UserAuthenticated struct {
	base
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	LoginAt time.Time `json:"login_at"`
}

func NewUserAuthenticated(userID uuid.UUID, email string, loginAt time.Time) UserAuthenticated {
	return UserAuthenticated{base: newBase(), UserID: userID, Email: email, LoginAt: loginAt}
}

func (UserAuthenticated) Name() string { return "user.authenticated" }

type PasswordChanged struct {
	base
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	ChangedAt time.Time `json:"changed_at"`
}

func NewPasswordChanged(userID uuid.UUID, email string, changedAt time.Time) PasswordChanged {
	return PasswordChanged{base: newBase(), UserID: userID, Email: email, ChangedAt: changedAt}
}

func (PasswordChanged) Name() string { return "user.password_changed" }

type UserDeactivated struct {
	base
	UserID        uuid.UUID `json:"user_id"`
	Email         string    `json:"email"`
	DeactivatedAt time.Time `json:"deactivated_at"`
}

func NewUserDeactivated(userID uuid.UUID, email string, at time.Time) UserDeactivated {
	return UserDeactivated{base: newBase(), UserID: userID, Email: email, DeactivatedAt: at}
}

func (UserDeactivated) Name() string { return "user.deactivated" }

type UserReactivated struct {
	base
	UserID        uuid.UUID `json:"user_id"`
	Email         string    `json:"email"`
	ReactivatedAt time.Time `json:"reactivated_at"`
}

func NewUserReactivated(userID uuid.UUID, email string, at time.Time) UserReactivated {
	return UserReactivated{base: newBase(), UserID: userID, Email: email, ReactivatedAt: at}
}

func (UserReactivated) Name() string { return "user.reactivated" }

type UserPromoted struct {
	base
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	PromotedAt time.Time `json:"promoted_at"`
}

func NewUserPromoted(userID uuid.UUID, email string, at time.Time) UserPromoted {
	return UserPromoted{base: newBase(), UserID: userID, Email: email, PromotedAt: at}
}

func (UserPromoted) Name() string { return "user.promoted" }

type UserDemoted struct {
	base
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	DemotedAt time.Time `json:"demoted_at"`
}

func NewUserDemoted(userID uuid.UUID, email string, at time.Time) UserDemoted {
	return UserDemoted{base: newBase(), UserID: userID, Email: email, DemotedAt: at}
}

func (UserDemoted) Name() string { return "user.demoted" }
