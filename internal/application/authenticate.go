package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/fgcplatform/identity/internal/domain/entity"
	repo "github.com/fgcplatform/identity/internal/domain/repository"
	"github.com/fgcplatform/identity/internal/domain/valueobject"
	"github.com/fgcplatform/identity/pkg/helpers"
)

// LoginResult bundles the authenticated projection with its bearer token.
type LoginResult struct {
	User      *UserProjection `json:"user"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// Authenticate verifies credentials and records the login. Unknown email
// and wrong password fail identically to avoid user enumeration; an
// inactive user fails distinctly even with correct credentials.
func (s *Service) Authenticate(ctx context.Context, rawEmail, rawPassword string) (*entity.User, error) {
	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !u.CanLogin() {
		return nil, ErrInactiveUser
	}
	if !helpers.PasswordMatches(u.PasswordHash, rawPassword) {
		return nil, ErrInvalidCredentials
	}

	u.RecordLogin()
	if err := s.Repo.Save(ctx, u); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, u)
	s.invalidateProfile(ctx, u.ID)
	return u, nil
}

// Login composes Authenticate with token issuance.
func (s *Service) Login(ctx context.Context, rawEmail, rawPassword string) (*LoginResult, error) {
	u, err := s.Authenticate(ctx, rawEmail, rawPassword)
	if err != nil {
		return nil, err
	}
	token, exp, err := s.Tokens.Issue(u)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("token issuance failed")
		}
		return nil, err
	}
	return &LoginResult{User: project(u), Token: token, ExpiresAt: exp}, nil
}

// ChangePassword replaces the password of an active user after verifying
// the current one.
func (s *Service) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) (*UserProjection, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !u.IsActive {
		return nil, ErrInactiveUser
	}
	if !helpers.PasswordMatches(u.PasswordHash, currentPassword) {
		return nil, ErrWrongPassword
	}

	password, err := valueobject.NewPassword(newPassword)
	if err != nil {
		return nil, err
	}
	hash, err := helpers.HashPassword(password.Value())
	if err != nil {
		return nil, err
	}

	u.ChangePassword(hash)
	if err := s.Repo.Save(ctx, u); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, u)
	s.invalidateProfile(ctx, u.ID)
	return project(u), nil
}
