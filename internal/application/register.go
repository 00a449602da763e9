package application

import (
	"context"
	"errors"

	"github.com/fgcplatform/identity/internal/domain/entity"
	repo "github.com/fgcplatform/identity/internal/domain/repository"
	"github.com/fgcplatform/identity/internal/domain/valueobject"
	"github.com/fgcplatform/identity/pkg/helpers"
)

// Register creates a regular user. The uniqueness check runs up front; a
// concurrent save that still trips the unique constraint is translated
// into the same conflict.
func (s *Service) Register(ctx context.Context, rawEmail, rawPassword, name string) (*UserProjection, error) {
	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	password, err := valueobject.NewPassword(rawPassword)
	if err != nil {
		return nil, err
	}

	taken, err := s.Uniq.IsEmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(password.Value())
	if err != nil {
		return nil, err
	}
	u, err := entity.NewUser(email, hash, name)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Save(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.publishEvents(ctx, u)
	s.indexUser(ctx, u)
	return project(u), nil
}
