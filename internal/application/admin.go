package application

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fgcplatform/identity/internal/domain/entity"
	repo "github.com/fgcplatform/identity/internal/domain/repository"
	"github.com/fgcplatform/identity/internal/domain/valueobject"
	"github.com/fgcplatform/identity/pkg/helpers"
)

// requireActiveAdmin loads the acting user and verifies it may perform
// admin-only operations.
func (s *Service) requireActiveAdmin(ctx context.Context, actorID uuid.UUID) (*entity.User, error) {
	actor, err := s.Repo.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrAdminRequired
		}
		return nil, err
	}
	if !actor.IsAdmin() {
		return nil, ErrAdminRequired
	}
	if !actor.IsActive {
		return nil, ErrInactiveAdmin
	}
	return actor, nil
}

// CreateAdmin creates a new admin user on behalf of an existing active admin.
func (s *Service) CreateAdmin(ctx context.Context, actorID uuid.UUID, rawEmail, rawPassword, name string) (*UserProjection, error) {
	actor, err := s.requireActiveAdmin(ctx, actorID)
	if err != nil {
		return nil, err
	}

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
	admin, err := entity.NewAdmin(email, hash, name, actor.ID)
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Save(ctx, admin); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	s.publishEvents(ctx, admin)
	s.indexUser(ctx, admin)
	return project(admin), nil
}

// PromoteToAdmin raises an active user to admin.
func (s *Service) PromoteToAdmin(ctx context.Context, actorID, targetID uuid.UUID) (*UserProjection, error) {
	if _, err := s.requireActiveAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	target, err := s.Repo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !target.IsActive {
		return nil, ErrInactiveTarget
	}

	target.PromoteToAdmin()
	if err := s.Repo.Save(ctx, target); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, target)
	s.invalidateProfile(ctx, target.ID)
	s.indexUser(ctx, target)
	return project(target), nil
}

// DemoteToUser lowers an active admin back to a regular user. An admin
// cannot demote itself.
func (s *Service) DemoteToUser(ctx context.Context, actorID, targetID uuid.UUID) (*UserProjection, error) {
	if _, err := s.requireActiveAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if actorID == targetID {
		return nil, ErrSelfDemotion
	}

	target, err := s.Repo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !target.IsActive {
		return nil, ErrInactiveTarget
	}
	if !target.IsAdmin() {
		return nil, ErrNotAnAdmin
	}

	target.DemoteToUser()
	if err := s.Repo.Save(ctx, target); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, target)
	s.invalidateProfile(ctx, target.ID)
	s.indexUser(ctx, target)
	return project(target), nil
}

// DeactivateUser soft-disables a user. Redundant transitions conflict.
func (s *Service) DeactivateUser(ctx context.Context, actorID, targetID uuid.UUID) (*UserProjection, error) {
	if _, err := s.requireActiveAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	target, err := s.Repo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if !target.IsActive {
		return nil, ErrAlreadyInactive
	}

	target.Deactivate()
	if err := s.Repo.Save(ctx, target); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, target)
	s.invalidateProfile(ctx, target.ID)
	s.indexUser(ctx, target)
	return project(target), nil
}

// ReactivateUser re-enables a previously deactivated user.
func (s *Service) ReactivateUser(ctx context.Context, actorID, targetID uuid.UUID) (*UserProjection, error) {
	if _, err := s.requireActiveAdmin(ctx, actorID); err != nil {
		return nil, err
	}

	target, err := s.Repo.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if target.IsActive {
		return nil, ErrAlreadyActive
	}

	target.Reactivate()
	if err := s.Repo.Save(ctx, target); err != nil {
		return nil, err
	}
	s.publishEvents(ctx, target)
	s.invalidateProfile(ctx, target.ID)
	s.indexUser(ctx, target)
	return project(target), nil
}
