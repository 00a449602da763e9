package postgres

import (
	"context"

	"github.com/fgcplatform/identity/internal/domain/repository"
	"github.com/fgcplatform/identity/internal/domain/valueobject"
)

// EmailUniquenessChecker backs the uniqueness rule with ExistsByEmail.
type EmailUniquenessChecker struct {
	repo repository.UserRepository
}

func NewEmailUniquenessChecker(repo repository.UserRepository) *EmailUniquenessChecker {
	return &EmailUniquenessChecker{repo: repo}
}

func (c *EmailUniquenessChecker) IsEmailTaken(ctx context.Context, email valueobject.Email) (bool, error) {
	return c.repo.ExistsByEmail(ctx, email)
}

var _ repository.UniquenessChecker = (*EmailUniquenessChecker)(nil)
