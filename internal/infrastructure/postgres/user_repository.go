package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fgcplatform/identity/internal/domain/entity"
	"github.com/fgcplatform/identity/internal/domain/repository"
	"github.com/fgcplatform/identity/internal/domain/valueobject"
)

const uniqueViolationCode = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, password_hash, name, role, is_active, created_at, last_login_at`

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE id = $1
	`, id)
	return scanUser(row)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+`
		FROM users
		WHERE email = $1
	`, email.Value())
	return scanUser(row)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)
	`, email.Value()).Scan(&exists)
	return exists, err
}

// Save upserts by id. A unique-email violation is translated into
// repository.ErrDuplicateEmail rather than surfacing the driver error.
func (r *UserRepository) Save(ctx context.Context, u *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, role, is_active, created_at, last_login_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			password_hash = EXCLUDED.password_hash,
			name = EXCLUDED.name,
			role = EXCLUDED.role,
			is_active = EXCLUDED.is_active,
			last_login_at = EXCLUDED.last_login_at
	`, u.ID, u.Email.Value(), u.PasswordHash, u.Name, u.Role.String(), u.IsActive, u.CreatedAt, u.LastLoginAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return repository.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Delete deactivates; rows are never physically removed.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET is_active = FALSE WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var (
		id           uuid.UUID
		rawEmail     string
		passwordHash string
		name         string
		roleCode     string
		isActive     bool
		createdAt    time.Time
		lastLoginAt  *time.Time
	)
	if err := row.Scan(&id, &rawEmail, &passwordHash, &name, &roleCode, &isActive, &createdAt, &lastLoginAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	role, err := entity.ParseRole(roleCode)
	if err != nil {
		return nil, err
	}
	return entity.Rehydrate(id, email, passwordHash, name, role, isActive, createdAt, lastLoginAt), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
