// Command seed bootstraps the first admin account. Registration only
// creates regular users and admin creation requires an existing admin,
// so a fresh deployment needs one seeded out of band.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/fgcplatform/identity/config"
	"github.com/fgcplatform/identity/internal/domain/valueobject"
	pginfra "github.com/fgcplatform/identity/internal/infrastructure/postgres"
	"github.com/fgcplatform/identity/pkg/helpers"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required, min 8 chars)")
	name := flag.String("name", "Administrator", "admin display name")
	flag.Parse()

	addr, err := valueobject.NewEmail(*email)
	if err != nil {
		log.Fatalf("invalid email: %v", err)
	}
	pwd, err := valueobject.NewPassword(*password)
	if err != nil {
		log.Fatalf("invalid password: %v", err)
	}

	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	hash, err := helpers.HashPassword(pwd.Value())
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	id := uuid.New()
	tag, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, name, role, is_active, created_at)
		VALUES ($1, $2, $3, $4, 'admin', TRUE, NOW())
		ON CONFLICT (email) DO NOTHING`,
		id, addr.Value(), hash, *name,
	)
	if err != nil {
		log.Fatalf("failed to insert admin: %v", err)
	}
	if tag.RowsAffected() == 0 {
		log.Printf("admin %s already exists, nothing to do", addr.Value())
		return
	}
	log.Printf("seeded admin %s with id %s", addr.Value(), id)
}
