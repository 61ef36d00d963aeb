// Command seed populates the users table with sample accounts for local
// development. Existing emails are left untouched, so the command is safe to
// run repeatedly.
package main

import (
	"context"
	"errors"
	"log"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"user_backend/internal/feature/auth/domain/entity"
	"user_backend/internal/feature/users/adapters"
	"user_backend/internal/feature/users/usecase"
	"user_backend/internal/platform/config"
	infradb "user_backend/internal/platform/db"
)

// defaultPassword is the password for every seeded account.
const defaultPassword = "12345678"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	db := infradb.OpenDB(cfg.DB, true)
	repo := adapters.NewUserMySQL(db)

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	seeds := []entity.User{
		{Name: "Alice Example", Email: "alice@example.com"},
		{Name: "Bob Example", Email: "bob@example.com"},
		{Name: "Carol Example", Email: "carol@example.com"},
		{Name: "Dave Example", Email: "dave@example.com"},
		{Name: "Erin Example", Email: "erin@example.com"},
	}

	ctx := context.Background()
	for _, seed := range seeds {
		seed.Password = string(hashed)
		if err := repo.Create(ctx, &seed); err != nil {
			if errors.Is(err, usecase.ErrEmailAlreadyExists) {
				log.Printf("skip existing user: %s", seed.Email)
				continue
			}
			log.Fatalf("failed to seed user %s: %v", seed.Email, err)
		}
		log.Printf("seeded user: %s", seed.Email)
	}
}
