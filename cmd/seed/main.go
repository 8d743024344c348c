package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/autanasoft/accounts-api/config"
	"github.com/autanasoft/accounts-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hasher := helpers.NewPasswordHasher(cfg.BcryptCost)

	seed := []struct {
		email    string
		userName string
		password string
		status   string
		role     string
	}{
		{"owner@example.com", "site_owner", "Ch4nge@Me!", "ACTIVE", "ADMIN"},
		{"sample@example.com", "sample_user", "S4mple@Pass!", "REGISTERED", "USER"},
	}

	for _, s := range seed {
		hash, err := hasher.Hash(s.password)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		var id string
		err = db.QueryRow(`
			INSERT INTO users (email, user_name, password, status, role)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (lower(email)) DO UPDATE SET user_name = EXCLUDED.user_name, updated_at = now()
			RETURNING id
		`, s.email, s.userName, hash, s.status, s.role).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", s.email, err)
		}
		fmt.Printf("seeded user: id=%s email=%s userName=%s role=%s\n", id, s.email, s.userName, s.role)
	}
}
