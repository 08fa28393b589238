// Command createadmin bootstraps (or resets) the single admin account.
// Admins cannot be created through the public API.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/medcore/hospital-api/config"
	"github.com/medcore/hospital-api/internal/model"
	"github.com/medcore/hospital-api/internal/repository/postgres"
	"github.com/medcore/hospital-api/pkg/apperror"
	"github.com/medcore/hospital-api/pkg/security"
)

func main() {
	email := flag.String("email", envOr("ADMIN_EMAIL", "admin@hospital.local"), "admin email")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "admin password")
	name := flag.String("name", envOr("ADMIN_NAME", "Administrator"), "admin display name")
	flag.Parse()

	if *password == "" {
		log.Fatal().Msg("admin password is required (-password or ADMIN_PASSWORD)")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userRepo := postgres.NewUserRepository(db)
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)

	hash, err := hasher.Hash(*password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}

	existing, err := userRepo.GetByEmail(ctx, *email)
	switch {
	case err == nil:
		if existing.Role != model.RoleAdmin {
			log.Fatal().Str("email", *email).Str("role", string(existing.Role)).
				Msg("account exists with a non-admin role")
		}
		if err := userRepo.UpdatePasswordHash(ctx, existing.ID, hash); err != nil {
			log.Fatal().Err(err).Msg("failed to update admin password")
		}
		log.Info().Str("email", *email).Msg("admin password updated")

	case apperror.Is(err, apperror.CodeNotFound):
		user := &model.User{
			Name:         *name,
			Email:        *email,
			PasswordHash: hash,
			Role:         model.RoleAdmin,
		}
		if err := userRepo.CreateAdmin(ctx, user); err != nil {
			log.Fatal().Err(err).Msg("failed to create admin")
		}
		log.Info().Str("email", *email).Str("id", user.ID.String()).Msg("admin created")

	default:
		log.Fatal().Err(err).Msg("failed to look up admin account")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
