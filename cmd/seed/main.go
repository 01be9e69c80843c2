// Command seed applies the schema and provisions the first superuser
// along with a few phone numbers for local development.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/telcharge/telcharge-api/internal/config"
	"github.com/telcharge/telcharge-api/internal/domain/account"
	"github.com/telcharge/telcharge-api/internal/domain/phone"
	"github.com/telcharge/telcharge-api/internal/pkg/database"
	"github.com/telcharge/telcharge-api/internal/pkg/logger"
	"github.com/telcharge/telcharge-api/internal/pkg/password"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env})

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	schema, err := os.ReadFile("migrations/001_init.sql")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read schema")
	}
	if _, err := db.Exec(string(schema)); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply schema")
	}

	ctx := context.Background()
	accountRepo := account.NewRepository(db)

	superEmail := envOr("FIRST_SUPERUSER", "admin@telcharge.local")
	superPassword := envOr("FIRST_SUPERUSER_PASSWORD", "changethis")

	if _, err := accountRepo.GetByEmail(ctx, superEmail); errors.Is(err, account.ErrNotFound) {
		hash, err := password.Hash(superPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to hash superuser password")
		}

		acct := &account.Account{
			ID:           uuid.New(),
			Email:        superEmail,
			PasswordHash: hash,
			FullName:     "Superuser",
			IsActive:     true,
			IsSuperuser:  true,
		}
		if err := accountRepo.Create(ctx, acct); err != nil {
			log.Fatal().Err(err).Msg("Failed to create superuser")
		}
		log.Info().Str("email", superEmail).Msg("Superuser created")
	}

	phoneRepo := phone.NewRepository(db)
	for _, seed := range []phone.PhoneNumber{
		{Number: "9120000001", Title: "demo line 1", IsActive: true},
		{Number: "9120000002", Title: "demo line 2", IsActive: true},
		{Number: "9120000003", Title: "retired line", IsActive: false},
	} {
		p := seed
		if err := phoneRepo.Create(ctx, &p); err != nil {
			if errors.Is(err, phone.ErrNumberTaken) {
				continue
			}
			log.Fatal().Err(err).Str("number", p.Number).Msg("Failed to seed phone number")
		}
		log.Info().Str("number", p.Number).Msg("Phone number seeded")
	}

	log.Info().Msg("Seed complete")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
