package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/renaldy/spaces-api/internal/config"
	"github.com/renaldy/spaces-api/internal/repository/postgres"
	"github.com/rs/zerolog/log"
)

// Applies migrations/*.sql to the configured postgres database. The
// sqlite driver creates its own schema at startup and needs no runner.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.Database.Driver != "postgres" {
		log.Fatal().Str("driver", cfg.Database.Driver).Msg("Migrations only target the postgres driver")
	}

	sourceURL := os.Getenv("MIGRATIONS_URL")
	if sourceURL == "" {
		sourceURL = "file://migrations"
	}

	fmt.Printf("Applying migrations from %s to %s:%d...\n",
		sourceURL, cfg.Database.Postgres.Host, cfg.Database.Postgres.Port)

	if err := postgres.RunMigrations(cfg.Database.Postgres.DSN(), sourceURL); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
