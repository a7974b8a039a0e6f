package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"cragfeed/internal/config"
	"cragfeed/internal/infrastructure/db/postgres"
	"cragfeed/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if cfg.DatabaseDriver == "memory" {
		logger.Fatal().Msg("seeding needs a persistent store; set DATABASE_URL or DATABASE_DRIVER=sqlite")
	}

	dsn := cfg.DatabaseURL
	if cfg.DatabaseDriver == "sqlite" {
		dsn = cfg.SQLitePath
	}

	db, err := postgres.Open(cfg.DatabaseDriver, dsn)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := postgres.AutoMigrate(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	gymRepo := postgres.NewGymRepository(db)

	if err := seed.Load(context.Background(), userRepo, gymRepo, sessionRepo); err != nil {
		logger.Fatal().Err(err).Msg("failed to seed database")
	}

	logger.Info().Msg("database seeded successfully")
}
