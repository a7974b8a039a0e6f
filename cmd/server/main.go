package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"cragfeed/internal/application/services"
	"cragfeed/internal/config"
	"cragfeed/internal/delivery/httpapi"
	"cragfeed/internal/domain/repositories"
	"cragfeed/internal/infrastructure"
	"cragfeed/internal/infrastructure/db/memory"
	"cragfeed/internal/infrastructure/db/postgres"
	"cragfeed/internal/seed"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()

	var (
		userRepo    repositories.UserRepository
		sessionRepo repositories.SessionRepository
		gymRepo     repositories.GymRepository
	)

	switch cfg.DatabaseDriver {
	case "memory":
		store := memory.NewStore()
		userRepo = memory.NewUserRepository(store)
		sessionRepo = memory.NewSessionRepository(store)
		gymRepo = memory.NewGymRepository(store)

		// The in-memory store starts empty on every boot; load the
		// sample data so the feed has something to show.
		if err := seed.Load(context.Background(), userRepo, gymRepo, sessionRepo); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed in-memory store")
		}
		logger.Info().Msg("using in-memory store")

	case "postgres", "sqlite":
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

		userRepo = postgres.NewUserRepository(db)
		sessionRepo = postgres.NewSessionRepository(db)
		gymRepo = postgres.NewGymRepository(db)
		logger.Info().Str("driver", cfg.DatabaseDriver).Msg("connected to database")

	default:
		logger.Fatal().Str("driver", cfg.DatabaseDriver).Msg("unknown database driver")
	}

	cache := infrastructure.NewRedisService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, logger)

	events, err := infrastructure.NewEventPublisher(cfg.NATSURL, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to NATS")
	}
	defer events.Close()

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.JWTTTL)
	authLimiter := infrastructure.NewRateLimiter(cfg.AuthLimitWindow, cfg.AuthLimitMax)
	apiLimiter := rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	userService := services.NewUserService(userRepo, jwtService, cache, authLimiter, logger)
	sessionService := services.NewSessionService(sessionRepo, cache, events, logger)
	gymService := services.NewGymService(gymRepo)

	e := httpapi.NewRouter(userService, sessionService, gymService, jwtService, apiLimiter, logger)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()
	logger.Info().Str("port", cfg.Port).Msg("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
	}
}
