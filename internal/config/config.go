package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything the process needs at startup. All values come
// from environment variables; cmd/server loads a .env file first when one
// is present.
type Config struct {
	Port string

	// Store selection. Driver is one of "postgres", "sqlite", "memory".
	// The choice is made once in main; the data layer never branches on it.
	DatabaseDriver string
	DatabaseURL    string
	SQLitePath     string

	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	NATSURL string

	RateLimitRPS    int
	RateLimitBurst  int
	AuthLimitWindow time.Duration
	AuthLimitMax    int

	LogLevel string
}

func Load() *Config {
	cfg := &Config{
		Port:            GetEnvAsString("PORT", "3000"),
		DatabaseDriver:  GetEnvAsString("DATABASE_DRIVER", ""),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SQLitePath:      GetEnvAsString("SQLITE_PATH", "cragfeed.db"),
		JWTSecret:       GetEnvAsString("JWT_SECRET", "your-secret-key-change-in-production"),
		JWTTTL:          GetEnvAsDuration("JWT_TTL", 7*24*time.Hour),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         GetEnvAsInt("REDIS_DB", 0),
		NATSURL:         os.Getenv("NATS_URL"),
		RateLimitRPS:    GetEnvAsInt("RATE_LIMIT_RPS", 50),
		RateLimitBurst:  GetEnvAsInt("RATE_LIMIT_BURST", 100),
		AuthLimitWindow: GetEnvAsDuration("AUTH_LIMIT_WINDOW", time.Minute),
		AuthLimitMax:    GetEnvAsInt("AUTH_LIMIT_MAX", 10),
		LogLevel:        GetEnvAsString("LOG_LEVEL", "info"),
	}

	// Mirror the original behavior: DATABASE_URL implies the real store,
	// its absence implies the in-memory one. DATABASE_DRIVER overrides.
	if cfg.DatabaseDriver == "" {
		if cfg.DatabaseURL != "" {
			cfg.DatabaseDriver = "postgres"
		} else {
			cfg.DatabaseDriver = "memory"
		}
	}

	return cfg
}

// GetEnvAsString gets environment variable as string with default value
func GetEnvAsString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsInt gets environment variable as int with default value
func GetEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// GetEnvAsDuration gets environment variable as duration with default value
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
