package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_DRIVER", "DATABASE_URL", "JWT_TTL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "memory", cfg.DatabaseDriver)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 50, cfg.RateLimitRPS)
	assert.Equal(t, time.Minute, cfg.AuthLimitWindow)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadInfersPostgresFromDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/cragfeed")

	cfg := Load()
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
}

func TestLoadDriverOverride(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/cragfeed")
	t.Setenv("SQLITE_PATH", "test.db")

	cfg := Load()
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "test.db", cfg.SQLitePath)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("SOME_INT", "17")
	t.Setenv("BAD_INT", "seventeen")
	t.Setenv("SOME_DURATION", "90s")

	assert.Equal(t, 17, GetEnvAsInt("SOME_INT", 5))
	assert.Equal(t, 5, GetEnvAsInt("BAD_INT", 5))
	assert.Equal(t, 5, GetEnvAsInt("UNSET_INT", 5))
	assert.Equal(t, 90*time.Second, GetEnvAsDuration("SOME_DURATION", time.Minute))
	assert.Equal(t, time.Minute, GetEnvAsDuration("UNSET_DURATION", time.Minute))
}
