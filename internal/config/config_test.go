package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/gamehub")
	t.Setenv("JWT_SECRET", "test-secret")
	// Clear optional keys so ambient environment cannot leak into the test.
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_TIMEOUT_SECONDS", "JWT_ISSUER", "JWT_TTL_MINUTES", "JWT_LEEWAY_SECONDS", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 5*time.Second, cfg.DBTimeout)
	assert.Equal(t, "gamehub-backend", cfg.JWTIssuer)
	assert.Equal(t, 60*time.Minute, cfg.JWTTTL)
	assert.Equal(t, time.Duration(0), cfg.JWTLeeway)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, ":8080", cfg.HTTPAddress())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "3001")
	t.Setenv("DB_DRIVER", "MySQL")
	t.Setenv("DB_TIMEOUT_SECONDS", "2")
	t.Setenv("JWT_TTL_MINUTES", "15")
	t.Setenv("JWT_LEEWAY_SECONDS", "30")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://gamehub.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, DriverMySQL, cfg.DBDriver)
	assert.Equal(t, 2*time.Second, cfg.DBTimeout)
	assert.Equal(t, 15*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 30*time.Second, cfg.JWTLeeway)
	assert.Equal(t, []string{"http://localhost:3000", "https://gamehub.example"}, cfg.CORSOrigins)
}

func TestLoad_InvalidTTLFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 60*time.Minute, cfg.JWTTTL)
}

func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/gamehub")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	setRequired(t)
	t.Setenv("DB_DRIVER", "oracle")

	_, err := Load()
	assert.Error(t, err)
}
