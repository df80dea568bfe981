package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/railbook?sslmode=disable")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "5000", cfg.Server.Port)
		assert.Equal(t, "development", cfg.Server.Environment)
		assert.Equal(t, 10, cfg.Database.MaxConnections)
		assert.Equal(t, 300*time.Second, cfg.Database.ConnMaxLifetime)
		assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
		assert.Equal(t, 10, cfg.Security.BcryptCost)
		assert.True(t, cfg.Security.EnableRequestLog)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/railbook?sslmode=disable")
		t.Setenv("PORT", "8080")
		t.Setenv("BCRYPT_COST", "12")
		t.Setenv("ENABLE_REQUEST_LOGGING", "false")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 12, cfg.Security.BcryptCost)
		assert.False(t, cfg.Security.EnableRequestLog)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("Invalid Int Falls Back To Default", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/railbook?sslmode=disable")
		t.Setenv("DATABASE_MAX_CONNECTIONS", "lots")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 10, cfg.Database.MaxConnections)
	})

	t.Run("Missing Database URL", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATABASE_URL")
	})

	t.Run("Bcrypt Cost Out Of Range", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost:5432/railbook?sslmode=disable")
		t.Setenv("BCRYPT_COST", "99")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "BCRYPT_COST")
	})
}
