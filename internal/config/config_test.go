package config_test

import (
	"testing"
	"time"

	"go-diamond-payroll/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("PORT", "8080")
		t.Setenv("APP_ENV", "production")
		t.Setenv("DB_HOST", "db")
		t.Setenv("MINIO_USE_SSL", "true")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.True(t, cfg.App.IsProduction())
		assert.Equal(t, "db", cfg.Database.Host)
		assert.True(t, cfg.MinIO.UseSSL)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")

		cfg, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "5432", cfg.Database.Port)
		assert.Equal(t, 3*time.Second, cfg.Kafka.PollInterval)
		assert.Equal(t, "salary-receipts", cfg.MinIO.Bucket)
		assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTokenExpire)
		assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTokenExpire)
		assert.Contains(t, cfg.Database.DSN(), "sslmode=disable")
	})

	t.Run("requires jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()
		assert.EqualError(t, err, "JWT_SECRET is required")
	})
}
