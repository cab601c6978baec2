package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("API_PREFIX", "")
	t.Setenv("DATABASE_DRIVER", "")

	cfg := Load()

	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/media", cfg.MediaURLPath)
	assert.Equal(t, time.Hour, cfg.AccessTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_PREFIX", "v1/")
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://lawfirm@localhost/lawfirm")
	t.Setenv("ACCESS_TOKEN_TTL", "5m")
	t.Setenv("MAX_BODY_BYTES", "2048")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/v1", cfg.APIPrefix)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://lawfirm@localhost/lawfirm", cfg.Database.URL)
	assert.Equal(t, 5*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}
