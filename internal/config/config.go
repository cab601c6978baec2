package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig collects the settings needed to run the service.
type AppConfig struct {
	ListenAddr         string
	Port               string
	GinMode            string
	APIPrefix          string
	Database           DatabaseConfig
	MediaDir           string
	MediaURLPath       string
	MaxUploadBytes     int64
	MaxBodyBytes       int64
	JWTSecret          string
	JWTRefreshSecret   string
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
	CORSAllowedOrigins []string
	SuperRootUserName  string
	SuperRootPassword  string
}

// DatabaseConfig describes which store to open and how to size its pool.
type DatabaseConfig struct {
	Driver          string
	Path            string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Load reads configuration from the environment (and a .env file when one
// exists), falling back to development defaults for anything missing.
func Load() AppConfig {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("API_PREFIX", "/api")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_PATH", "data/lawfirm.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "1h")
	v.SetDefault("MEDIA_DIR", "media")
	v.SetDefault("MEDIA_URL_PATH", "/media")
	v.SetDefault("MAX_UPLOAD_BYTES", 5<<20)
	v.SetDefault("MAX_BODY_BYTES", 1<<20)
	v.SetDefault("JWT_SECRET", "lawfirm-dev-access-secret")
	v.SetDefault("JWT_REFRESH_SECRET", "lawfirm-dev-refresh-secret")
	v.SetDefault("ACCESS_TOKEN_TTL", "60m")
	v.SetDefault("REFRESH_TOKEN_TTL", "24h")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	port := strings.TrimSpace(v.GetString("PORT"))
	listenAddr := strings.TrimSpace(v.GetString("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	return AppConfig{
		ListenAddr: listenAddr,
		Port:       port,
		GinMode:    strings.TrimSpace(v.GetString("GIN_MODE")),
		APIPrefix:  normalizePrefix(v.GetString("API_PREFIX")),
		Database: DatabaseConfig{
			Driver:          strings.ToLower(strings.TrimSpace(v.GetString("DATABASE_DRIVER"))),
			Path:            strings.TrimSpace(v.GetString("DATABASE_PATH")),
			URL:             strings.TrimSpace(v.GetString("DATABASE_URL")),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		MediaDir:           strings.TrimSpace(v.GetString("MEDIA_DIR")),
		MediaURLPath:       normalizePrefix(v.GetString("MEDIA_URL_PATH")),
		MaxUploadBytes:     v.GetInt64("MAX_UPLOAD_BYTES"),
		MaxBodyBytes:       v.GetInt64("MAX_BODY_BYTES"),
		JWTSecret:          strings.TrimSpace(v.GetString("JWT_SECRET")),
		JWTRefreshSecret:   strings.TrimSpace(v.GetString("JWT_REFRESH_SECRET")),
		AccessTokenTTL:     v.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:    v.GetDuration("REFRESH_TOKEN_TTL"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		SuperRootUserName:  strings.TrimSpace(v.GetString("SUPER_ROOT_USER_NAME")),
		SuperRootPassword:  strings.TrimSpace(v.GetString("SUPER_ROOT_PASSWORD")),
	}
}

func normalizePrefix(raw string) string {
	trimmed := strings.Trim(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return ""
	}
	return "/" + trimmed
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
