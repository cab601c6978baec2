package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config describes the relational store backing the service.
type Config struct {
	Driver          string
	Path            string
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogLevel        logger.LogLevel
}

// Record is implemented by every persisted entity.
type Record interface {
	RecordID() uint
}

// Open connects to the configured store, sizes the connection pool and runs
// the schema migration. The returned handle is safe for concurrent use.
func Open(cfg Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if level == 0 {
		level = logger.Warn
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(level),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := Migrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return gdb, nil
}

// Migrate creates or updates the tables for every model.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&User{},
		&PracticeArea{},
		&TeamMember{},
		&NewsArticle{},
		&Service{},
		&CaseStudy{},
		&Testimonial{},
		&FAQ{},
		&Enquiry{},
		&Appointment{},
		&NewsletterSubscriber{},
		&CareerApplication{},
		&SEOMetadata{},
		&ActivityLog{},
	)
}

func dialectorFor(cfg Config) (gorm.Dialector, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "sqlite":
		path := strings.TrimSpace(cfg.Path)
		if path == "" {
			path = "lawfirm.db"
		}
		if !strings.HasPrefix(path, "file:") {
			if err := ensureParentDir(path); err != nil {
				return nil, err
			}
		}
		return sqlite.Open(path), nil
	case "postgres", "postgresql":
		if strings.TrimSpace(cfg.URL) == "" {
			return nil, errors.New("DATABASE_URL is required for the postgres driver")
		}
		return postgres.Open(cfg.URL), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
