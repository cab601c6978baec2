package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
	"gorm.io/gorm"
)

// ActivityEntry is one admin action to be recorded.
type ActivityEntry struct {
	UserID    *uint
	Action    string
	ModelName string
	ObjectID  *uint
	Details   string
	IPAddress string
}

// ActivityLogger appends audit records. A failed append is reported to the
// log and never returned: the mutation it describes has already committed.
type ActivityLogger struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewActivityLogger creates an ActivityLogger. A nil logger falls back to slog.Default.
func NewActivityLogger(gdb *gorm.DB, logger *slog.Logger) *ActivityLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &ActivityLogger{db: gdb, logger: logger}
}

// Log writes one activity record and reports whether it was stored.
func (l *ActivityLogger) Log(ctx context.Context, entry ActivityEntry) bool {
	record := db.ActivityLog{
		UserID:    entry.UserID,
		Action:    entry.Action,
		ModelName: entry.ModelName,
		ObjectID:  entry.ObjectID,
		Details:   entry.Details,
	}
	if ip := strings.TrimSpace(entry.IPAddress); ip != "" {
		record.IPAddress = &ip
	}

	if err := l.db.WithContext(ctx).Create(&record).Error; err != nil {
		l.logger.ErrorContext(ctx, "activity log append failed",
			slog.String("action", entry.Action),
			slog.String("model", entry.ModelName),
			slog.Any("error", err),
		)
		return false
	}
	return true
}
