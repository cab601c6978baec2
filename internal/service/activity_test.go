package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
)

func TestActivityLogger_Log(t *testing.T) {
	gdb := setupStoreTestDB(t)
	logger := NewActivityLogger(gdb, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	objectID := uint(7)
	if !logger.Log(ctx, ActivityEntry{Action: "Deleted", ModelName: "FAQ", ObjectID: &objectID, Details: "q", IPAddress: " 10.0.0.1 "}) {
		t.Fatal("expected the entry to be stored")
	}

	var entry db.ActivityLog
	if err := gdb.First(&entry).Error; err != nil {
		t.Fatalf("load entry: %v", err)
	}
	if entry.UserID != nil || entry.ObjectID == nil || *entry.ObjectID != 7 {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry.IPAddress == nil || *entry.IPAddress != "10.0.0.1" || entry.Timestamp.IsZero() {
		t.Fatalf("unexpected entry metadata: %+v", entry)
	}

	if !logger.Log(ctx, ActivityEntry{Action: "Updated", ModelName: "FAQ"}) {
		t.Fatal("expected the entry without ip to be stored")
	}
	var second db.ActivityLog
	gdb.Order("id desc").First(&second)
	if second.IPAddress != nil {
		t.Fatalf("expected blank ip to be stored as null, got %q", *second.IPAddress)
	}
}

func TestActivityLogger_LogFailureIsSwallowed(t *testing.T) {
	gdb := setupStoreTestDB(t)
	logger := NewActivityLogger(gdb, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if err := gdb.Migrator().DropTable(&db.ActivityLog{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}
	if logger.Log(context.Background(), ActivityEntry{Action: "Created", ModelName: "FAQ"}) {
		t.Fatal("expected the append to report failure")
	}
}
