package main

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/tejashvi-kumawat/mr-advocates---associates/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestSeedDemoContentRunsOnce(t *testing.T) {
	dsn := fmt.Sprintf("file:seed-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	created, err := seedDemoContent(context.Background(), gdb)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if created != 11 {
		t.Fatalf("expected 11 records, got %d", created)
	}

	var area db.PracticeArea
	if err := gdb.Where("slug = ?", "civil-litigation").First(&area).Error; err != nil {
		t.Fatalf("expected derived slug: %v", err)
	}

	again, err := seedDemoContent(context.Background(), gdb)
	if err != nil || again != 0 {
		t.Fatalf("expected second run to skip, got %d, %v", again, err)
	}
}
