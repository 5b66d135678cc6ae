package database_test

import (
	"path/filepath"
	"testing"

	"urecite/config"
	"urecite/database"
	"urecite/models"
)

func TestOpen_SQLite(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		DBDriver:   config.DriverSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "nested", "urecite.db"),
		AppEnv:     "production",
	}

	db, err := database.Open(cfg)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { database.Close(db) })

	for _, table := range []any{&models.Verse{}, &models.Attempt{}, &models.CorpusImport{}} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table for %T missing after migrations", table)
		}
	}

	// migrations are idempotent
	if err := database.RunMigrations(db); err != nil {
		t.Errorf("RunMigrations() second run error = %v", err)
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	t.Parallel()

	if _, err := database.Open(&config.Config{DBDriver: "mysql"}); err == nil {
		t.Error("Open() with unknown driver: want error")
	}
}

func TestClose_Nil(t *testing.T) {
	t.Parallel()

	if err := database.Close(nil); err != nil {
		t.Errorf("Close(nil) error = %v", err)
	}
}
