package testutil

import (
	"database/sql"
	"testing"

	"usedphoneshop/internal/config"
)

// OpenInMemoryDB opens a named in-memory SQLite database with the schema
// applied. Shared cache keeps every connection of the pool on the same
// database. The DB is closed via t.Cleanup.
func OpenInMemoryDB(t *testing.T, name string) *sql.DB {
	t.Helper()
	cfg := &config.DatabaseConfig{Path: "file:" + name + "?mode=memory&cache=shared"}
	db, err := config.ConnectDB(cfg)
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.AutoMigrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}
