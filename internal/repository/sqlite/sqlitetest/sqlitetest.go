// Package sqlitetest opens throwaway migrated SQLite databases for tests.
package sqlitetest

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/cmlabs-hris/sitecrew-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/sitecrew-backend-go/internal/repository/sqlite"
)

// NewDB creates a migrated database in t.TempDir and closes it on cleanup.
func NewDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "sitecrew_test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := sqlite.Migrate(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
