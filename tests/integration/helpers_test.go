package integration

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// prepareDB connects to the database named by TEST_DATABASE_URL, skipping the
// test when none is configured. The schema from docs/schema.sql must already
// be applied.
func prepareDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}
	return db
}
