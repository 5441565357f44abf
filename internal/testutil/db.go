// Package testutil provides shared test fixtures.
package testutil

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// SetupTestDB creates an in-memory database with the full schema.
// The built-in catalog is not seeded so tests start empty.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.ExecContext(context.Background(), "PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS cheeses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL CHECK(length(name) > 0),
		position INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_cheeses_position
	ON cheeses(position);
	`

	if _, err := db.ExecContext(context.Background(), schema); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db
}

// CreateTestCheese appends a cheese at the end of the catalog and returns its ID
func CreateTestCheese(t *testing.T, db *sql.DB, name string) int {
	t.Helper()

	var maxPosition int
	err := db.QueryRowContext(context.Background(),
		"SELECT COALESCE(MAX(position), -1) FROM cheeses").Scan(&maxPosition)
	if err != nil {
		t.Fatalf("Failed to get max position: %v", err)
	}

	result, err := db.ExecContext(context.Background(),
		"INSERT INTO cheeses (name, position) VALUES (?, ?)",
		name, maxPosition+1)
	if err != nil {
		t.Fatalf("Failed to create test cheese: %v", err)
	}

	id, _ := result.LastInsertId()
	return int(id)
}
