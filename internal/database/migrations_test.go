package database

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func TestMigrationsSeedCatalogOnce(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := runMigrations(ctx, db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM cheeses").Scan(&count); err != nil {
		t.Fatalf("Failed to count cheeses: %v", err)
	}
	if count != len(defaultCheeses) {
		t.Errorf("Expected %d seeded cheeses, got %d", len(defaultCheeses), count)
	}

	// Migrations are idempotent: a second run must not duplicate the seed
	if err := runMigrations(ctx, db); err != nil {
		t.Fatalf("Failed to re-run migrations: %v", err)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM cheeses").Scan(&count); err != nil {
		t.Fatalf("Failed to count cheeses: %v", err)
	}
	if count != len(defaultCheeses) {
		t.Errorf("Second migration run changed the count to %d", count)
	}
}

func TestSeedPositionsAreDense(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	defer db.Close()

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	rows, err := db.Query("SELECT position FROM cheeses ORDER BY position")
	if err != nil {
		t.Fatalf("Failed to query positions: %v", err)
	}
	defer rows.Close()

	expected := 0
	for rows.Next() {
		var position int
		if err := rows.Scan(&position); err != nil {
			t.Fatalf("Failed to scan position: %v", err)
		}
		if position != expected {
			t.Fatalf("Expected position %d, got %d", expected, position)
		}
		expected++
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("Row iteration failed: %v", err)
	}
}

func TestPositionUniqueIndex(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.Exec("INSERT INTO cheeses (name, position) VALUES ('Brie', 0)"); err != nil {
		t.Fatalf("Failed to insert: %v", err)
	}

	_, err := db.Exec("INSERT INTO cheeses (name, position) VALUES ('Gouda', 0)")
	if err == nil {
		t.Error("Duplicate position should violate the unique index")
	}
}
