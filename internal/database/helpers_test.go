package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"
)

func TestWithTxCommitsOnSuccess(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	err := withTx(ctx, db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO cheeses (name, position) VALUES ('Brie', 0)")
		return err
	})
	if err != nil {
		t.Fatalf("withTx failed: %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM cheeses").Scan(&count); err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected committed row, got count %d", count)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	wantErr := errors.New("boom")
	err := withTx(ctx, db, func(tx *sql.Tx) error {
		_, execErr := tx.ExecContext(ctx,
			"INSERT INTO cheeses (name, position) VALUES ('Brie', 0)")
		if execErr != nil {
			return execErr
		}
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("Expected the callback error, got %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM cheeses").Scan(&count); err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected rollback, got count %d", count)
	}
}
