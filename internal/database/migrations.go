package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema and seeds the catalog if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create cheeses table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS cheeses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL CHECK(length(name) > 0),
			position INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Positions are the manual ordering key; uniqueness keeps swap honest.
	// Swaps route through position -1, so -1 must stay out of normal use.
	_, err = db.ExecContext(ctx, `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_cheeses_position
		ON cheeses(position)
	`)
	if err != nil {
		return err
	}

	return seedDefaultCheeses(ctx, db)
}

// seedDefaultCheeses inserts the built-in catalog if the table is empty
func seedDefaultCheeses(ctx context.Context, db *sql.DB) error {
	var count int
	err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cheeses").Scan(&count)
	if err != nil {
		return err
	}

	// If cheeses exist, don't seed
	if count > 0 {
		return nil
	}

	return withTx(ctx, db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			"INSERT INTO cheeses (name, position) VALUES (?, ?)")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, name := range defaultCheeses {
			if _, err := stmt.ExecContext(ctx, name, i); err != nil {
				return err
			}
		}
		return nil
	})
}
