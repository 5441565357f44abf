package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/quesolabs/queso/internal/models"
)

// CheeseRepo handles pure data access for the cheese catalog.
// No business logic, no validation - just database operations.
type CheeseRepo struct {
	db *sql.DB
}

const cheeseColumns = "id, name, position, created_at, updated_at"

func scanCheese(row *sql.Row) (*models.Cheese, error) {
	c := &models.Cheese{}
	err := row.Scan(&c.ID, &c.Name, &c.Position, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrCheeseNotFound
		}
		return nil, err
	}
	return c, nil
}

// Create appends a cheese at the end of the catalog. The next position
// (MAX+1) is computed and written inside one transaction so concurrent
// inserts cannot claim the same slot.
func (r *CheeseRepo) Create(ctx context.Context, name string) (*models.Cheese, error) {
	var id int64
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var position int
		err := tx.QueryRowContext(ctx,
			"SELECT COALESCE(MAX(position), -1) + 1 FROM cheeses",
		).Scan(&position)
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			"INSERT INTO cheeses (name, position) VALUES (?, ?)",
			name, position,
		)
		if err != nil {
			return err
		}

		id, err = result.LastInsertId()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cheese: %w", err)
	}

	// Retrieve the created row to get timestamps
	return r.GetByID(ctx, int(id))
}

// GetByID retrieves a cheese by ID
func (r *CheeseRepo) GetByID(ctx context.Context, id int) (*models.Cheese, error) {
	return scanCheese(r.db.QueryRowContext(ctx,
		"SELECT "+cheeseColumns+" FROM cheeses WHERE id = ?", id))
}

// GetByPosition retrieves the cheese occupying a position in the catalog
func (r *CheeseRepo) GetByPosition(ctx context.Context, position int) (*models.Cheese, error) {
	return scanCheese(r.db.QueryRowContext(ctx,
		"SELECT "+cheeseColumns+" FROM cheeses WHERE position = ?", position))
}

// GetPage retrieves one page of the catalog ordered by position.
// A page past the end returns an empty slice.
func (r *CheeseRepo) GetPage(ctx context.Context, limit, offset int) ([]*models.Cheese, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+cheeseColumns+" FROM cheeses ORDER BY position LIMIT ? OFFSET ?",
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cheese page: %w", err)
	}
	defer rows.Close()

	var cheeses []*models.Cheese
	for rows.Next() {
		c := &models.Cheese{}
		if err := rows.Scan(&c.ID, &c.Name, &c.Position, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cheeses = append(cheeses, c)
	}

	return cheeses, rows.Err()
}

// GetAbove finds the cheese immediately above the given position.
// Returns models.ErrAlreadyFirst when nothing sits above it.
func (r *CheeseRepo) GetAbove(ctx context.Context, position int) (*models.Cheese, error) {
	c, err := scanCheese(r.db.QueryRowContext(ctx,
		`SELECT `+cheeseColumns+` FROM cheeses
		 WHERE position < ? AND position >= 0
		 ORDER BY position DESC LIMIT 1`,
		position,
	))
	if errors.Is(err, models.ErrCheeseNotFound) {
		return nil, models.ErrAlreadyFirst
	}
	return c, err
}

// GetBelow finds the cheese immediately below the given position.
// Returns models.ErrAlreadyLast when nothing sits below it.
func (r *CheeseRepo) GetBelow(ctx context.Context, position int) (*models.Cheese, error) {
	c, err := scanCheese(r.db.QueryRowContext(ctx,
		`SELECT `+cheeseColumns+` FROM cheeses
		 WHERE position > ?
		 ORDER BY position ASC LIMIT 1`,
		position,
	))
	if errors.Is(err, models.ErrCheeseNotFound) {
		return nil, models.ErrAlreadyLast
	}
	return c, err
}

// Count returns the total number of cheeses in the catalog
func (r *CheeseRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cheeses").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count cheeses: %w", err)
	}
	return count, nil
}

// Rename updates a cheese's display name
func (r *CheeseRepo) Rename(ctx context.Context, id int, name string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cheeses
		 SET name = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		name, id,
	)
	if err != nil {
		return fmt.Errorf("failed to rename cheese %d: %w", id, err)
	}
	return requireRowAffected(result)
}

// Delete removes a cheese from the catalog
func (r *CheeseRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM cheeses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete cheese %d: %w", id, err)
	}
	return requireRowAffected(result)
}

// SwapPositions exchanges the position fields of the two cheeses occupying
// posA and posB inside one transaction. If either position is vacant the
// transaction rolls back with ErrCheeseNotFound and no row changes.
//
// The first row parks at position -1 while the second takes its slot, so
// the unique position index holds at every statement.
func (r *CheeseRepo) SwapPositions(ctx context.Context, posA, posB int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		var idA, idB int

		err := tx.QueryRowContext(ctx,
			"SELECT id FROM cheeses WHERE position = ?", posA,
		).Scan(&idA)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return models.ErrCheeseNotFound
			}
			return err
		}

		err = tx.QueryRowContext(ctx,
			"SELECT id FROM cheeses WHERE position = ?", posB,
		).Scan(&idB)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return models.ErrCheeseNotFound
			}
			return err
		}

		for _, step := range []struct {
			position int
			id       int
		}{
			{-1, idA},
			{posA, idB},
			{posB, idA},
		} {
			_, err = tx.ExecContext(ctx,
				`UPDATE cheeses
				 SET position = ?, updated_at = CURRENT_TIMESTAMP
				 WHERE id = ?`,
				step.position, step.id,
			)
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// requireRowAffected converts a zero-row write into ErrCheeseNotFound so
// callers can tell a stale id from a successful mutation.
func requireRowAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return models.ErrCheeseNotFound
	}
	return nil
}
