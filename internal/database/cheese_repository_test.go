package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/quesolabs/queso/internal/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Clear the seeded catalog for fresh tests
	if _, err := db.Exec("DELETE FROM cheeses"); err != nil {
		t.Fatalf("Failed to clear cheeses: %v", err)
	}

	return db
}

func setupTestRepo(t *testing.T) *CheeseRepo {
	t.Helper()
	return &CheeseRepo{db: setupTestDB(t)}
}

func TestCreateAppendsAtEnd(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, "Brie")
	if err != nil {
		t.Fatalf("Failed to create cheese: %v", err)
	}
	if first.Position != 0 {
		t.Errorf("First cheese should get position 0, got %d", first.Position)
	}
	if first.Name != "Brie" {
		t.Errorf("Expected name Brie, got %s", first.Name)
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Error("Created cheese should carry timestamps")
	}

	second, err := repo.Create(ctx, "Gouda")
	if err != nil {
		t.Fatalf("Failed to create second cheese: %v", err)
	}
	if second.Position != 1 {
		t.Errorf("Second cheese should get position 1, got %d", second.Position)
	}
}

func TestCreateAfterDeleteKeepsAppending(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Brie", "Gouda", "Feta"} {
		if _, err := repo.Create(ctx, name); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}

	// Delete the last row, then append: the freed position is reused
	last, err := repo.GetByPosition(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to get cheese at position 2: %v", err)
	}
	if err := repo.Delete(ctx, last.ID); err != nil {
		t.Fatalf("Failed to delete cheese: %v", err)
	}

	c, err := repo.Create(ctx, "Stilton")
	if err != nil {
		t.Fatalf("Failed to create after delete: %v", err)
	}
	if c.Position != 2 {
		t.Errorf("Expected position 2 (max+1), got %d", c.Position)
	}
}

func TestGetPage(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	names := []string{"Brie", "Gouda", "Feta", "Stilton", "Comte"}
	for _, name := range names {
		if _, err := repo.Create(ctx, name); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}

	page, err := repo.GetPage(ctx, 2, 0)
	if err != nil {
		t.Fatalf("Failed to get first page: %v", err)
	}
	if len(page) != 2 || page[0].Name != "Brie" || page[1].Name != "Gouda" {
		t.Errorf("Unexpected first page: %+v", page)
	}

	page, err = repo.GetPage(ctx, 2, 4)
	if err != nil {
		t.Fatalf("Failed to get last page: %v", err)
	}
	if len(page) != 1 || page[0].Name != "Comte" {
		t.Errorf("Unexpected last page: %+v", page)
	}

	// Past the end: empty, no error
	page, err = repo.GetPage(ctx, 2, 10)
	if err != nil {
		t.Fatalf("Past-the-end page should not error: %v", err)
	}
	if len(page) != 0 {
		t.Errorf("Past-the-end page should be empty, got %d rows", len(page))
	}
}

func TestCount(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if count != 0 {
		t.Errorf("Empty catalog should count 0, got %d", count)
	}

	for _, name := range []string{"Brie", "Gouda"} {
		if _, err := repo.Create(ctx, name); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}

	count, err = repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}
}

func TestDelete(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	c, err := repo.Create(ctx, "Brie")
	if err != nil {
		t.Fatalf("Failed to create cheese: %v", err)
	}

	if err := repo.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Failed to delete cheese: %v", err)
	}

	if _, err := repo.GetByID(ctx, c.ID); !errors.Is(err, models.ErrCheeseNotFound) {
		t.Errorf("Deleted cheese should be gone, got err=%v", err)
	}

	// Deleting again reports the missing row
	if err := repo.Delete(ctx, c.ID); !errors.Is(err, models.ErrCheeseNotFound) {
		t.Errorf("Double delete should return ErrCheeseNotFound, got %v", err)
	}
}

func TestRename(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	c, err := repo.Create(ctx, "Brie")
	if err != nil {
		t.Fatalf("Failed to create cheese: %v", err)
	}

	if err := repo.Rename(ctx, c.ID, "Brie de Meaux"); err != nil {
		t.Fatalf("Failed to rename cheese: %v", err)
	}

	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("Failed to get cheese: %v", err)
	}
	if got.Name != "Brie de Meaux" {
		t.Errorf("Expected renamed cheese, got %s", got.Name)
	}

	if err := repo.Rename(ctx, 9999, "Ghost"); !errors.Is(err, models.ErrCheeseNotFound) {
		t.Errorf("Renaming a missing cheese should return ErrCheeseNotFound, got %v", err)
	}
}

func TestSwapPositionsExchangesExactlyTwoRows(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	names := []string{"Brie", "Gouda", "Feta", "Stilton"}
	for _, name := range names {
		if _, err := repo.Create(ctx, name); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}

	if err := repo.SwapPositions(ctx, 1, 2); err != nil {
		t.Fatalf("Failed to swap positions: %v", err)
	}

	page, err := repo.GetPage(ctx, 10, 0)
	if err != nil {
		t.Fatalf("Failed to read catalog: %v", err)
	}

	want := []string{"Brie", "Feta", "Gouda", "Stilton"}
	for i, name := range want {
		if page[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, page[i].Name)
		}
	}
}

func TestSwapPositionsMissingPartner(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	c, err := repo.Create(ctx, "Brie")
	if err != nil {
		t.Fatalf("Failed to create cheese: %v", err)
	}

	err = repo.SwapPositions(ctx, c.Position, 42)
	if !errors.Is(err, models.ErrCheeseNotFound) {
		t.Fatalf("Swap with a vacant position should return ErrCheeseNotFound, got %v", err)
	}

	// The transaction rolled back: nothing moved
	got, err := repo.GetByID(ctx, c.ID)
	if err != nil {
		t.Fatalf("Failed to get cheese: %v", err)
	}
	if got.Position != c.Position {
		t.Errorf("Position should be unchanged after failed swap, got %d", got.Position)
	}

	err = repo.SwapPositions(ctx, 42, c.Position)
	if !errors.Is(err, models.ErrCheeseNotFound) {
		t.Errorf("Swap with a vacant first position should return ErrCheeseNotFound, got %v", err)
	}
}

func TestGetAboveAndBelow(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	var cheeses []*models.Cheese
	for _, name := range []string{"Brie", "Gouda", "Feta"} {
		c, err := repo.Create(ctx, name)
		if err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
		cheeses = append(cheeses, c)
	}

	above, err := repo.GetAbove(ctx, cheeses[1].Position)
	if err != nil {
		t.Fatalf("Failed to get neighbor above: %v", err)
	}
	if above.ID != cheeses[0].ID {
		t.Errorf("Expected %s above, got %s", cheeses[0].Name, above.Name)
	}

	below, err := repo.GetBelow(ctx, cheeses[1].Position)
	if err != nil {
		t.Fatalf("Failed to get neighbor below: %v", err)
	}
	if below.ID != cheeses[2].ID {
		t.Errorf("Expected %s below, got %s", cheeses[2].Name, below.Name)
	}

	if _, err := repo.GetAbove(ctx, cheeses[0].Position); !errors.Is(err, models.ErrAlreadyFirst) {
		t.Errorf("Top of catalog should return ErrAlreadyFirst, got %v", err)
	}
	if _, err := repo.GetBelow(ctx, cheeses[2].Position); !errors.Is(err, models.ErrAlreadyLast) {
		t.Errorf("Bottom of catalog should return ErrAlreadyLast, got %v", err)
	}
}

func TestGetAboveSkipsHoles(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	var cheeses []*models.Cheese
	for _, name := range []string{"Brie", "Gouda", "Feta"} {
		c, err := repo.Create(ctx, name)
		if err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
		cheeses = append(cheeses, c)
	}

	// Delete the middle row, leaving a hole at position 1
	if err := repo.Delete(ctx, cheeses[1].ID); err != nil {
		t.Fatalf("Failed to delete cheese: %v", err)
	}

	above, err := repo.GetAbove(ctx, cheeses[2].Position)
	if err != nil {
		t.Fatalf("Failed to get neighbor above a hole: %v", err)
	}
	if above.ID != cheeses[0].ID {
		t.Errorf("Neighbor above should skip the hole, got %s", above.Name)
	}
}
