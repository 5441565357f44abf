package database

import (
	"context"
	"database/sql"

	"github.com/quesolabs/queso/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*CheeseRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		CheeseRepo: &CheeseRepo{db: db},
	}
}

// Wrapper methods for CheeseRepo to satisfy the DataStore interface
func (r *Repository) CreateCheese(ctx context.Context, name string) (*models.Cheese, error) {
	return r.CheeseRepo.Create(ctx, name)
}

func (r *Repository) GetCheeseByID(ctx context.Context, id int) (*models.Cheese, error) {
	return r.CheeseRepo.GetByID(ctx, id)
}

func (r *Repository) GetCheeseByPosition(ctx context.Context, position int) (*models.Cheese, error) {
	return r.CheeseRepo.GetByPosition(ctx, position)
}

func (r *Repository) GetCheesePage(ctx context.Context, limit, offset int) ([]*models.Cheese, error) {
	return r.CheeseRepo.GetPage(ctx, limit, offset)
}

func (r *Repository) GetCheeseAbove(ctx context.Context, position int) (*models.Cheese, error) {
	return r.CheeseRepo.GetAbove(ctx, position)
}

func (r *Repository) GetCheeseBelow(ctx context.Context, position int) (*models.Cheese, error) {
	return r.CheeseRepo.GetBelow(ctx, position)
}

func (r *Repository) CountCheeses(ctx context.Context) (int, error) {
	return r.CheeseRepo.Count(ctx)
}

func (r *Repository) RenameCheese(ctx context.Context, id int, name string) error {
	return r.CheeseRepo.Rename(ctx, id, name)
}

func (r *Repository) DeleteCheese(ctx context.Context, id int) error {
	return r.CheeseRepo.Delete(ctx, id)
}

func (r *Repository) SwapCheesePositions(ctx context.Context, posA, posB int) error {
	return r.CheeseRepo.SwapPositions(ctx, posA, posB)
}

// Compile-time check that Repository satisfies DataStore
var _ DataStore = (*Repository)(nil)
