// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/quesolabs/queso/internal/models"
)

// CheeseReader defines read operations for the catalog.
type CheeseReader interface {
	GetCheeseByID(ctx context.Context, id int) (*models.Cheese, error)
	GetCheeseByPosition(ctx context.Context, position int) (*models.Cheese, error)
	GetCheesePage(ctx context.Context, limit, offset int) ([]*models.Cheese, error)
	GetCheeseAbove(ctx context.Context, position int) (*models.Cheese, error)
	GetCheeseBelow(ctx context.Context, position int) (*models.Cheese, error)
	CountCheeses(ctx context.Context) (int, error)
}

// CheeseWriter defines write operations for the catalog.
type CheeseWriter interface {
	CreateCheese(ctx context.Context, name string) (*models.Cheese, error)
	RenameCheese(ctx context.Context, id int, name string) error
	DeleteCheese(ctx context.Context, id int) error
}

// CheeseMover defines reorder operations within the catalog.
type CheeseMover interface {
	SwapCheesePositions(ctx context.Context, posA, posB int) error
}

// DataStore defines the unified interface for all data operations needed by
// the service layer and the TUI. Consumers can depend on the smaller
// interfaces for better testability and clearer dependencies.
type DataStore interface {
	CheeseReader
	CheeseWriter
	CheeseMover
}
