// Package cheese implements the business operations over the catalog.
package cheese

import (
	"context"
	"fmt"
	"strings"

	"github.com/quesolabs/queso/internal/database"
	"github.com/quesolabs/queso/internal/models"
)

// Service defines all catalog-related business operations
type Service interface {
	// Read operations
	Get(ctx context.Context, id int) (*models.Cheese, error)
	Page(ctx context.Context, page, pageSize int) (*PageResult, error)

	// Write operations
	Add(ctx context.Context, name string) (*models.Cheese, error)
	Rename(ctx context.Context, id int, name string) error
	Remove(ctx context.Context, id int) error

	// Reordering
	MoveUp(ctx context.Context, id int) error
	MoveDown(ctx context.Context, id int) error
}

// PageResult wraps one page of the catalog with the total row count
// so callers can do page arithmetic without a second query path.
type PageResult struct {
	Cheeses  []*models.Cheese
	Total    int
	Page     int
	PageSize int
}

// TotalPages returns the number of pages the catalog spans.
// An empty catalog still has one (empty) page.
func (p *PageResult) TotalPages() int {
	if p.Total == 0 {
		return 1
	}
	return (p.Total + p.PageSize - 1) / p.PageSize
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new cheese service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

// Add validates the name and appends the cheese at the end of the catalog
func (s *service) Add(ctx context.Context, name string) (*models.Cheese, error) {
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return nil, err
	}

	c, err := s.repo.CreateCheese(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to add cheese: %w", err)
	}
	return c, nil
}

// Rename validates and updates a cheese's name
func (s *service) Rename(ctx context.Context, id int, name string) error {
	if id <= 0 {
		return ErrInvalidCheeseID
	}
	name = strings.TrimSpace(name)
	if err := validateName(name); err != nil {
		return err
	}

	if err := s.repo.RenameCheese(ctx, id, name); err != nil {
		return fmt.Errorf("failed to rename cheese: %w", err)
	}
	return nil
}

// Remove deletes a cheese from the catalog
func (s *service) Remove(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidCheeseID
	}

	if err := s.repo.DeleteCheese(ctx, id); err != nil {
		return fmt.Errorf("failed to remove cheese: %w", err)
	}
	return nil
}

// Get retrieves a single cheese
func (s *service) Get(ctx context.Context, id int) (*models.Cheese, error) {
	if id <= 0 {
		return nil, ErrInvalidCheeseID
	}
	return s.repo.GetCheeseByID(ctx, id)
}

// Page retrieves one page of the catalog plus the total count
func (s *service) Page(ctx context.Context, page, pageSize int) (*PageResult, error) {
	if page < 1 {
		return nil, ErrInvalidPage
	}
	if pageSize < 1 {
		return nil, ErrInvalidPageSize
	}

	cheeses, err := s.repo.GetCheesePage(ctx, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to load page %d: %w", page, err)
	}

	total, err := s.repo.CountCheeses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count catalog: %w", err)
	}

	return &PageResult{
		Cheeses:  cheeses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// MoveUp swaps the cheese with its neighbor above
func (s *service) MoveUp(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidCheeseID
	}

	c, err := s.repo.GetCheeseByID(ctx, id)
	if err != nil {
		return err
	}

	above, err := s.repo.GetCheeseAbove(ctx, c.Position)
	if err != nil {
		return err
	}

	return s.repo.SwapCheesePositions(ctx, above.Position, c.Position)
}

// MoveDown swaps the cheese with its neighbor below
func (s *service) MoveDown(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidCheeseID
	}

	c, err := s.repo.GetCheeseByID(ctx, id)
	if err != nil {
		return err
	}

	below, err := s.repo.GetCheeseBelow(ctx, c.Position)
	if err != nil {
		return err
	}

	return s.repo.SwapCheesePositions(ctx, c.Position, below.Position)
}

func validateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > 255 {
		return ErrNameTooLong
	}
	return nil
}
