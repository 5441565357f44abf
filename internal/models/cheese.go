package models

import "time"

// Cheese represents a single entry in the catalog.
// Position is the manual ordering key: unique across the table,
// appended to with MAX(position)+1 and reordered by pairwise swap.
type Cheese struct {
	ID        int
	Name      string
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
