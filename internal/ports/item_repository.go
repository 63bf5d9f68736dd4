package ports

import (
	"context"
	"transit-items-service/internal/domain"
)

// Port: a boundary for reading and writing Item records.
type ItemRepository interface {
	ListItems(ctx context.Context) ([]*domain.Item, error)
	GetItem(ctx context.Context, id int) (*domain.Item, error)
	// Create an item; name must be non-empty.
	CreateItem(ctx context.Context, name, description string) (*domain.Item, error)
	// Update an item; empty fields fall back to implementation defaults.
	UpdateItem(ctx context.Context, id int, name, description string) (*domain.Item, error)
	DeleteItem(ctx context.Context, id int) error
}
