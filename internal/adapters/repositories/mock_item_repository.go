package repositories

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"
	"transit-items-service/internal/domain"
)

// In-memory stand-in for the ItemRepository port.
// It fabricates records from its inputs and keeps no state between calls,
// so it is safe for concurrent use.
type MockItemRepository struct {
	Now   func() time.Time
	NewID func() int
}

func NewMockItemRepository() *MockItemRepository {
	return &MockItemRepository{
		Now:   time.Now,
		NewID: func() int { return rand.IntN(1000) },
	}
}

// Return the fixed sample set.
func (m *MockItemRepository) ListItems(ctx context.Context) ([]*domain.Item, error) {
	return []*domain.Item{
		{ID: 1, Name: "Item 1", Description: "First example item"},
		{ID: 2, Name: "Item 2", Description: "Second example item"},
		{ID: 3, Name: "Item 3", Description: "Third example item"},
	}, nil
}

// Echo the id back inside a fabricated record; unknown ids are not an error.
func (m *MockItemRepository) GetItem(ctx context.Context, id int) (*domain.Item, error) {
	return &domain.Item{
		ID:          id,
		Name:        defaultName(id),
		Description: defaultDescription(id),
	}, nil
}

// The name is stored exactly as given; only an empty name is rejected.
func (m *MockItemRepository) CreateItem(ctx context.Context, name, description string) (*domain.Item, error) {
	if name == "" {
		return nil, fmt.Errorf("create item: %w", domain.ErrNameRequired)
	}

	now := m.now()
	return &domain.Item{
		ID:          m.newID(),
		Name:        name,
		Description: description,
		CreatedAt:   &now,
	}, nil
}

// No existence check is performed; missing fields fall back to placeholders
// derived from the id.
func (m *MockItemRepository) UpdateItem(ctx context.Context, id int, name, description string) (*domain.Item, error) {
	if name == "" {
		name = defaultName(id)
	}
	if description == "" {
		description = defaultDescription(id)
	}

	now := m.now()
	return &domain.Item{
		ID:          id,
		Name:        name,
		Description: description,
		UpdatedAt:   &now,
	}, nil
}

func (m *MockItemRepository) DeleteItem(ctx context.Context, id int) error {
	return nil
}

func (m *MockItemRepository) now() time.Time {
	if m.Now == nil {
		return time.Now().UTC()
	}
	return m.Now().UTC()
}

func (m *MockItemRepository) newID() int {
	if m.NewID == nil {
		return rand.IntN(1000)
	}
	return m.NewID()
}

func defaultName(id int) string {
	return domain.PlaceholderName(strconv.Itoa(id))
}

func defaultDescription(id int) string {
	return domain.PlaceholderDescription(strconv.Itoa(id))
}
