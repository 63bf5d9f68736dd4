package domain

import (
	"errors"
	"time"
)

// Represents a record served by the items API.
// Items are fabricated per request and never persisted, so ids carry
// no uniqueness guarantee.
type Item struct {
	ID          int
	Name        string
	Description string
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

// ErrNameRequired is returned when an item is created without a name.
var ErrNameRequired = errors.New("name is required")

// PlaceholderName is the stand-in name for the item referenced as ref.
func PlaceholderName(ref string) string {
	return "Item " + ref
}

// PlaceholderDescription is the stand-in description for the item referenced as ref.
func PlaceholderDescription(ref string) string {
	return "Description for item " + ref
}
