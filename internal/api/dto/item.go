package dto

import "time"

type ItemRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ItemResponse struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// UnresolvedItemResponse answers for a path id with no leading integer.
// ID is always encoded as null.
type UnresolvedItemResponse struct {
	ID          *int       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// ID is null when the path id had no leading integer.
type DeleteItemResponse struct {
	Message string `json:"message"`
	ID      *int   `json:"id"`
}
