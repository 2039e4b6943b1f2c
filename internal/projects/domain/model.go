package domain

import "time"

// Project represents a single product-definition project.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
