package models

import "time"

// Category labels tasks and belongs to exactly one user. Name is unique
// within the owning user's scope.
type Category struct {
	CategoryID int64     `json:"category_id" db:"category_id"`
	Name       string    `json:"name" db:"name"`
	Color      string    `json:"color" db:"color"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// SaveCategoryRequest is the POST /categories body. A zero CategoryID means
// insert. A malformed Color is silently replaced with the default, never
// rejected.
type SaveCategoryRequest struct {
	CategoryID ID     `json:"category_id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
}
