package services

import (
	"context"
	"regexp"
	"strings"

	"todo-service/auth"
	"todo-service/models"
	"todo-service/store"
)

// DefaultColor is assigned when a save carries no color or a malformed one.
const DefaultColor = "#4a6fa5"

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CategoryService wraps category business rules around the store.
type CategoryService struct {
	store *store.Store
}

// NewCategoryService wires the service.
func NewCategoryService(st *store.Store) *CategoryService {
	return &CategoryService{store: st}
}

// List returns the caller's categories in alphabetical order.
func (s *CategoryService) List(ctx context.Context, ident auth.Identity) ([]models.Category, error) {
	return s.store.Queries().ListCategories(ctx, ident.UserID)
}

// Save upserts a category. The name is trimmed and required; a color that
// does not match the six-hex-digit pattern silently falls back to the
// default instead of failing the save.
func (s *CategoryService) Save(ctx context.Context, ident auth.Identity, in models.SaveCategoryRequest) (int64, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, invalid("Category name is required")
	}

	color := in.Color
	if !colorPattern.MatchString(color) {
		color = DefaultColor
	}

	return s.store.Queries().UpsertCategory(ctx, ident.UserID, store.CategoryRecord{
		CategoryID: int64(in.CategoryID),
		Name:       name,
		Color:      color,
	})
}

// Delete removes one of the caller's categories unless tasks still
// reference it.
func (s *CategoryService) Delete(ctx context.Context, ident auth.Identity, categoryID int64) error {
	if categoryID == 0 {
		return invalid("Category ID is required")
	}
	return s.store.Queries().DeleteCategory(ctx, ident.UserID, categoryID)
}
