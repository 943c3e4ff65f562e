package store

import (
	"context"
	"fmt"

	"todo-service/models"

	"github.com/jmoiron/sqlx"
)

// CategoryRecord is the writable portion of a category row.
type CategoryRecord struct {
	CategoryID int64
	Name       string
	Color      string
}

// ListCategories returns the owner's categories in alphabetical order.
func (q *Queries) ListCategories(ctx context.Context, ownerID int64) ([]models.Category, error) {
	categories := []models.Category{}
	query := `SELECT category_id, name, color, created_at
		FROM categories
		WHERE user_id = ?
		ORDER BY name ASC`
	if err := sqlx.SelectContext(ctx, q.ext, &categories, query, ownerID); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// UpsertCategory inserts or updates a category row and returns its id. The
// name must be unique within the owner's categories; the duplicate pre-check
// supplies the friendly message, the UNIQUE (user_id, name) constraint is
// the guard of record and maps onto the same conflict.
func (q *Queries) UpsertCategory(ctx context.Context, ownerID int64, rec CategoryRecord) (int64, error) {
	var duplicates int
	var err error
	if rec.CategoryID == 0 {
		err = sqlx.GetContext(ctx, q.ext, &duplicates,
			`SELECT COUNT(*) FROM categories WHERE name = ? AND user_id = ?`,
			rec.Name, ownerID)
	} else {
		err = sqlx.GetContext(ctx, q.ext, &duplicates,
			`SELECT COUNT(*) FROM categories WHERE name = ? AND user_id = ? AND category_id != ?`,
			rec.Name, ownerID, rec.CategoryID)
	}
	if err != nil {
		return 0, fmt.Errorf("check category name: %w", err)
	}
	if duplicates > 0 {
		return 0, newNameConflict()
	}

	if rec.CategoryID == 0 {
		res, err := q.ext.ExecContext(ctx,
			`INSERT INTO categories (name, color, user_id) VALUES (?, ?, ?)`,
			rec.Name, rec.Color, ownerID)
		if err != nil {
			if isUniqueViolation(err) {
				return 0, newNameConflict()
			}
			return 0, fmt.Errorf("insert category: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("insert category id: %w", err)
		}
		return id, nil
	}

	res, err := q.ext.ExecContext(ctx,
		`UPDATE categories SET name = ?, color = ? WHERE category_id = ? AND user_id = ?`,
		rec.Name, rec.Color, rec.CategoryID, ownerID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, newNameConflict()
		}
		return 0, fmt.Errorf("update category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update category rows: %w", err)
	}
	if affected == 0 {
		return 0, ErrCategoryNotFound
	}
	return rec.CategoryID, nil
}

// DeleteCategory removes one of the owner's categories. A category still
// referenced by tasks is rejected with a conflict carrying the reference
// count; the RESTRICT foreign key on the join relation backs the pre-check.
func (q *Queries) DeleteCategory(ctx context.Context, ownerID, categoryID int64) error {
	var refs int
	if err := sqlx.GetContext(ctx, q.ext, &refs,
		`SELECT COUNT(*) FROM task_categories WHERE category_id = ?`, categoryID); err != nil {
		return fmt.Errorf("count category references: %w", err)
	}
	if refs > 0 {
		return newReferenceConflict(refs)
	}

	res, err := q.ext.ExecContext(ctx,
		`DELETE FROM categories WHERE category_id = ? AND user_id = ?`, categoryID, ownerID)
	if err != nil {
		if isForeignKeyViolation(err) {
			// A link appeared between the pre-check and the delete.
			if recountErr := sqlx.GetContext(ctx, q.ext, &refs,
				`SELECT COUNT(*) FROM task_categories WHERE category_id = ?`, categoryID); recountErr == nil && refs > 0 {
				return newReferenceConflict(refs)
			}
			return newReferenceConflict(1)
		}
		return fmt.Errorf("delete category: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete category rows: %w", err)
	}
	if affected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
