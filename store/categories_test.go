package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertCategory_InsertAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := createTestUser(t, s, "alice")

	work, err := s.Queries().UpsertCategory(ctx, owner, CategoryRecord{Name: "Work", Color: "#ff0000"})
	require.NoError(t, err)
	home, err := s.Queries().UpsertCategory(ctx, owner, CategoryRecord{Name: "Home", Color: "#00ff00"})
	require.NoError(t, err)

	categories, err := s.Queries().ListCategories(ctx, owner)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	// Alphabetical, not insertion order.
	assert.Equal(t, "Home", categories[0].Name)
	assert.Equal(t, home, categories[0].CategoryID)
	assert.Equal(t, "#00ff00", categories[0].Color)
	assert.Equal(t, "Work", categories[1].Name)
	assert.Equal(t, work, categories[1].CategoryID)
}

func TestUpsertCategory_DuplicateNameSameUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := createTestUser(t, s, "alice")
	createTestCategory(t, s, owner, "Work")

	_, err := s.Queries().UpsertCategory(ctx, owner, CategoryRecord{Name: "Work", Color: "#ffffff"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "A category with this name already exists", conflict.Message)
}

func TestUpsertCategory_SameNameDifferentUsers(t *testing.T) {
	s := newTestStore(t)
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")

	createTestCategory(t, s, alice, "Work")
	createTestCategory(t, s, bob, "Work")
}

func TestUpsertCategory_UpdateExcludesOwnRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := createTestUser(t, s, "alice")
	id := createTestCategory(t, s, owner, "Work")

	// Re-saving under its own name only changes the color.
	updated, err := s.Queries().UpsertCategory(ctx, owner, CategoryRecord{
		CategoryID: id,
		Name:       "Work",
		Color:      "#123abc",
	})
	require.NoError(t, err)
	assert.Equal(t, id, updated)

	categories, err := s.Queries().ListCategories(ctx, owner)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "#123abc", categories[0].Color)
}

func TestUpsertCategory_RenameOntoExistingName(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := createTestUser(t, s, "alice")
	createTestCategory(t, s, owner, "Work")
	home := createTestCategory(t, s, owner, "Home")

	_, err := s.Queries().UpsertCategory(ctx, owner, CategoryRecord{
		CategoryID: home,
		Name:       "Work",
		Color:      "#ffffff",
	})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestUpsertCategory_UpdateScopedToOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")
	id := createTestCategory(t, s, alice, "Work")

	_, err := s.Queries().UpsertCategory(ctx, bob, CategoryRecord{
		CategoryID: id,
		Name:       "Hijacked",
		Color:      "#ffffff",
	})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteCategory_GuardedByReferences(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := createTestUser(t, s, "alice")
	id := createTestCategory(t, s, owner, "Work")

	taskA := createTestTask(t, s, owner, "a")
	taskB := createTestTask(t, s, owner, "b")
	require.NoError(t, s.Queries().ReplaceTaskCategories(ctx, taskA, []int64{id}))
	require.NoError(t, s.Queries().ReplaceTaskCategories(ctx, taskB, []int64{id}))

	err := s.Queries().DeleteCategory(ctx, owner, id)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 2, conflict.TaskCount)
	assert.Contains(t, conflict.Message, "2 task(s)")

	// After removing every reference the delete goes through.
	require.NoError(t, s.Queries().ReplaceTaskCategories(ctx, taskA, nil))
	require.NoError(t, s.Queries().ReplaceTaskCategories(ctx, taskB, nil))
	require.NoError(t, s.Queries().DeleteCategory(ctx, owner, id))

	assert.ErrorIs(t, s.Queries().DeleteCategory(ctx, owner, id), ErrCategoryNotFound)
}

func TestDeleteCategory_ScopedToOwner(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	alice := createTestUser(t, s, "alice")
	bob := createTestUser(t, s, "bob")
	id := createTestCategory(t, s, alice, "Work")

	assert.ErrorIs(t, s.Queries().DeleteCategory(ctx, bob, id), ErrCategoryNotFound)

	categories, err := s.Queries().ListCategories(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}
