package services

import (
	"context"
	"testing"

	"todo-service/models"
	"todo-service/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_SaveTrimsAndDefaults(t *testing.T) {
	st := newTestStore(t)
	svc := NewCategoryService(st)
	ctx := context.Background()
	ident := createTestIdentity(t, st, "alice")

	_, err := svc.Save(ctx, ident, models.SaveCategoryRequest{Name: "  Work  "})
	require.NoError(t, err)

	listed, err := svc.List(ctx, ident)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Work", listed[0].Name)
	assert.Equal(t, DefaultColor, listed[0].Color)
}

func TestCategoryService_SaveInvalidColorFallsBack(t *testing.T) {
	st := newTestStore(t)
	svc := NewCategoryService(st)
	ctx := context.Background()
	ident := createTestIdentity(t, st, "alice")

	cases := []struct {
		name  string
		color string
		want  string
	}{
		{"Bad", "not-a-color", DefaultColor},
		{"Short", "#fff", DefaultColor},
		{"NoHash", "aabbcc", DefaultColor},
		{"Valid", "#AaBbCc", "#AaBbCc"},
	}
	for _, tc := range cases {
		_, err := svc.Save(ctx, ident, models.SaveCategoryRequest{Name: tc.name, Color: tc.color})
		require.NoError(t, err)
	}

	listed, err := svc.List(ctx, ident)
	require.NoError(t, err)
	byName := map[string]string{}
	for _, c := range listed {
		byName[c.Name] = c.Color
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, byName[tc.name], "color for %s", tc.name)
	}
}

func TestCategoryService_SaveRequiresName(t *testing.T) {
	st := newTestStore(t)
	svc := NewCategoryService(st)
	ident := createTestIdentity(t, st, "alice")

	_, err := svc.Save(context.Background(), ident, models.SaveCategoryRequest{Name: "   "})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Category name is required", verr.Message)
}

func TestCategoryService_DeleteGuard(t *testing.T) {
	st := newTestStore(t)
	categories := NewCategoryService(st)
	tasks := NewTaskService(st, true)
	ctx := context.Background()
	ident := createTestIdentity(t, st, "alice")

	catID, err := categories.Save(ctx, ident, models.SaveCategoryRequest{Name: "Work"})
	require.NoError(t, err)
	_, err = tasks.Save(ctx, ident, models.SaveTaskRequest{
		Title:      "report",
		Categories: &[]models.ID{models.ID(catID)},
	})
	require.NoError(t, err)

	err = categories.Delete(ctx, ident, catID)
	var conflict *store.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Message, "1 task(s)")

	err = categories.Delete(ctx, ident, 0)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Category ID is required", verr.Message)
}
