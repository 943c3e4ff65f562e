package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todo-service/models"

	"github.com/jmoiron/sqlx"
)

// TaskRecord is the writable portion of a task row. A zero TaskID inserts,
// anything else updates the matching row owned by the caller.
type TaskRecord struct {
	TaskID      int64
	Title       string
	Description *string
	DueDate     *string
	PriorityID  int64
	Completed   bool
}

const taskColumns = `
		t.task_id,
		t.title,
		t.description,
		t.due_date,
		t.completed,
		t.created_at,
		p.priority_id,
		p.name AS priority_name`

// ListTasks returns the owner's tasks newest-created first, each with its
// resolved priority name and its category list populated.
func (q *Queries) ListTasks(ctx context.Context, ownerID int64) ([]models.Task, error) {
	tasks := []models.Task{}
	query := `SELECT` + taskColumns + `
		FROM tasks t
		LEFT JOIN priorities p ON t.priority_id = p.priority_id
		WHERE t.user_id = ?
		ORDER BY t.created_at DESC, t.task_id DESC`
	if err := sqlx.SelectContext(ctx, q.ext, &tasks, query, ownerID); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	for i := range tasks {
		categories, err := q.taskCategories(ctx, tasks[i].TaskID)
		if err != nil {
			return nil, err
		}
		tasks[i].Categories = categories
	}
	return tasks, nil
}

// GetTask returns one of the owner's tasks with its category list.
func (q *Queries) GetTask(ctx context.Context, ownerID, taskID int64) (*models.Task, error) {
	var task models.Task
	query := `SELECT` + taskColumns + `
		FROM tasks t
		LEFT JOIN priorities p ON t.priority_id = p.priority_id
		WHERE t.user_id = ? AND t.task_id = ?`
	err := sqlx.GetContext(ctx, q.ext, &task, query, ownerID, taskID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	categories, err := q.taskCategories(ctx, task.TaskID)
	if err != nil {
		return nil, err
	}
	task.Categories = categories
	return &task, nil
}

func (q *Queries) taskCategories(ctx context.Context, taskID int64) ([]models.TaskCategory, error) {
	categories := []models.TaskCategory{}
	query := `SELECT c.category_id, c.name, c.color
		FROM task_categories tc
		JOIN categories c ON tc.category_id = c.category_id
		WHERE tc.task_id = ?
		ORDER BY c.name ASC`
	if err := sqlx.SelectContext(ctx, q.ext, &categories, query, taskID); err != nil {
		return nil, fmt.Errorf("task categories: %w", err)
	}
	return categories, nil
}

// UpsertTask inserts or updates a task row and returns its id. An update
// that matches no row owned by ownerID fails with ErrTaskNotFound.
func (q *Queries) UpsertTask(ctx context.Context, ownerID int64, rec TaskRecord) (int64, error) {
	if rec.TaskID == 0 {
		res, err := q.ext.ExecContext(ctx,
			`INSERT INTO tasks (title, description, due_date, priority_id, completed, user_id)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			rec.Title, rec.Description, rec.DueDate, rec.PriorityID, rec.Completed, ownerID)
		if err != nil {
			return 0, fmt.Errorf("insert task: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("insert task id: %w", err)
		}
		return id, nil
	}

	res, err := q.ext.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, due_date = ?, priority_id = ?, completed = ?
		 WHERE task_id = ? AND user_id = ?`,
		rec.Title, rec.Description, rec.DueDate, rec.PriorityID, rec.Completed, rec.TaskID, ownerID)
	if err != nil {
		return 0, fmt.Errorf("update task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update task rows: %w", err)
	}
	if affected == 0 {
		return 0, ErrTaskNotFound
	}
	return rec.TaskID, nil
}

// ReplaceTaskCategories drops every category link on the task and inserts
// the supplied set. Zero ids are skipped. The caller must have resolved
// taskID through an owner-scoped operation first.
func (q *Queries) ReplaceTaskCategories(ctx context.Context, taskID int64, categoryIDs []int64) error {
	if _, err := q.ext.ExecContext(ctx,
		`DELETE FROM task_categories WHERE task_id = ?`, taskID); err != nil {
		return fmt.Errorf("clear task categories: %w", err)
	}
	for _, categoryID := range categoryIDs {
		if categoryID == 0 {
			continue
		}
		if _, err := q.ext.ExecContext(ctx,
			`INSERT INTO task_categories (task_id, category_id) VALUES (?, ?)`,
			taskID, categoryID); err != nil {
			return fmt.Errorf("link category %d: %w", categoryID, err)
		}
	}
	return nil
}

// DeleteTask removes one of the owner's tasks; its category links go with
// it. Fails with ErrTaskNotFound when nothing matched.
func (q *Queries) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	res, err := q.ext.ExecContext(ctx,
		`DELETE FROM tasks WHERE task_id = ? AND user_id = ?`, taskID, ownerID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task rows: %w", err)
	}
	if affected == 0 {
		return ErrTaskNotFound
	}
	return nil
}
