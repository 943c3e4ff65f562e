package services

import (
	"context"
	"strings"

	"todo-service/auth"
	"todo-service/models"
	"todo-service/store"
)

// Medium, the fallback when a save carries no priority.
const defaultPriorityID = 2

// TaskService orchestrates task persistence and the category-link
// replacement that rides along with it.
type TaskService struct {
	store  *store.Store
	atomic bool
}

// NewTaskService wires the service. With atomicSaves the task row and its
// category links are written in one transaction; without it they are two
// independent writes, as the legacy app did it.
func NewTaskService(st *store.Store, atomicSaves bool) *TaskService {
	return &TaskService{store: st, atomic: atomicSaves}
}

// List returns the caller's tasks, newest first.
func (s *TaskService) List(ctx context.Context, ident auth.Identity) ([]models.Task, error) {
	return s.store.Queries().ListTasks(ctx, ident.UserID)
}

// Save validates the input, upserts the task row and, only when the request
// carried a categories field, fully replaces the task's category links. An
// empty categories list clears them; an absent field leaves them untouched.
func (s *TaskService) Save(ctx context.Context, ident auth.Identity, in models.SaveTaskRequest) (int64, error) {
	rec, err := buildTaskRecord(in)
	if err != nil {
		return 0, err
	}

	var categoryIDs []int64
	if in.Categories != nil {
		categoryIDs = make([]int64, 0, len(*in.Categories))
		for _, id := range *in.Categories {
			categoryIDs = append(categoryIDs, int64(id))
		}
	}

	var taskID int64
	save := func(q *store.Queries) error {
		id, err := q.UpsertTask(ctx, ident.UserID, rec)
		if err != nil {
			return err
		}
		taskID = id
		if in.Categories == nil {
			return nil
		}
		return q.ReplaceTaskCategories(ctx, id, categoryIDs)
	}

	if s.atomic {
		err = s.store.InTx(ctx, save)
	} else {
		err = save(s.store.Queries())
	}
	if err != nil {
		return 0, err
	}
	return taskID, nil
}

func buildTaskRecord(in models.SaveTaskRequest) (store.TaskRecord, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return store.TaskRecord{}, invalid("Title is required")
	}

	rec := store.TaskRecord{
		TaskID:      int64(in.TaskID),
		Title:       title,
		Description: in.Description,
		PriorityID:  defaultPriorityID,
	}
	if in.PriorityID != nil && *in.PriorityID != 0 {
		rec.PriorityID = int64(*in.PriorityID)
	}
	if in.Completed != nil {
		rec.Completed = bool(*in.Completed)
	}
	if in.DueDate != nil {
		if due := strings.TrimSpace(*in.DueDate); due != "" {
			rec.DueDate = &due
		}
	}
	return rec, nil
}

// Delete removes one of the caller's tasks.
func (s *TaskService) Delete(ctx context.Context, ident auth.Identity, taskID int64) error {
	if taskID == 0 {
		return invalid("Task ID is required")
	}
	return s.store.Queries().DeleteTask(ctx, ident.UserID, taskID)
}

// ToggleComplete flips the completed flag by re-saving the entire task,
// categories included, the same round-trip the browser client performs.
// A concurrent edit between the read and the save is overwritten wholesale.
func (s *TaskService) ToggleComplete(ctx context.Context, ident auth.Identity, taskID int64) (int64, error) {
	task, err := s.store.Queries().GetTask(ctx, ident.UserID, taskID)
	if err != nil {
		return 0, err
	}

	completed := models.Flag(!task.Completed)
	priority := models.ID(task.PriorityID)
	categories := make([]models.ID, 0, len(task.Categories))
	for _, c := range task.Categories {
		categories = append(categories, models.ID(c.CategoryID))
	}

	return s.Save(ctx, ident, models.SaveTaskRequest{
		TaskID:      models.ID(task.TaskID),
		Title:       task.Title,
		Description: task.Description,
		DueDate:     task.DueDate,
		PriorityID:  &priority,
		Completed:   &completed,
		Categories:  &categories,
	})
}

// Stats computes the dashboard counters from one consistency snapshot.
func (s *TaskService) Stats(ctx context.Context, ident auth.Identity) (models.TaskStats, error) {
	var stats models.TaskStats
	err := s.store.InTx(ctx, func(q *store.Queries) error {
		var err error
		stats, err = q.TaskStats(ctx, ident.UserID)
		return err
	})
	return stats, err
}
