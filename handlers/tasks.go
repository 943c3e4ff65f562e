package handlers

import (
	"encoding/json"
	"net/http"

	"todo-service/auth"
	"todo-service/models"
	"todo-service/services"

	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// TaskHandler serves /tasks and /stats.
type TaskHandler struct {
	tasks    *services.TaskService
	sessions *auth.Sessions
}

// NewTaskHandler creates a new task handler.
func NewTaskHandler(tasks *services.TaskService, sessions *auth.Sessions) *TaskHandler {
	return &TaskHandler{tasks: tasks, sessions: sessions}
}

// List handles GET /tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(h.sessions, w, r)
	if !ok {
		return
	}

	tasks, err := h.tasks.List(r.Context(), ident)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, tasks)
}

// Save handles POST /tasks, inserting or updating depending on task_id.
func (h *TaskHandler) Save(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(h.sessions, w, r)
	if !ok {
		return
	}

	var req models.SaveTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid JSON input")
		return
	}

	taskID, err := h.tasks.Save(r.Context(), ident, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.Info("Task saved",
		zap.Int64("user_id", ident.UserID),
		zap.Int64("task_id", taskID))

	writeSuccess(w, map[string]interface{}{
		"task_id": taskID,
		"message": "Task saved successfully",
	})
}

// Delete handles DELETE /tasks with a form-encoded task_id body.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(h.sessions, w, r)
	if !ok {
		return
	}

	taskID, err := formID(r, "task_id")
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "Task ID is required")
		return
	}

	if err := h.tasks.Delete(r.Context(), ident, taskID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.Info("Task deleted",
		zap.Int64("user_id", ident.UserID),
		zap.Int64("task_id", taskID))

	writeSuccess(w, map[string]interface{}{
		"message": "Task deleted successfully",
	})
}

// Stats handles GET /stats.
func (h *TaskHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(h.sessions, w, r)
	if !ok {
		return
	}

	stats, err := h.tasks.Stats(r.Context(), ident)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, stats)
}
