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

// CategoryHandler serves /categories.
type CategoryHandler struct {
	categories *services.CategoryService
	sessions   *auth.Sessions
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categories *services.CategoryService, sessions *auth.Sessions) *CategoryHandler {
	return &CategoryHandler{categories: categories, sessions: sessions}
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(h.sessions, w, r)
	if !ok {
		return
	}

	categories, err := h.categories.List(r.Context(), ident)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeData(w, categories)
}

// Save handles POST /categories, inserting or updating depending on
// category_id.
func (h *CategoryHandler) Save(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(h.sessions, w, r)
	if !ok {
		return
	}

	var req models.SaveCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid JSON input")
		return
	}

	categoryID, err := h.categories.Save(r.Context(), ident, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.Info("Category saved",
		zap.Int64("user_id", ident.UserID),
		zap.Int64("category_id", categoryID))

	writeSuccess(w, map[string]interface{}{
		"category_id": categoryID,
		"message":     "Category saved successfully",
	})
}

// Delete handles DELETE /categories with a form-encoded category_id body.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(h.sessions, w, r)
	if !ok {
		return
	}

	categoryID, err := formID(r, "category_id")
	if err != nil {
		writeFailure(w, http.StatusBadRequest, "Category ID is required")
		return
	}

	if err := h.categories.Delete(r.Context(), ident, categoryID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.Info("Category deleted",
		zap.Int64("user_id", ident.UserID),
		zap.Int64("category_id", categoryID))

	writeSuccess(w, map[string]interface{}{
		"message": "Category deleted successfully",
	})
}
