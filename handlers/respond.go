package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"todo-service/auth"
	"todo-service/services"
	"todo-service/store"

	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeData sends the {success:true, data:...} envelope.
func writeData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

// writeSuccess sends {success:true} merged with the extra fields, for the
// save/delete responses that carry an id or message at the top level.
func writeSuccess(w http.ResponseWriter, fields map[string]interface{}) {
	body := map[string]interface{}{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	writeJSON(w, http.StatusOK, body)
}

// writeFailure sends the {success:false, error:...} envelope.
func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// writeError maps service and store errors onto the envelope. Expected
// failures keep their message; anything else is logged and hidden behind a
// generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validation *services.ValidationError
	var conflict *store.ConflictError
	switch {
	case errors.As(err, &validation):
		writeFailure(w, http.StatusBadRequest, validation.Message)
	case errors.As(err, &conflict):
		writeFailure(w, http.StatusBadRequest, conflict.Message)
	case errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrCategoryNotFound):
		writeFailure(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		writeFailure(w, http.StatusUnauthorized, err.Error())
	default:
		logger.Error("Request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		writeFailure(w, http.StatusInternalServerError, "Something went wrong. Please try again later.")
	}
}

// requireIdentity resolves the session or writes the 401 envelope.
func requireIdentity(sessions *auth.Sessions, w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	ident, ok := sessions.Identity(r)
	if !ok {
		writeFailure(w, http.StatusUnauthorized, "Authentication required")
		return auth.Identity{}, false
	}
	return ident, true
}

// formID reads an id from a form-encoded request body. ParseForm ignores
// DELETE bodies, so the body is decoded by hand.
func formID(r *http.Request, key string) (int64, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		return 0, err
	}
	values, err := url.ParseQuery(string(body))
	if err != nil {
		return 0, err
	}
	raw := values.Get(key)
	if raw == "" {
		return 0, fmt.Errorf("missing %s", key)
	}
	return strconv.ParseInt(raw, 10, 64)
}
