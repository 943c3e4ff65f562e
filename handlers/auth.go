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

// AuthHandler serves registration, login, logout, the session probe, and
// profile updates.
type AuthHandler struct {
	users    *services.UserService
	sessions *auth.Sessions
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(users *services.UserService, sessions *auth.Sessions) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions}
}

// Register handles POST /register. The new account is not logged in
// automatically; the client follows up with /login.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid JSON input")
		return
	}

	user, err := h.users.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.Info("User registered",
		zap.Int64("user_id", user.UserID),
		zap.String("username", user.Username))

	writeSuccess(w, map[string]interface{}{
		"user_id": user.UserID,
		"message": "Registration successful",
	})
}

// Login handles POST /login and sets the session cookie on success.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid JSON input")
		return
	}

	user, err := h.users.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.sessions.Create(w, auth.Identity{UserID: user.UserID, Username: user.Username})

	logger.Info("Login successful", zap.Int64("user_id", user.UserID))

	writeSuccess(w, map[string]interface{}{
		"user": models.SessionUser{
			UserID:   user.UserID,
			Username: user.Username,
		},
		"message": "Login successful",
	})
}

// Logout handles POST /logout. It succeeds whether or not a session
// existed.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Destroy(w, r)
	writeSuccess(w, map[string]interface{}{
		"message": "Logged out",
	})
}

// CheckAuth handles GET /check-auth. It never fails: an anonymous request
// reports loggedIn false with a null user.
func (h *AuthHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	ident, ok := h.sessions.Identity(r)
	var user interface{}
	if ok {
		user = models.SessionUser{UserID: ident.UserID, Username: ident.Username}
	}
	writeData(w, map[string]interface{}{
		"loggedIn": ok,
		"user":     user,
	})
}

// Profile handles POST /profile for email and password changes.
func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(h.sessions, w, r)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid JSON input")
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), ident, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.Info("Profile updated", zap.Int64("user_id", user.UserID))

	writeSuccess(w, map[string]interface{}{
		"message": "Profile updated successfully",
	})
}
