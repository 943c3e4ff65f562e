package models

import "time"

// User represents an account in the system.
// Password is stored hashed (bcrypt); never returned in JSON responses.
type User struct {
	UserID       int64      `json:"user_id" db:"user_id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	LastLogin    *time.Time `json:"last_login,omitempty" db:"last_login"`
}

// RegisterRequest is the POST /register body.
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// LoginRequest is the POST /login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the POST /profile body. Password change is
// optional and requires the current password.
type UpdateProfileRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SessionUser is the user payload of /check-auth for a logged-in session.
type SessionUser struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}
