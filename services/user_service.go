package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"todo-service/auth"
	"todo-service/models"
	"todo-service/store"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// ErrInvalidCredentials is deliberately generic so a login attempt cannot
// probe which usernames exist.
var ErrInvalidCredentials = errors.New("Invalid username or password.")

// UserService owns registration, credential verification, and profile
// updates.
type UserService struct {
	store *store.Store
}

// NewUserService wires the service.
func NewUserService(st *store.Store) *UserService {
	return &UserService{store: st}
}

// Register creates an account. Username and email uniqueness is pre-checked
// for the friendly messages; the UNIQUE constraints are the guard of record
// and map onto the same conflicts.
func (s *UserService) Register(ctx context.Context, in models.RegisterRequest) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)
	password := strings.TrimSpace(in.Password)

	if username == "" {
		return nil, invalid("Please enter a username.")
	}
	if email == "" {
		return nil, invalid("Please enter an email.")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, invalid("Invalid email format")
	}
	if password == "" {
		return nil, invalid("Please enter a password.")
	}
	if len(password) < 6 {
		return nil, invalid("Password must have at least 6 characters.")
	}
	if in.ConfirmPassword != "" && strings.TrimSpace(in.ConfirmPassword) != password {
		return nil, invalid("Password did not match.")
	}

	q := s.store.Queries()
	taken, err := q.UsernameTaken(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &store.ConflictError{Message: "This username is already taken."}
	}
	taken, err = q.EmailTaken(ctx, email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &store.ConflictError{Message: "This email is already registered."}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	userID, err := q.CreateUser(ctx, username, email, string(hash))
	if err != nil {
		return nil, err
	}
	return q.UserByID(ctx, userID)
}

// Login verifies the credentials and stamps last_login on success.
func (s *UserService) Login(ctx context.Context, in models.LoginRequest) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	password := strings.TrimSpace(in.Password)
	if username == "" {
		return nil, invalid("Please enter username.")
	}
	if password == "" {
		return nil, invalid("Please enter your password.")
	}

	q := s.store.Queries()
	user, err := q.UserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if err := q.TouchLastLogin(ctx, user.UserID); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes the account email and, when a new password is
// supplied, rotates the password after verifying the current one.
func (s *UserService) UpdateProfile(ctx context.Context, ident auth.Identity, in models.UpdateProfileRequest) (*models.User, error) {
	email := strings.TrimSpace(in.Email)
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, invalid("Invalid email format")
	}

	q := s.store.Queries()
	taken, err := q.EmailTaken(ctx, email, ident.UserID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, &store.ConflictError{Message: "Email already exists"}
	}

	var newHash *string
	if in.NewPassword != "" {
		if in.CurrentPassword == "" {
			return nil, invalid("Current password is required to change password")
		}
		if in.NewPassword != in.ConfirmPassword {
			return nil, invalid("New passwords don't match")
		}
		if len(in.NewPassword) < 6 {
			return nil, invalid("New password must be at least 6 characters")
		}
		user, err := q.UserByID(ctx, ident.UserID)
		if err != nil {
			return nil, err
		}
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)) != nil {
			return nil, invalid("Current password is incorrect")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		h := string(hash)
		newHash = &h
	}

	if err := q.UpdateUserProfile(ctx, ident.UserID, email, newHash); err != nil {
		return nil, err
	}
	return q.UserByID(ctx, ident.UserID)
}
