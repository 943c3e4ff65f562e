package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"todo-service/models"

	"github.com/jmoiron/sqlx"
)

// CreateUser inserts an account and returns its id. Username and email
// collisions surface as conflicts with the registration-form wording.
func (q *Queries) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	res, err := q.ext.ExecContext(ctx,
		`INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`,
		username, email, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, userConflict(err)
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert user id: %w", err)
	}
	return id, nil
}

func userConflict(err error) *ConflictError {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "users.username"):
		return &ConflictError{Message: "This username is already taken."}
	case strings.Contains(msg, "users.email"):
		return &ConflictError{Message: "This email is already registered."}
	default:
		return &ConflictError{Message: "Account already exists"}
	}
}

// UserByUsername looks up an account for login.
func (q *Queries) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, q.ext, &user,
		`SELECT user_id, username, email, password_hash, created_at, last_login
		 FROM users WHERE username = ?`, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &user, nil
}

// UserByID looks up an account by primary key.
func (q *Queries) UserByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, q.ext, &user,
		`SELECT user_id, username, email, password_hash, created_at, last_login
		 FROM users WHERE user_id = ?`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &user, nil
}

// UsernameTaken reports whether any account already uses the username.
func (q *Queries) UsernameTaken(ctx context.Context, username string) (bool, error) {
	var count int
	if err := sqlx.GetContext(ctx, q.ext, &count,
		`SELECT COUNT(*) FROM users WHERE username = ?`, username); err != nil {
		return false, fmt.Errorf("check username: %w", err)
	}
	return count > 0, nil
}

// EmailTaken reports whether another account uses the email. Pass the id of
// the account being edited to exclude it from the check, or zero on
// registration.
func (q *Queries) EmailTaken(ctx context.Context, email string, excludeUserID int64) (bool, error) {
	var count int
	if err := sqlx.GetContext(ctx, q.ext, &count,
		`SELECT COUNT(*) FROM users WHERE email = ? AND user_id != ?`,
		email, excludeUserID); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}

// TouchLastLogin stamps the account's last successful login.
func (q *Queries) TouchLastLogin(ctx context.Context, userID int64) error {
	if _, err := q.ext.ExecContext(ctx,
		`UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

// UpdateUserProfile sets the account email, and the password hash when a
// rotation was requested.
func (q *Queries) UpdateUserProfile(ctx context.Context, userID int64, email string, passwordHash *string) error {
	setParts := []string{"email = ?"}
	args := []interface{}{email}
	if passwordHash != nil {
		setParts = append(setParts, "password_hash = ?")
		args = append(args, *passwordHash)
	}
	args = append(args, userID)

	query := "UPDATE users SET " + strings.Join(setParts, ", ") + " WHERE user_id = ?"
	res, err := q.ext.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return userConflict(err)
		}
		return fmt.Errorf("update user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update user rows: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}
	return nil
}
