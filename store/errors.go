package store

import (
	"errors"
	"fmt"
)

// ErrTaskNotFound covers both a missing task and a task owned by another
// user. The two cases are deliberately indistinguishable so ids cannot be
// probed across accounts.
var ErrTaskNotFound = errors.New("Task not found or access denied")

// ErrCategoryNotFound mirrors ErrTaskNotFound for categories.
var ErrCategoryNotFound = errors.New("Category not found or access denied")

// ErrUserNotFound is returned for user lookups with no match.
var ErrUserNotFound = errors.New("User not found")

// ConflictError reports a violated uniqueness or reference invariant.
type ConflictError struct {
	Message string
	// TaskCount is the number of tasks blocking a category delete;
	// zero for name or account conflicts.
	TaskCount int
}

func (e *ConflictError) Error() string { return e.Message }

func newNameConflict() *ConflictError {
	return &ConflictError{Message: "A category with this name already exists"}
}

func newReferenceConflict(n int) *ConflictError {
	return &ConflictError{
		Message:   fmt.Sprintf("Cannot delete category: it is assigned to %d task(s)", n),
		TaskCount: n,
	}
}
