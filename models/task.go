package models

import "time"

// TaskCategory is the category payload embedded in task responses.
type TaskCategory struct {
	CategoryID int64  `json:"category_id" db:"category_id"`
	Name       string `json:"name" db:"name"`
	Color      string `json:"color" db:"color"`
}

// Task represents a to-do item as the API returns it.
// Completed is materialized as a strict boolean regardless of how the
// store persists it.
type Task struct {
	TaskID       int64          `json:"task_id" db:"task_id"`
	Title        string         `json:"title" db:"title"`
	Description  *string        `json:"description" db:"description"`
	DueDate      *string        `json:"due_date" db:"due_date"`
	Completed    bool           `json:"completed" db:"completed"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	PriorityID   int64          `json:"priority_id" db:"priority_id"`
	PriorityName string         `json:"priority_name" db:"priority_name"`
	Categories   []TaskCategory `json:"categories"`
}

// SaveTaskRequest is the POST /tasks body. A zero TaskID means insert,
// anything else updates the matching task owned by the caller.
//
// Optional fields are pointers so absence is distinguishable from the zero
// value: a nil Categories leaves links untouched, an empty slice clears them.
type SaveTaskRequest struct {
	TaskID      ID      `json:"task_id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	PriorityID  *ID     `json:"priority_id"`
	Completed   *Flag   `json:"completed"`
	Categories  *[]ID   `json:"categories"`
}
