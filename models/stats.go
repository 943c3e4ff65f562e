package models

// TaskStats are the dashboard aggregate counts. Pending and overdue are
// mutually exclusive and both exclude completed tasks, so
// completed + pending + overdue always equals total.
type TaskStats struct {
	Total     int `json:"total" db:"total"`
	Completed int `json:"completed" db:"completed"`
	Pending   int `json:"pending" db:"pending"`
	Overdue   int `json:"overdue" db:"overdue"`
}
