package store

import (
	"context"
	"fmt"

	"todo-service/models"

	"github.com/jmoiron/sqlx"
)

// TaskStats computes the four dashboard aggregates for the owner. "Today"
// is the store's local date. Pending and overdue partition the
// not-completed tasks: a task with no due date or one due today or later is
// pending, a task due before today is overdue. Run it through InTx when the
// counts must come from one snapshot.
func (q *Queries) TaskStats(ctx context.Context, ownerID int64) (models.TaskStats, error) {
	var stats models.TaskStats
	counts := []struct {
		dest  *int
		query string
	}{
		{&stats.Total,
			`SELECT COUNT(*) FROM tasks WHERE user_id = ?`},
		{&stats.Completed,
			`SELECT COUNT(*) FROM tasks WHERE user_id = ? AND completed = 1`},
		{&stats.Pending,
			`SELECT COUNT(*) FROM tasks
			 WHERE user_id = ? AND completed = 0
			   AND (due_date IS NULL OR due_date >= date('now', 'localtime'))`},
		{&stats.Overdue,
			`SELECT COUNT(*) FROM tasks
			 WHERE user_id = ? AND completed = 0
			   AND due_date < date('now', 'localtime')`},
	}
	for _, c := range counts {
		if err := sqlx.GetContext(ctx, q.ext, c.dest, c.query, ownerID); err != nil {
			return models.TaskStats{}, fmt.Errorf("task stats: %w", err)
		}
	}
	return stats, nil
}
