package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/meltforce/hybridcoach/internal/models"
)

// EnsureDailyTasks creates the given tasks for the day if they do not exist
// yet and returns the day's tasks.
func (db *DB) EnsureDailyTasks(ctx context.Context, userID int, day time.Time, tasks []models.DailyTask) ([]models.DailyTask, error) {
	day = models.Day(day)
	for _, t := range tasks {
		if _, err := db.Pool.Exec(ctx,
			`INSERT INTO daily_tasks (user_id, date, title, description)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (user_id, date, title) DO NOTHING`,
			userID, day, t.Title, t.Description); err != nil {
			return nil, fmt.Errorf("seeding daily task %q: %w", t.Title, err)
		}
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, date, title, description, done
		 FROM daily_tasks WHERE user_id = $1 AND date = $2 ORDER BY id`,
		userID, day)
	if err != nil {
		return nil, fmt.Errorf("querying daily tasks: %w", err)
	}
	defer rows.Close()

	var result []models.DailyTask
	for rows.Next() {
		var t models.DailyTask
		if err := rows.Scan(&t.ID, &t.UserID, &t.Date, &t.Title, &t.Description, &t.Done); err != nil {
			return nil, fmt.Errorf("scanning daily task: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// CompleteDailyTask marks a task done. It reports false if the task does
// not belong to the user.
func (db *DB) CompleteDailyTask(ctx context.Context, userID int, id int64) (bool, error) {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE daily_tasks SET done = TRUE WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return false, fmt.Errorf("completing daily task %d: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}
