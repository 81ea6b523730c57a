package storage

import (
	"context"
	"fmt"

	"github.com/meltforce/hybridcoach/internal/models"
)

func insertTrainingSession(ctx context.Context, q execer, t models.TrainingSession) error {
	_, err := q.Exec(ctx,
		`INSERT INTO training_sessions (id, user_id, discipline, impact_type, started_at,
		 duration_minutes, rpe, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		t.ID, t.UserID, t.Discipline, t.ImpactType, t.StartedAt, t.DurationMinutes, t.RPE, t.Notes)
	if err != nil {
		return fmt.Errorf("inserting training session: %w", err)
	}
	return nil
}

// ListTrainingSessions returns the user's most recent sessions, newest first.
func (db *DB) ListTrainingSessions(ctx context.Context, userID, limit int) ([]models.TrainingSession, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, discipline, impact_type, started_at, duration_minutes, rpe, notes
		 FROM training_sessions
		 WHERE user_id = $1
		 ORDER BY started_at DESC
		 LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying training sessions: %w", err)
	}
	defer rows.Close()

	var result []models.TrainingSession
	for rows.Next() {
		var t models.TrainingSession
		if err := rows.Scan(&t.ID, &t.UserID, &t.Discipline, &t.ImpactType, &t.StartedAt,
			&t.DurationMinutes, &t.RPE, &t.Notes); err != nil {
			return nil, fmt.Errorf("scanning training session: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
