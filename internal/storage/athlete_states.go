package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/meltforce/hybridcoach/internal/models"
)

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const upsertAthleteStateSQL = `
	INSERT INTO athlete_states (user_id, cns, muscular_upper, muscular_lower, cardio,
		phase, week_in_phase, last_workout_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (user_id) DO UPDATE SET
		cns = EXCLUDED.cns,
		muscular_upper = EXCLUDED.muscular_upper,
		muscular_lower = EXCLUDED.muscular_lower,
		cardio = EXCLUDED.cardio,
		phase = EXCLUDED.phase,
		week_in_phase = EXCLUDED.week_in_phase,
		last_workout_at = EXCLUDED.last_workout_at,
		updated_at = EXCLUDED.updated_at`

const selectAthleteStateSQL = `
	SELECT user_id, cns, muscular_upper, muscular_lower, cardio,
		phase, week_in_phase, last_workout_at, updated_at
	FROM athlete_states`

func upsertAthleteState(ctx context.Context, q execer, s models.AthleteState) error {
	_, err := q.Exec(ctx, upsertAthleteStateSQL,
		s.UserID, s.Fatigue.CNS, s.Fatigue.MuscularUpper, s.Fatigue.MuscularLower, s.Fatigue.Cardio,
		string(s.Phase), s.WeekInPhase, s.LastWorkoutAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting athlete state for user %d: %w", s.UserID, err)
	}
	return nil
}

func scanAthleteState(row pgx.Row) (models.AthleteState, error) {
	var s models.AthleteState
	var phase string
	err := row.Scan(&s.UserID, &s.Fatigue.CNS, &s.Fatigue.MuscularUpper, &s.Fatigue.MuscularLower,
		&s.Fatigue.Cardio, &phase, &s.WeekInPhase, &s.LastWorkoutAt, &s.UpdatedAt)
	s.Phase = models.MesocyclePhase(phase)
	return s, err
}

// GetAthleteState returns the stored state, or nil if the user has none yet.
func (db *DB) GetAthleteState(ctx context.Context, userID int) (*models.AthleteState, error) {
	s, err := scanAthleteState(db.Pool.QueryRow(ctx, selectAthleteStateSQL+` WHERE user_id = $1`, userID))
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying athlete state for user %d: %w", userID, err)
	}
	s = s.Normalize()
	return &s, nil
}

// SaveAthleteState inserts or replaces the user's state.
func (db *DB) SaveAthleteState(ctx context.Context, s models.AthleteState) error {
	return upsertAthleteState(ctx, db.Pool, s)
}

// ListAthleteStates returns every stored state.
func (db *DB) ListAthleteStates(ctx context.Context) ([]models.AthleteState, error) {
	rows, err := db.Pool.Query(ctx, selectAthleteStateSQL+` ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("querying athlete states: %w", err)
	}
	defer rows.Close()

	var result []models.AthleteState
	for rows.Next() {
		s, err := scanAthleteState(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning athlete state: %w", err)
		}
		result = append(result, s.Normalize())
	}
	return result, rows.Err()
}

// RecordSession stores the post-session state, the session itself and the
// added training minutes for the session's day in one transaction.
func (db *DB) RecordSession(ctx context.Context, s models.AthleteState, sess models.TrainingSession) error {
	return db.inTx(ctx, func(tx pgx.Tx) error {
		if err := upsertAthleteState(ctx, tx, s); err != nil {
			return err
		}
		if err := insertTrainingSession(ctx, tx, sess); err != nil {
			return err
		}
		return addTrainingMinutes(ctx, tx, sess.UserID, models.Day(sess.StartedAt), sess.DurationMinutes)
	})
}
