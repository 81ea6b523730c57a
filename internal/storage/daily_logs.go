package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/meltforce/hybridcoach/internal/models"
)

// GetDailyLog returns the log for a day, or nil if nothing was recorded.
func (db *DB) GetDailyLog(ctx context.Context, userID int, day time.Time) (*models.DailyLog, error) {
	var l models.DailyLog
	err := db.Pool.QueryRow(ctx,
		`SELECT user_id, date, calories_in, training_minutes, recovery_score,
		 sleep_hours, mood, soreness, notes
		 FROM daily_logs WHERE user_id = $1 AND date = $2`,
		userID, models.Day(day)).Scan(&l.UserID, &l.Date, &l.CaloriesIn, &l.TrainingMinutes,
		&l.RecoveryScore, &l.SleepHours, &l.Mood, &l.Soreness, &l.Notes)
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying daily log: %w", err)
	}
	return &l, nil
}

// UpsertDailyLog inserts or replaces the log for l.Date.
func (db *DB) UpsertDailyLog(ctx context.Context, l models.DailyLog) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO daily_logs (user_id, date, calories_in, training_minutes, recovery_score,
		 sleep_hours, mood, soreness, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (user_id, date) DO UPDATE SET
			calories_in = EXCLUDED.calories_in,
			training_minutes = EXCLUDED.training_minutes,
			recovery_score = EXCLUDED.recovery_score,
			sleep_hours = EXCLUDED.sleep_hours,
			mood = EXCLUDED.mood,
			soreness = EXCLUDED.soreness,
			notes = EXCLUDED.notes`,
		l.UserID, models.Day(l.Date), l.CaloriesIn, l.TrainingMinutes, l.RecoveryScore,
		l.SleepHours, l.Mood, l.Soreness, l.Notes)
	if err != nil {
		return fmt.Errorf("upserting daily log: %w", err)
	}
	return nil
}

func addTrainingMinutes(ctx context.Context, q execer, userID int, day time.Time, minutes int) error {
	_, err := q.Exec(ctx,
		`INSERT INTO daily_logs (user_id, date, training_minutes)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, date) DO UPDATE
			SET training_minutes = daily_logs.training_minutes + EXCLUDED.training_minutes`,
		userID, day, minutes)
	if err != nil {
		return fmt.Errorf("adding training minutes: %w", err)
	}
	return nil
}
