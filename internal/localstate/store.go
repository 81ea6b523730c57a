// Package localstate is a single-file SQLite store for running the coach
// offline from the CLI. It mirrors the PostgreSQL repository.
package localstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/hybridcoach/internal/models"
	_ "modernc.org/sqlite"
)

// Fixed-width timestamps keep lexical order equal to time order.
const (
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
	dayLayout  = "2006-01-02"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS athlete_states (
		user_id         INTEGER PRIMARY KEY,
		cns             REAL NOT NULL DEFAULT 0,
		muscular_upper  REAL NOT NULL DEFAULT 0,
		muscular_lower  REAL NOT NULL DEFAULT 0,
		cardio          REAL NOT NULL DEFAULT 0,
		phase           TEXT NOT NULL DEFAULT 'Accumulation',
		week_in_phase   INTEGER NOT NULL DEFAULT 1,
		last_workout_at TEXT,
		updated_at      TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS injuries (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id     INTEGER NOT NULL,
		body_part   TEXT NOT NULL,
		injury_type TEXT NOT NULL DEFAULT '',
		severity    TEXT NOT NULL,
		pain_level  INTEGER NOT NULL,
		status      TEXT NOT NULL,
		notes       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS daily_logs (
		user_id          INTEGER NOT NULL,
		date             TEXT NOT NULL,
		calories_in      INTEGER NOT NULL DEFAULT 0,
		training_minutes INTEGER NOT NULL DEFAULT 0,
		recovery_score   INTEGER,
		sleep_hours      REAL,
		mood             INTEGER,
		soreness         INTEGER,
		notes            TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (user_id, date)
	)`,
	`CREATE TABLE IF NOT EXISTS training_sessions (
		id               TEXT PRIMARY KEY,
		user_id          INTEGER NOT NULL,
		discipline       TEXT NOT NULL,
		impact_type      TEXT NOT NULL,
		started_at       TEXT NOT NULL,
		duration_minutes INTEGER NOT NULL,
		rpe              INTEGER NOT NULL,
		notes            TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		id         TEXT PRIMARY KEY,
		user_id    INTEGER NOT NULL,
		role       TEXT NOT NULL,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS daily_tasks (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id     INTEGER NOT NULL,
		date        TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		done        INTEGER NOT NULL DEFAULT 0,
		UNIQUE (user_id, date, title)
	)`,
}

// Store persists athlete data in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dir/coach.db.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}
	return OpenPath(filepath.Join(dir, "coach.db"))
}

// OpenPath opens the database at an explicit path or DSN such as
// "file::memory:".
func OpenPath(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}
	// One connection keeps in-memory databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating state tables: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func formatTime(t time.Time) string { return t.UTC().Format(timeLayout) }

func parseTime(v string) (time.Time, error) {
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", v, err)
	}
	return t, nil
}

func formatDay(t time.Time) string { return models.Day(t).Format(dayLayout) }

// GetAthleteState returns the stored state, or nil if there is none.
func (s *Store) GetAthleteState(ctx context.Context, userID int) (*models.AthleteState, error) {
	row := s.db.QueryRowContext(ctx, `SELECT user_id, cns, muscular_upper, muscular_lower, cardio,
		phase, week_in_phase, last_workout_at, updated_at FROM athlete_states WHERE user_id = ?`, userID)
	st, err := scanState(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying athlete state: %w", err)
	}
	return &st, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanState(row scanner) (models.AthleteState, error) {
	var st models.AthleteState
	var phase, updated string
	var last sql.NullString
	if err := row.Scan(&st.UserID, &st.Fatigue.CNS, &st.Fatigue.MuscularUpper, &st.Fatigue.MuscularLower,
		&st.Fatigue.Cardio, &phase, &st.WeekInPhase, &last, &updated); err != nil {
		return st, err
	}
	st.Phase = models.MesocyclePhase(phase)
	var err error
	if st.UpdatedAt, err = parseTime(updated); err != nil {
		return st, err
	}
	if last.Valid {
		t, err := parseTime(last.String)
		if err != nil {
			return st, err
		}
		st.LastWorkoutAt = &t
	}
	return st.Normalize(), nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func saveState(ctx context.Context, q execer, st models.AthleteState) error {
	var last any
	if st.LastWorkoutAt != nil {
		last = formatTime(*st.LastWorkoutAt)
	}
	_, err := q.ExecContext(ctx, `INSERT OR REPLACE INTO athlete_states
		(user_id, cns, muscular_upper, muscular_lower, cardio, phase, week_in_phase, last_workout_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		st.UserID, st.Fatigue.CNS, st.Fatigue.MuscularUpper, st.Fatigue.MuscularLower, st.Fatigue.Cardio,
		string(st.Phase), st.WeekInPhase, last, formatTime(st.UpdatedAt))
	if err != nil {
		return fmt.Errorf("saving athlete state: %w", err)
	}
	return nil
}

// SaveAthleteState inserts or replaces the user's state.
func (s *Store) SaveAthleteState(ctx context.Context, st models.AthleteState) error {
	return saveState(ctx, s.db, st)
}

// ListAthleteStates returns every stored state.
func (s *Store) ListAthleteStates(ctx context.Context) ([]models.AthleteState, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT user_id, cns, muscular_upper, muscular_lower, cardio,
		phase, week_in_phase, last_workout_at, updated_at FROM athlete_states ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("querying athlete states: %w", err)
	}
	defer rows.Close()

	var result []models.AthleteState
	for rows.Next() {
		st, err := scanState(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning athlete state: %w", err)
		}
		result = append(result, st)
	}
	return result, rows.Err()
}

// ListUserIDs returns every user with a stored state.
func (s *Store) ListUserIDs(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT user_id FROM athlete_states ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RecordSession stores the post-session state, the session and the day's
// added minutes in one transaction.
func (s *Store) RecordSession(ctx context.Context, st models.AthleteState, sess models.TrainingSession) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := saveState(ctx, tx, st); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO training_sessions
		(id, user_id, discipline, impact_type, started_at, duration_minutes, rpe, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID.String(), sess.UserID, sess.Discipline, sess.ImpactType, formatTime(sess.StartedAt),
		sess.DurationMinutes, sess.RPE, sess.Notes); err != nil {
		return fmt.Errorf("inserting training session: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO daily_logs (user_id, date, training_minutes) VALUES (?, ?, ?)
		ON CONFLICT (user_id, date) DO UPDATE SET training_minutes = training_minutes + excluded.training_minutes`,
		sess.UserID, formatDay(sess.StartedAt), sess.DurationMinutes); err != nil {
		return fmt.Errorf("adding training minutes: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ListTrainingSessions returns the most recent sessions, newest first.
func (s *Store) ListTrainingSessions(ctx context.Context, userID, limit int) ([]models.TrainingSession, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, user_id, discipline, impact_type, started_at,
		duration_minutes, rpe, notes FROM training_sessions WHERE user_id = ?
		ORDER BY started_at DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying training sessions: %w", err)
	}
	defer rows.Close()

	var result []models.TrainingSession
	for rows.Next() {
		var t models.TrainingSession
		var id, started string
		if err := rows.Scan(&id, &t.UserID, &t.Discipline, &t.ImpactType, &started,
			&t.DurationMinutes, &t.RPE, &t.Notes); err != nil {
			return nil, fmt.Errorf("scanning training session: %w", err)
		}
		if t.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing session id: %w", err)
		}
		if t.StartedAt, err = parseTime(started); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}
