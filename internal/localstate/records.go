package localstate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/meltforce/hybridcoach/internal/models"
)

const injuryColumns = `id, user_id, body_part, injury_type, severity, pain_level, status, notes, created_at, updated_at`

func scanInjury(row scanner) (models.Injury, error) {
	var i models.Injury
	var bodyPart, severity, status, created, updated string
	if err := row.Scan(&i.ID, &i.UserID, &bodyPart, &i.InjuryType, &severity, &i.PainLevel,
		&status, &i.Notes, &created, &updated); err != nil {
		return i, err
	}
	i.BodyPart = models.BodyPart(bodyPart)
	i.Severity = models.Severity(severity)
	i.Status = models.InjuryStatus(status)
	var err error
	if i.CreatedAt, err = parseTime(created); err != nil {
		return i, err
	}
	i.UpdatedAt, err = parseTime(updated)
	return i, err
}

// InsertInjury stores a new injury and returns its ID.
func (s *Store) InsertInjury(ctx context.Context, i models.Injury) (int64, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO injuries
		(user_id, body_part, injury_type, severity, pain_level, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		i.UserID, string(i.BodyPart), i.InjuryType, string(i.Severity), i.PainLevel,
		string(i.Status), i.Notes, formatTime(i.CreatedAt), formatTime(i.UpdatedAt))
	if err != nil {
		return 0, fmt.Errorf("inserting injury: %w", err)
	}
	return res.LastInsertId()
}

// GetInjury returns one of the user's injuries, or nil if it does not exist.
func (s *Store) GetInjury(ctx context.Context, userID int, id int64) (*models.Injury, error) {
	i, err := scanInjury(s.db.QueryRowContext(ctx,
		`SELECT `+injuryColumns+` FROM injuries WHERE user_id = ? AND id = ?`, userID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying injury %d: %w", id, err)
	}
	return &i, nil
}

// UpdateInjury writes the mutable fields back.
func (s *Store) UpdateInjury(ctx context.Context, i models.Injury) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE injuries SET pain_level = ?, status = ?, notes = ?, updated_at = ? WHERE user_id = ? AND id = ?`,
		i.PainLevel, string(i.Status), i.Notes, formatTime(i.UpdatedAt), i.UserID, i.ID)
	if err != nil {
		return fmt.Errorf("updating injury %d: %w", i.ID, err)
	}
	return nil
}

// ListInjuries returns the user's injuries, newest first.
func (s *Store) ListInjuries(ctx context.Context, userID int, activeOnly bool) ([]models.Injury, error) {
	query := `SELECT ` + injuryColumns + ` FROM injuries WHERE user_id = ?`
	if activeOnly {
		query += ` AND status <> 'healed'`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying injuries: %w", err)
	}
	defer rows.Close()

	var result []models.Injury
	for rows.Next() {
		i, err := scanInjury(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning injury: %w", err)
		}
		result = append(result, i)
	}
	return result, rows.Err()
}

// GetDailyLog returns the log for a day, or nil if nothing was recorded.
func (s *Store) GetDailyLog(ctx context.Context, userID int, day time.Time) (*models.DailyLog, error) {
	var l models.DailyLog
	var recovery, mood, soreness sql.NullInt64
	var sleep sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `SELECT user_id, calories_in, training_minutes, recovery_score,
		sleep_hours, mood, soreness, notes FROM daily_logs WHERE user_id = ? AND date = ?`,
		userID, formatDay(day)).Scan(&l.UserID, &l.CaloriesIn, &l.TrainingMinutes, &recovery,
		&sleep, &mood, &soreness, &l.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying daily log: %w", err)
	}
	l.Date = models.Day(day)
	l.RecoveryScore = intPtr(recovery)
	l.Mood = intPtr(mood)
	l.Soreness = intPtr(soreness)
	if sleep.Valid {
		l.SleepHours = &sleep.Float64
	}
	return &l, nil
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullable[T int | float64](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// UpsertDailyLog inserts or replaces the log for l.Date.
func (s *Store) UpsertDailyLog(ctx context.Context, l models.DailyLog) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO daily_logs
		(user_id, date, calories_in, training_minutes, recovery_score, sleep_hours, mood, soreness, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.UserID, formatDay(l.Date), l.CaloriesIn, l.TrainingMinutes, nullable(l.RecoveryScore),
		nullable(l.SleepHours), nullable(l.Mood), nullable(l.Soreness), l.Notes)
	if err != nil {
		return fmt.Errorf("upserting daily log: %w", err)
	}
	return nil
}

// InsertChatMessage stores one turn of a coach conversation.
func (s *Store) InsertChatMessage(ctx context.Context, m models.ChatMessage) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, user_id, role, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID.String(), m.UserID, m.Role, m.Content, formatTime(m.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

// ListChatMessages returns the latest messages in chronological order.
func (s *Store) ListChatMessages(ctx context.Context, userID, limit int) ([]models.ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, user_id, role, content, created_at
		FROM chat_messages WHERE user_id = ? ORDER BY created_at DESC LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying chat messages: %w", err)
	}
	defer rows.Close()

	var result []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		var id, created string
		if err := rows.Scan(&id, &m.UserID, &m.Role, &m.Content, &created); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		if m.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parsing message id: %w", err)
		}
		if m.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	slices.Reverse(result)
	return result, nil
}

// EnsureDailyTasks creates missing tasks for the day and returns the day's tasks.
func (s *Store) EnsureDailyTasks(ctx context.Context, userID int, day time.Time, tasks []models.DailyTask) ([]models.DailyTask, error) {
	d := formatDay(day)
	for _, t := range tasks {
		if _, err := s.db.ExecContext(ctx, `INSERT OR IGNORE INTO daily_tasks (user_id, date, title, description)
			VALUES (?, ?, ?, ?)`, userID, d, t.Title, t.Description); err != nil {
			return nil, fmt.Errorf("seeding daily task %q: %w", t.Title, err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `SELECT id, user_id, title, description, done
		FROM daily_tasks WHERE user_id = ? AND date = ? ORDER BY id`, userID, d)
	if err != nil {
		return nil, fmt.Errorf("querying daily tasks: %w", err)
	}
	defer rows.Close()

	var result []models.DailyTask
	for rows.Next() {
		t := models.DailyTask{Date: models.Day(day)}
		if err := rows.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Done); err != nil {
			return nil, fmt.Errorf("scanning daily task: %w", err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

// CompleteDailyTask marks a task done, reporting false if it is not the user's.
func (s *Store) CompleteDailyTask(ctx context.Context, userID int, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE daily_tasks SET done = 1 WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return false, fmt.Errorf("completing daily task %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
