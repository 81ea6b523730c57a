package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/meltforce/hybridcoach/internal/models"
)

const selectInjurySQL = `
	SELECT id, user_id, body_part, injury_type, severity, pain_level, status, notes, created_at, updated_at
	FROM injuries`

func scanInjury(row pgx.Row) (models.Injury, error) {
	var i models.Injury
	var bodyPart, severity, status string
	err := row.Scan(&i.ID, &i.UserID, &bodyPart, &i.InjuryType, &severity, &i.PainLevel,
		&status, &i.Notes, &i.CreatedAt, &i.UpdatedAt)
	i.BodyPart = models.BodyPart(bodyPart)
	i.Severity = models.Severity(severity)
	i.Status = models.InjuryStatus(status)
	return i, err
}

// InsertInjury stores a new injury and returns its ID.
func (db *DB) InsertInjury(ctx context.Context, i models.Injury) (int64, error) {
	var id int64
	err := db.Pool.QueryRow(ctx,
		`INSERT INTO injuries (user_id, body_part, injury_type, severity, pain_level, status, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		i.UserID, string(i.BodyPart), i.InjuryType, string(i.Severity), i.PainLevel,
		string(i.Status), i.Notes, i.CreatedAt, i.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("inserting injury: %w", err)
	}
	return id, nil
}

// GetInjury returns one of the user's injuries, or nil if it does not exist.
func (db *DB) GetInjury(ctx context.Context, userID int, id int64) (*models.Injury, error) {
	i, err := scanInjury(db.Pool.QueryRow(ctx, selectInjurySQL+` WHERE user_id = $1 AND id = $2`, userID, id))
	if noRows(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying injury %d: %w", id, err)
	}
	return &i, nil
}

// UpdateInjury writes the mutable fields back.
func (db *DB) UpdateInjury(ctx context.Context, i models.Injury) error {
	_, err := db.Pool.Exec(ctx,
		`UPDATE injuries SET pain_level = $3, status = $4, notes = $5, updated_at = $6
		 WHERE user_id = $1 AND id = $2`,
		i.UserID, i.ID, i.PainLevel, string(i.Status), i.Notes, i.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating injury %d: %w", i.ID, err)
	}
	return nil
}

// ListInjuries returns the user's injuries, newest first. activeOnly skips
// healed ones.
func (db *DB) ListInjuries(ctx context.Context, userID int, activeOnly bool) ([]models.Injury, error) {
	query := selectInjurySQL + ` WHERE user_id = $1`
	if activeOnly {
		query += ` AND status <> 'healed'`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := db.Pool.Query(ctx, query, userID)
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
