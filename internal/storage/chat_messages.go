package storage

import (
	"context"
	"fmt"
	"slices"

	"github.com/meltforce/hybridcoach/internal/models"
)

// InsertChatMessage stores one turn of a coach conversation.
func (db *DB) InsertChatMessage(ctx context.Context, m models.ChatMessage) error {
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO chat_messages (id, user_id, role, content, created_at) VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.UserID, m.Role, m.Content, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

// ListChatMessages returns the user's latest messages in chronological order.
func (db *DB) ListChatMessages(ctx context.Context, userID, limit int) ([]models.ChatMessage, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, role, content, created_at
		 FROM chat_messages
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying chat messages: %w", err)
	}
	defer rows.Close()

	var result []models.ChatMessage
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	slices.Reverse(result)
	return result, nil
}
