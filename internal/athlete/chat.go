package athlete

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/meltforce/hybridcoach/internal/coach"
	"github.com/meltforce/hybridcoach/internal/models"
)

const contextSessions = 3

// Chat stores the athlete's message, asks the coach with the current
// context and stores the reply.
func (s *Service) Chat(ctx context.Context, userID int, message string) (*models.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: empty message", ErrInvalidInput)
	}

	snap, err := s.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.store.ListTrainingSessions(ctx, userID, contextSessions)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}

	if err := s.store.InsertChatMessage(ctx, models.ChatMessage{
		ID: uuid.New(), UserID: userID, Role: models.RoleUser, Content: message, CreatedAt: s.now(),
	}); err != nil {
		return nil, fmt.Errorf("saving chat message: %w", err)
	}

	text := s.coach.Reply(ctx, coach.BuildContext(&snap.State, sessions, snap.Today), message)
	reply := models.ChatMessage{
		ID: uuid.New(), UserID: userID, Role: models.RoleCoach, Content: text, CreatedAt: s.now(),
	}
	if err := s.store.InsertChatMessage(ctx, reply); err != nil {
		return nil, fmt.Errorf("saving coach reply: %w", err)
	}
	return &reply, nil
}

// ChatHistory returns the latest messages in chronological order.
func (s *Service) ChatHistory(ctx context.Context, userID, limit int) ([]models.ChatMessage, error) {
	msgs, err := s.store.ListChatMessages(ctx, userID, listLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("listing chat messages: %w", err)
	}
	if msgs == nil {
		msgs = []models.ChatMessage{}
	}
	return msgs, nil
}
