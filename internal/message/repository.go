package message

import (
	"context"

	"github.com/google/uuid"

	models "github.com/binay-tripathy/CareerTree/internal/message/model"
)

type MessageRepository interface {
	// CreateMessage inserts the message and its attachments in one
	// transaction and reloads it with sender/receiver display data.
	CreateMessage(ctx context.Context, msg *models.Message) (*models.Message, error)

	// ListBetween returns the full history between the pair in chronological
	// order (created_at asc, id asc), sender/receiver populated.
	ListBetween(ctx context.Context, a, b uuid.UUID) ([]*models.Message, error)

	// MarkConversationRead flips unread messages from counterpart to reader;
	// returns how many rows changed (0 on repeat calls).
	MarkConversationRead(ctx context.Context, readerID, counterpartID uuid.UUID) (int64, error)

	// LatestPerCounterpart returns, for each counterpart in the given set
	// that the user has exchanged at least one message with, the most recent
	// message of that conversation.
	LatestPerCounterpart(ctx context.Context, userID uuid.UUID, counterpartIDs []uuid.UUID) ([]*models.Message, error)

	// UnreadCounts groups the user's unread messages by sender.
	UnreadCounts(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int, error)
}
