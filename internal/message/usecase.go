package message

import (
	"context"

	"github.com/google/uuid"
)

// MessageUsecase computes conversation views over the append-only message
// log. Every operation is gated on the two parties being connected; the
// connection module is the authority for that check.
type MessageUsecase interface {
	Send(ctx context.Context, senderID uuid.UUID, cmd SendCommand) (*MessageDTO, error)

	// GetHistory returns the chronological message history with a
	// counterpart and, as a documented side effect, marks every unread
	// message addressed to the caller as read.
	GetHistory(ctx context.Context, userID, counterpartID uuid.UUID) ([]*MessageDTO, error)

	// ListConversations derives one summary per counterpart the caller has
	// messaged with, most recent conversation first. Connections without
	// messages are omitted.
	ListConversations(ctx context.Context, userID uuid.UUID) (*ConversationListDTO, error)

	// MarkRead clears the unread count for one conversation without
	// fetching history. Idempotent.
	MarkRead(ctx context.Context, userID, counterpartID uuid.UUID) error
}
