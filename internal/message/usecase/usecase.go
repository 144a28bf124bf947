package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/binay-tripathy/CareerTree/internal/connection"
	"github.com/binay-tripathy/CareerTree/internal/message"
	models "github.com/binay-tripathy/CareerTree/internal/message/model"
	"github.com/binay-tripathy/CareerTree/internal/user"
	"github.com/binay-tripathy/CareerTree/pkg/errors"
	"github.com/binay-tripathy/CareerTree/pkg/logger"
)

// MessageUsecase is a read-model over the append-only message log. It never
// mutates the connection graph; it only consults it to authorize access and
// to scope conversation aggregation to legitimate counterparts.
type MessageUsecase struct {
	repo        message.MessageRepository
	connections connection.ConnectionUsecase
	logger      logger.Logger
}

func NewMessageUsecase(repo message.MessageRepository, connections connection.ConnectionUsecase, logger logger.Logger) *MessageUsecase {
	return &MessageUsecase{repo: repo, connections: connections, logger: logger}
}

func (uc *MessageUsecase) Send(ctx context.Context, senderID uuid.UUID, cmd message.SendCommand) (*message.MessageDTO, error) {
	connected, err := uc.connections.Connected(ctx, senderID, cmd.ReceiverID)
	if err != nil {
		return nil, err
	}
	if !connected {
		return nil, errors.ErrNotConnected
	}

	content := strings.TrimSpace(cmd.Content)
	if content == "" && len(cmd.Attachments) == 0 {
		return nil, errors.ErrEmptyContent
	}

	msg := &models.Message{
		SenderID:   senderID,
		ReceiverID: cmd.ReceiverID,
		Content:    content,
	}
	for _, a := range cmd.Attachments {
		kind := a.Kind
		switch kind {
		case models.AttachmentKindImage, models.AttachmentKindVideo, models.AttachmentKindDocument:
		default:
			kind = models.AttachmentKindImage
		}
		msg.Attachments = append(msg.Attachments, &models.Attachment{
			URL:              a.URL,
			Kind:             kind,
			Format:           a.Format,
			ByteSize:         a.ByteSize,
			OriginalFilename: a.OriginalFilename,
			StorageID:        a.StorageID,
		})
	}

	saved, err := uc.repo.CreateMessage(ctx, msg)
	if err != nil {
		uc.logger.Error("saving message failed", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return message.DTOOf(saved), nil
}

// GetHistory returns the pair's messages oldest first and, as a side effect,
// marks everything addressed to the caller as read. Opening a conversation
// is what clears its unread badge.
func (uc *MessageUsecase) GetHistory(ctx context.Context, userID, counterpartID uuid.UUID) ([]*message.MessageDTO, error) {
	connected, err := uc.connections.Connected(ctx, userID, counterpartID)
	if err != nil {
		return nil, err
	}
	if !connected {
		return nil, errors.ErrNotConnected
	}

	msgs, err := uc.repo.ListBetween(ctx, userID, counterpartID)
	if err != nil {
		uc.logger.Error("loading conversation failed", "err", err)
		return nil, errors.Internal("internal server error")
	}

	if _, err := uc.repo.MarkConversationRead(ctx, userID, counterpartID); err != nil {
		uc.logger.Error("marking conversation read failed", "err", err)
		return nil, errors.Internal("internal server error")
	}

	dtos := make([]*message.MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		dto := message.DTOOf(m)
		if m.ReceiverID == userID {
			dto.IsRead = true
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (uc *MessageUsecase) ListConversations(ctx context.Context, userID uuid.UUID) (*message.ConversationListDTO, error) {
	// A connection alone does not create a conversation entry, but only
	// connected counterparts may appear at all.
	counterpartIDs, err := uc.connections.ConnectionIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := &message.ConversationListDTO{Conversations: []*message.ConversationSummaryDTO{}}
	if len(counterpartIDs) == 0 {
		return out, nil
	}

	latest, err := uc.repo.LatestPerCounterpart(ctx, userID, counterpartIDs)
	if err != nil {
		uc.logger.Error("aggregating conversations failed", "err", err)
		return nil, errors.Internal("internal server error")
	}

	unread, err := uc.repo.UnreadCounts(ctx, userID)
	if err != nil {
		uc.logger.Error("counting unread messages failed", "err", err)
		return nil, errors.Internal("internal server error")
	}

	for _, m := range latest {
		counterpart := m.Sender
		if m.SenderID == userID {
			counterpart = m.Receiver
		}
		summary := &message.ConversationSummaryDTO{
			Counterpart: user.SummaryOf(counterpart),
			LastMessage: message.DTOOf(m),
			UnreadCount: unread[counterpart.ID],
		}
		out.Conversations = append(out.Conversations, summary)
		out.TotalUnread += summary.UnreadCount
	}

	sort.SliceStable(out.Conversations, func(i, j int) bool {
		a, b := out.Conversations[i].LastMessage, out.Conversations[j].LastMessage
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return out, nil
}

func (uc *MessageUsecase) MarkRead(ctx context.Context, userID, counterpartID uuid.UUID) error {
	connected, err := uc.connections.Connected(ctx, userID, counterpartID)
	if err != nil {
		return err
	}
	if !connected {
		return errors.ErrNotConnected
	}

	if _, err := uc.repo.MarkConversationRead(ctx, userID, counterpartID); err != nil {
		uc.logger.Error("marking conversation read failed", "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}
