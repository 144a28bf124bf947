package message

import (
	"time"

	"github.com/google/uuid"

	models "github.com/binay-tripathy/CareerTree/internal/message/model"
	"github.com/binay-tripathy/CareerTree/internal/user"
)

type AttachmentUpload struct {
	URL              string `json:"url"`
	Kind             string `json:"kind"`
	Format           string `json:"format"`
	ByteSize         int64  `json:"byteSize"`
	OriginalFilename string `json:"originalFilename"`
	StorageID        string `json:"storageId"`
}

type SendCommand struct {
	ReceiverID  uuid.UUID          `json:"receiverId"`
	Content     string             `json:"content"`
	Attachments []AttachmentUpload `json:"attachments"`
}

type AttachmentDTO struct {
	URL              string `json:"url"`
	Kind             string `json:"kind"`
	Format           string `json:"format,omitempty"`
	ByteSize         int64  `json:"byteSize,omitempty"`
	OriginalFilename string `json:"originalFilename,omitempty"`
	StorageID        string `json:"storageId,omitempty"`
}

type MessageDTO struct {
	ID          int64                `json:"id"`
	Sender      *user.UserSummaryDTO `json:"sender"`
	Receiver    *user.UserSummaryDTO `json:"receiver"`
	Content     string               `json:"content"`
	Attachments []AttachmentDTO      `json:"attachments"`
	IsRead      bool                 `json:"isRead"`
	CreatedAt   time.Time            `json:"createdAt"`
}

// ConversationSummaryDTO is derived per request, never persisted.
type ConversationSummaryDTO struct {
	Counterpart *user.UserSummaryDTO `json:"participant"`
	LastMessage *MessageDTO          `json:"lastMessage"`
	UnreadCount int                  `json:"unreadCount"`
}

type ConversationListDTO struct {
	Conversations []*ConversationSummaryDTO `json:"conversations"`
	TotalUnread   int                       `json:"totalUnread"`
}

// DTOOf maps a loaded message row onto its wire shape.
func DTOOf(m *models.Message) *MessageDTO {
	if m == nil {
		return nil
	}
	dto := &MessageDTO{
		ID:          m.ID,
		Sender:      user.SummaryOf(m.Sender),
		Receiver:    user.SummaryOf(m.Receiver),
		Content:     m.Content,
		Attachments: make([]AttachmentDTO, 0, len(m.Attachments)),
		IsRead:      m.IsRead,
		CreatedAt:   m.CreatedAt,
	}
	for _, a := range m.Attachments {
		dto.Attachments = append(dto.Attachments, AttachmentDTO{
			URL:              a.URL,
			Kind:             a.Kind,
			Format:           a.Format,
			ByteSize:         a.ByteSize,
			OriginalFilename: a.OriginalFilename,
			StorageID:        a.StorageID,
		})
	}
	return dto
}
