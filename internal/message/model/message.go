package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	user "github.com/binay-tripathy/CareerTree/internal/user/model"
)

// Message is an append-only log entry. Immutable after insert except for
// IsRead, which only ever flips false -> true. The bigserial ID doubles as
// the tie-break when two messages share a created_at timestamp.
type Message struct {
	bun.BaseModel `bun:"table:messages,alias:m"`

	ID int64 `bun:",pk,autoincrement"`

	SenderID uuid.UUID  `bun:",notnull,type:uuid"`
	Sender   *user.User `bun:"rel:belongs-to,join:sender_id=id"`

	ReceiverID uuid.UUID  `bun:",notnull,type:uuid"`
	Receiver   *user.User `bun:"rel:belongs-to,join:receiver_id=id"`

	Content string `bun:",nullzero"`
	IsRead  bool   `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	Attachments []*Attachment `bun:"rel:has-many,join:id=message_id"`
}

const (
	AttachmentKindImage    = "image"
	AttachmentKindVideo    = "video"
	AttachmentKindDocument = "document"
)

type Attachment struct {
	ID        int64 `bun:",pk,autoincrement"`
	MessageID int64 `bun:",notnull"`

	URL              string `bun:",notnull"`
	Kind             string `bun:",notnull,default:'image'"` // image, video, document
	Format           string `bun:",nullzero"`
	ByteSize         int64  `bun:",nullzero"`
	OriginalFilename string `bun:",nullzero"`
	StorageID        string `bun:",nullzero"`
}
