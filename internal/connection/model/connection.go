package models

import (
	"time"

	"github.com/google/uuid"

	user "github.com/binay-tripathy/CareerTree/internal/user/model"
)

// ConnectionRequest is the directed pending edge between two users.
// The (requester, recipient) pair carries a unique index so the same
// request can never be inserted twice.
type ConnectionRequest struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	RequesterID uuid.UUID  `bun:",notnull,type:uuid,unique:idx_request_pair"`
	Requester   *user.User `bun:"rel:belongs-to,join:requester_id=id"`

	RecipientID uuid.UUID  `bun:",notnull,type:uuid,unique:idx_request_pair"`
	Recipient   *user.User `bun:"rel:belongs-to,join:recipient_id=id"`

	SentAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// Connection is the symmetric edge, stored once per pair with the two IDs
// ordered (lo < hi) so a unique index on the pair holds regardless of which
// side initiated. Both sides' views are projections of this single record.
type Connection struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	UserLoID uuid.UUID  `bun:",notnull,type:uuid,unique:idx_connection_pair"`
	UserLo   *user.User `bun:"rel:belongs-to,join:user_lo_id=id"`

	UserHiID uuid.UUID  `bun:",notnull,type:uuid,unique:idx_connection_pair"`
	UserHi   *user.User `bun:"rel:belongs-to,join:user_hi_id=id"`

	ConnectedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// OrderPair normalizes two user IDs into (lo, hi) storage order.
func OrderPair(a, b uuid.UUID) (lo, hi uuid.UUID) {
	if a.String() < b.String() {
		return a, b
	}
	return b, a
}

// Status is the relationship between an ordered pair (viewer, other).
type Status string

const (
	StatusNone      Status = "none"
	StatusSent      Status = "sent"
	StatusReceived  Status = "received"
	StatusConnected Status = "connected"
)
