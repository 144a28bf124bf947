package connection

import (
	"context"

	"github.com/google/uuid"

	models "github.com/binay-tripathy/CareerTree/internal/connection/model"
)

// Repository errors surface as sentinel values so the usecase can map them
// onto the domain taxonomy without string matching.
type ConnectionRepository interface {
	// CreateRequest inserts the pending edge. The whole precondition check
	// (no existing connection, no request in either direction) re-runs
	// inside one transaction so racing calls cannot slip past the usecase's
	// optimistic validation.
	CreateRequest(ctx context.Context, req *models.ConnectionRequest) error

	GetRequest(ctx context.Context, requesterID, recipientID uuid.UUID) (*models.ConnectionRequest, error)

	// DeleteRequest removes the pending edge; reports whether it existed.
	DeleteRequest(ctx context.Context, requesterID, recipientID uuid.UUID) (bool, error)

	// AcceptRequest atomically deletes the pending edge and inserts the
	// connection edge. Fails with ErrRequestNotFound when no pending edge
	// exists, leaving the graph untouched.
	AcceptRequest(ctx context.Context, requesterID, accepterID uuid.UUID) (*models.Connection, error)

	GetConnection(ctx context.Context, a, b uuid.UUID) (*models.Connection, error)

	// DeleteConnection removes the symmetric edge; reports whether it existed.
	DeleteConnection(ctx context.Context, a, b uuid.UUID) (bool, error)

	ListConnectionUserIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListSentRequests(ctx context.Context, requesterID uuid.UUID) ([]*models.ConnectionRequest, error)
	ListReceivedRequests(ctx context.Context, recipientID uuid.UUID) ([]*models.ConnectionRequest, error)
}
