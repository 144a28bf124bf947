package connection

import (
	"context"

	"github.com/google/uuid"

	models "github.com/binay-tripathy/CareerTree/internal/connection/model"
)

// ConnectionUsecase owns the request lifecycle for the social graph.
// Valid transitions per ordered pair (A,B):
//
//	none --SendRequest(A,B)--> sent_by_A --Accept(B,A)--> connected
//	sent_by_A --Cancel(A,B) / Reject(B,A)--> none
//	connected --Remove--> none
//
// SendRequest is only valid from "none"; nothing skips a state.
type ConnectionUsecase interface {
	SendRequest(ctx context.Context, fromID, toID uuid.UUID) error
	Accept(ctx context.Context, accepterID, requesterID uuid.UUID) error
	Reject(ctx context.Context, accepterID, requesterID uuid.UUID) error
	Cancel(ctx context.Context, requesterID, targetID uuid.UUID) error
	Remove(ctx context.Context, userID, otherID uuid.UUID) error

	// Status reports the relationship from userID's point of view.
	Status(ctx context.Context, userID, otherID uuid.UUID) (models.Status, error)

	// Connected is the gate other modules (messaging) use.
	Connected(ctx context.Context, a, b uuid.UUID) (bool, error)

	// ConnectionIDs scopes conversation aggregation to legitimate
	// counterparts.
	ConnectionIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)

	// Overview backs GET /connections/my-connections: the caller's
	// connections plus pending requests in both directions, populated with
	// display data.
	Overview(ctx context.Context, userID uuid.UUID) (*OverviewDTO, error)
}
