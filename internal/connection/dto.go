package connection

import (
	"time"

	"github.com/binay-tripathy/CareerTree/internal/user"
)

type PendingRequestDTO struct {
	User   *user.UserSummaryDTO `json:"user"`
	SentAt time.Time            `json:"sentAt"`
}

type OverviewDTO struct {
	Connections      []*user.UserSummaryDTO `json:"connections"`
	SentRequests     []*PendingRequestDTO   `json:"sentRequests"`
	ReceivedRequests []*PendingRequestDTO   `json:"receivedRequests"`
}
