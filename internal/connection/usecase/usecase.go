package usecase

import (
	"context"

	goerrors "errors"

	"github.com/google/uuid"

	"github.com/binay-tripathy/CareerTree/internal/connection"
	models "github.com/binay-tripathy/CareerTree/internal/connection/model"
	"github.com/binay-tripathy/CareerTree/internal/connection/repository"
	"github.com/binay-tripathy/CareerTree/internal/user"
	userRepository "github.com/binay-tripathy/CareerTree/internal/user/repository"
	"github.com/binay-tripathy/CareerTree/pkg/errors"
	"github.com/binay-tripathy/CareerTree/pkg/logger"
)

type ConnectionUsecase struct {
	repo   connection.ConnectionRepository
	users  user.UserRepository
	logger logger.Logger
}

func NewConnectionUsecase(repo connection.ConnectionRepository, users user.UserRepository, logger logger.Logger) *ConnectionUsecase {
	return &ConnectionUsecase{repo: repo, users: users, logger: logger}
}

func (uc *ConnectionUsecase) SendRequest(ctx context.Context, fromID, toID uuid.UUID) error {
	if fromID == toID {
		return errors.ErrInvalidTarget
	}

	if _, err := uc.users.GetUserByID(ctx, toID); err != nil {
		if goerrors.Is(err, userRepository.ErrUserNotFound) {
			return errors.ErrUserNotFound
		}
		uc.logger.Error("fetching target user failed", "err", err)
		return errors.Internal("internal server error")
	}

	// Optimistic checks give the caller a precise error kind; the repository
	// re-validates inside its transaction for the racing case.
	conn, err := uc.repo.GetConnection(ctx, fromID, toID)
	if err != nil {
		uc.logger.Error("checking connection failed", "err", err)
		return errors.Internal("internal server error")
	}
	if conn != nil {
		return errors.ErrAlreadyConnected
	}

	sent, err := uc.repo.GetRequest(ctx, fromID, toID)
	if err != nil {
		uc.logger.Error("checking sent request failed", "err", err)
		return errors.Internal("internal server error")
	}
	if sent != nil {
		return errors.ErrDuplicateRequest
	}

	received, err := uc.repo.GetRequest(ctx, toID, fromID)
	if err != nil {
		uc.logger.Error("checking received request failed", "err", err)
		return errors.Internal("internal server error")
	}
	if received != nil {
		return errors.ErrReciprocalRequest
	}

	req := &models.ConnectionRequest{RequesterID: fromID, RecipientID: toID}
	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		switch {
		case goerrors.Is(err, repository.ErrPairConnected):
			return errors.ErrAlreadyConnected
		case goerrors.Is(err, repository.ErrRequestExists):
			return errors.ErrDuplicateRequest
		default:
			uc.logger.Error("creating connection request failed", "err", err)
			return errors.Internal("internal server error")
		}
	}
	return nil
}

func (uc *ConnectionUsecase) Accept(ctx context.Context, accepterID, requesterID uuid.UUID) error {
	_, err := uc.repo.AcceptRequest(ctx, requesterID, accepterID)
	if err != nil {
		if goerrors.Is(err, repository.ErrRequestNotFound) {
			return errors.ErrNoSuchRequest
		}
		uc.logger.Error("accepting connection request failed", "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *ConnectionUsecase) Reject(ctx context.Context, accepterID, requesterID uuid.UUID) error {
	return uc.deleteRequest(ctx, requesterID, accepterID)
}

func (uc *ConnectionUsecase) Cancel(ctx context.Context, requesterID, targetID uuid.UUID) error {
	return uc.deleteRequest(ctx, requesterID, targetID)
}

// deleteRequest handles reject and cancel; both tear down the same directed
// edge, they just differ in which side initiates. An already-absent edge is
// an error so misuse surfaces instead of passing silently.
func (uc *ConnectionUsecase) deleteRequest(ctx context.Context, requesterID, recipientID uuid.UUID) error {
	existed, err := uc.repo.DeleteRequest(ctx, requesterID, recipientID)
	if err != nil {
		uc.logger.Error("deleting connection request failed", "err", err)
		return errors.Internal("internal server error")
	}
	if !existed {
		return errors.ErrNoSuchRequest
	}
	return nil
}

func (uc *ConnectionUsecase) Remove(ctx context.Context, userID, otherID uuid.UUID) error {
	existed, err := uc.repo.DeleteConnection(ctx, userID, otherID)
	if err != nil {
		uc.logger.Error("removing connection failed", "err", err)
		return errors.Internal("internal server error")
	}
	if !existed {
		return errors.ErrNotConnected
	}
	return nil
}

func (uc *ConnectionUsecase) Status(ctx context.Context, userID, otherID uuid.UUID) (models.Status, error) {
	conn, err := uc.repo.GetConnection(ctx, userID, otherID)
	if err != nil {
		return models.StatusNone, errors.Internal("internal server error")
	}

	sent, err := uc.repo.GetRequest(ctx, userID, otherID)
	if err != nil {
		return models.StatusNone, errors.Internal("internal server error")
	}
	received, err := uc.repo.GetRequest(ctx, otherID, userID)
	if err != nil {
		return models.StatusNone, errors.Internal("internal server error")
	}

	if conn != nil {
		// A pending edge coexisting with a connection edge is unreachable
		// through the lifecycle operations. Connected wins for reporting,
		// but the violation must not pass unnoticed.
		if sent != nil || received != nil {
			uc.logger.Error("consistency violation: pending and connected edges coexist",
				"user", userID, "other", otherID)
		}
		return models.StatusConnected, nil
	}
	if sent != nil {
		return models.StatusSent, nil
	}
	if received != nil {
		return models.StatusReceived, nil
	}
	return models.StatusNone, nil
}

func (uc *ConnectionUsecase) Connected(ctx context.Context, a, b uuid.UUID) (bool, error) {
	conn, err := uc.repo.GetConnection(ctx, a, b)
	if err != nil {
		return false, errors.Internal("internal server error")
	}
	return conn != nil, nil
}

func (uc *ConnectionUsecase) ConnectionIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := uc.repo.ListConnectionUserIDs(ctx, userID)
	if err != nil {
		uc.logger.Error("listing connection ids failed", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return ids, nil
}

func (uc *ConnectionUsecase) Overview(ctx context.Context, userID uuid.UUID) (*connection.OverviewDTO, error) {
	ids, err := uc.repo.ListConnectionUserIDs(ctx, userID)
	if err != nil {
		uc.logger.Error("listing connections failed", "err", err)
		return nil, errors.Internal("internal server error")
	}

	connUsers, err := uc.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		uc.logger.Error("populating connections failed", "err", err)
		return nil, errors.Internal("internal server error")
	}

	sent, err := uc.repo.ListSentRequests(ctx, userID)
	if err != nil {
		uc.logger.Error("listing sent requests failed", "err", err)
		return nil, errors.Internal("internal server error")
	}
	received, err := uc.repo.ListReceivedRequests(ctx, userID)
	if err != nil {
		uc.logger.Error("listing received requests failed", "err", err)
		return nil, errors.Internal("internal server error")
	}

	dto := &connection.OverviewDTO{
		Connections:      make([]*user.UserSummaryDTO, 0, len(connUsers)),
		SentRequests:     make([]*connection.PendingRequestDTO, 0, len(sent)),
		ReceivedRequests: make([]*connection.PendingRequestDTO, 0, len(received)),
	}
	for _, u := range connUsers {
		dto.Connections = append(dto.Connections, user.SummaryOf(u))
	}
	for _, req := range sent {
		dto.SentRequests = append(dto.SentRequests, &connection.PendingRequestDTO{
			User:   user.SummaryOf(req.Recipient),
			SentAt: req.SentAt,
		})
	}
	for _, req := range received {
		dto.ReceivedRequests = append(dto.ReceivedRequests, &connection.PendingRequestDTO{
			User:   user.SummaryOf(req.Requester),
			SentAt: req.SentAt,
		})
	}
	return dto, nil
}
