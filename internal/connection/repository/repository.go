package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/binay-tripathy/CareerTree/internal/connection/model"
	userModels "github.com/binay-tripathy/CareerTree/internal/user/model"
	"github.com/binay-tripathy/CareerTree/pkg/logger"
)

var (
	ErrRequestNotFound = errors.New("connection request not found")
	ErrRequestExists   = errors.New("connection request already exists")
	ErrPairConnected   = errors.New("pair already connected")
)

type ConnectionRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewConnectionRepository(db *bun.DB, logger logger.Logger) *ConnectionRepository {
	return &ConnectionRepository{
		db:     db,
		logger: &logger,
	}
}

// lockPair serializes graph writes for one user pair by locking both user
// rows in normalized order inside the caller's transaction. The directed
// unique index alone cannot stop two opposite-direction inserts under READ
// COMMITTED, where neither transaction sees the other's uncommitted row.
func lockPair(ctx context.Context, tx bun.Tx, a, b uuid.UUID) error {
	lo, hi := models.OrderPair(a, b)
	var ids []uuid.UUID
	err := tx.NewSelect().
		Model((*userModels.User)(nil)).
		Column("id").
		Where("id IN (?)", bun.In([]uuid.UUID{lo, hi})).
		Order("id ASC").
		For("UPDATE").
		Scan(ctx, &ids)
	if err != nil {
		return errors.Wrap(err, "connRepo.lockPair.Scan")
	}
	return nil
}

// CreateRequest re-checks every precondition inside the transaction, after
// taking the pair lock, so two racing calls (e.g. both directions at once)
// serialize and the loser sees the winner's row. The unique pair index
// backstops the same-direction duplicate case.
func (r *ConnectionRepository) CreateRequest(ctx context.Context, req *models.ConnectionRequest) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockPair(ctx, tx, req.RequesterID, req.RecipientID); err != nil {
			return err
		}

		lo, hi := models.OrderPair(req.RequesterID, req.RecipientID)
		connected, err := tx.NewSelect().
			Model((*models.Connection)(nil)).
			Where("user_lo_id = ? AND user_hi_id = ?", lo, hi).
			Exists(ctx)
		if err != nil {
			return errors.Wrap(err, "connRepo.CreateRequest.CheckConnection")
		}
		if connected {
			return ErrPairConnected
		}

		pending, err := tx.NewSelect().
			Model((*models.ConnectionRequest)(nil)).
			Where("(requester_id = ? AND recipient_id = ?) OR (requester_id = ? AND recipient_id = ?)",
				req.RequesterID, req.RecipientID, req.RecipientID, req.RequesterID).
			Exists(ctx)
		if err != nil {
			return errors.Wrap(err, "connRepo.CreateRequest.CheckPending")
		}
		if pending {
			return ErrRequestExists
		}

		if _, err := tx.NewInsert().Model(req).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "connRepo.CreateRequest.Insert")
		}
		return nil
	})
}

func (r *ConnectionRepository) GetRequest(ctx context.Context, requesterID, recipientID uuid.UUID) (*models.ConnectionRequest, error) {
	req := new(models.ConnectionRequest)
	err := r.db.NewSelect().
		Model(req).
		Where("requester_id = ? AND recipient_id = ?", requesterID, recipientID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "connRepo.GetRequest.Scan")
	}
	return req, nil
}

func (r *ConnectionRepository) DeleteRequest(ctx context.Context, requesterID, recipientID uuid.UUID) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*models.ConnectionRequest)(nil)).
		Where("requester_id = ? AND recipient_id = ?", requesterID, recipientID).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "connRepo.DeleteRequest.Exec")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "connRepo.DeleteRequest.RowsAffected")
	}
	return affected > 0, nil
}

// AcceptRequest removes the pending edge and inserts the connection edge in
// one transaction; either both records change or neither does. It takes the
// same pair lock as CreateRequest, so a racing send against this pair waits
// and then sees the connection instead of inserting a pending edge next to it.
func (r *ConnectionRepository) AcceptRequest(ctx context.Context, requesterID, accepterID uuid.UUID) (*models.Connection, error) {
	lo, hi := models.OrderPair(requesterID, accepterID)
	conn := &models.Connection{UserLoID: lo, UserHiID: hi}

	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockPair(ctx, tx, requesterID, accepterID); err != nil {
			return err
		}

		res, err := tx.NewDelete().
			Model((*models.ConnectionRequest)(nil)).
			Where("requester_id = ? AND recipient_id = ?", requesterID, accepterID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "connRepo.AcceptRequest.DeleteRequest")
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return errors.Wrap(err, "connRepo.AcceptRequest.RowsAffected")
		}
		if affected == 0 {
			return ErrRequestNotFound
		}

		if _, err := tx.NewInsert().Model(conn).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "connRepo.AcceptRequest.InsertConnection")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return conn, nil
}

func (r *ConnectionRepository) GetConnection(ctx context.Context, a, b uuid.UUID) (*models.Connection, error) {
	lo, hi := models.OrderPair(a, b)
	conn := new(models.Connection)
	err := r.db.NewSelect().
		Model(conn).
		Where("user_lo_id = ? AND user_hi_id = ?", lo, hi).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "connRepo.GetConnection.Scan")
	}
	return conn, nil
}

func (r *ConnectionRepository) DeleteConnection(ctx context.Context, a, b uuid.UUID) (bool, error) {
	lo, hi := models.OrderPair(a, b)
	res, err := r.db.NewDelete().
		Model((*models.Connection)(nil)).
		Where("user_lo_id = ? AND user_hi_id = ?", lo, hi).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "connRepo.DeleteConnection.Exec")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "connRepo.DeleteConnection.RowsAffected")
	}
	return affected > 0, nil
}

func (r *ConnectionRepository) ListConnectionUserIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var conns []*models.Connection
	err := r.db.NewSelect().
		Model(&conns).
		Where("user_lo_id = ? OR user_hi_id = ?", userID, userID).
		Order("connected_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "connRepo.ListConnectionUserIDs.Scan")
	}

	ids := make([]uuid.UUID, 0, len(conns))
	for _, c := range conns {
		if c.UserLoID == userID {
			ids = append(ids, c.UserHiID)
		} else {
			ids = append(ids, c.UserLoID)
		}
	}
	return ids, nil
}

func (r *ConnectionRepository) ListSentRequests(ctx context.Context, requesterID uuid.UUID) ([]*models.ConnectionRequest, error) {
	var reqs []*models.ConnectionRequest
	err := r.db.NewSelect().
		Model(&reqs).
		Relation("Recipient").
		Where("requester_id = ?", requesterID).
		Order("sent_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "connRepo.ListSentRequests.Scan")
	}
	return reqs, nil
}

func (r *ConnectionRepository) ListReceivedRequests(ctx context.Context, recipientID uuid.UUID) ([]*models.ConnectionRequest, error) {
	var reqs []*models.ConnectionRequest
	err := r.db.NewSelect().
		Model(&reqs).
		Relation("Requester").
		Where("recipient_id = ?", recipientID).
		Order("sent_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "connRepo.ListReceivedRequests.Scan")
	}
	return reqs, nil
}
