package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/binay-tripathy/CareerTree/internal/message/model"
	"github.com/binay-tripathy/CareerTree/pkg/logger"
)

type MessageRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewMessageRepository(db *bun.DB, logger logger.Logger) *MessageRepository {
	return &MessageRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *MessageRepository) CreateMessage(ctx context.Context, msg *models.Message) (*models.Message, error) {
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(msg).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "msgRepo.CreateMessage.Insert")
		}
		if len(msg.Attachments) > 0 {
			for _, a := range msg.Attachments {
				a.MessageID = msg.ID
			}
			if _, err := tx.NewInsert().Model(&msg.Attachments).Returning("*").Exec(ctx); err != nil {
				return errors.Wrap(err, "msgRepo.CreateMessage.InsertAttachments")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reload with sender/receiver display data for the response payload.
	loaded := new(models.Message)
	err = r.db.NewSelect().
		Model(loaded).
		Relation("Sender").
		Relation("Receiver").
		Relation("Attachments").
		Where("m.id = ?", msg.ID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "msgRepo.CreateMessage.Reload")
	}
	return loaded, nil
}

func (r *MessageRepository) ListBetween(ctx context.Context, a, b uuid.UUID) ([]*models.Message, error) {
	var msgs []*models.Message
	err := r.db.NewSelect().
		Model(&msgs).
		Relation("Sender").
		Relation("Receiver").
		Relation("Attachments").
		Where("(m.sender_id = ? AND m.receiver_id = ?) OR (m.sender_id = ? AND m.receiver_id = ?)",
			a, b, b, a).
		Order("m.created_at ASC", "m.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "msgRepo.ListBetween.Scan")
	}
	return msgs, nil
}

// MarkConversationRead is a single atomic update; is_read only moves
// false -> true, so repeat calls match zero rows.
func (r *MessageRepository) MarkConversationRead(ctx context.Context, readerID, counterpartID uuid.UUID) (int64, error) {
	res, err := r.db.NewUpdate().
		Model((*models.Message)(nil)).
		Set("is_read = TRUE").
		Where("sender_id = ? AND receiver_id = ? AND is_read = FALSE", counterpartID, readerID).
		Exec(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "msgRepo.MarkConversationRead.Exec")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "msgRepo.MarkConversationRead.RowsAffected")
	}
	return affected, nil
}

// LatestPerCounterpart picks the newest message per conversation with
// DISTINCT ON, then reloads those rows with display data. Ties on
// created_at fall back to the append-order id.
func (r *MessageRepository) LatestPerCounterpart(ctx context.Context, userID uuid.UUID, counterpartIDs []uuid.UUID) ([]*models.Message, error) {
	if len(counterpartIDs) == 0 {
		return nil, nil
	}

	var latestIDs []int64
	err := r.db.NewRaw(`
		SELECT DISTINCT ON (counterpart) id FROM (
			SELECT id, created_at,
			       CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS counterpart
			FROM messages
			WHERE (sender_id = ? AND receiver_id IN (?))
			   OR (receiver_id = ? AND sender_id IN (?))
		) m
		ORDER BY counterpart, created_at DESC, id DESC`,
		userID, userID, bun.In(counterpartIDs), userID, bun.In(counterpartIDs),
	).Scan(ctx, &latestIDs)
	if err != nil {
		return nil, errors.Wrap(err, "msgRepo.LatestPerCounterpart.SelectIDs")
	}
	if len(latestIDs) == 0 {
		return nil, nil
	}

	var msgs []*models.Message
	err = r.db.NewSelect().
		Model(&msgs).
		Relation("Sender").
		Relation("Receiver").
		Relation("Attachments").
		Where("m.id IN (?)", bun.In(latestIDs)).
		Order("m.created_at DESC", "m.id DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "msgRepo.LatestPerCounterpart.Load")
	}
	return msgs, nil
}

func (r *MessageRepository) UnreadCounts(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]int, error) {
	var rows []struct {
		SenderID uuid.UUID `bun:"sender_id"`
		Count    int       `bun:"count"`
	}
	err := r.db.NewSelect().
		Model((*models.Message)(nil)).
		ColumnExpr("sender_id, count(*) AS count").
		Where("receiver_id = ? AND is_read = FALSE", userID).
		GroupExpr("sender_id").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "msgRepo.UnreadCounts.Scan")
	}

	counts := make(map[uuid.UUID]int, len(rows))
	for _, row := range rows {
		counts[row.SenderID] = row.Count
	}
	return counts, nil
}
