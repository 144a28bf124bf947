package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/binay-tripathy/CareerTree/internal/post/model"
	"github.com/binay-tripathy/CareerTree/pkg/logger"
)

var ErrPostNotFound = errors.New("post not found")

type PostRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewPostRepository(db *bun.DB, logger logger.Logger) *PostRepository {
	return &PostRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *PostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	_, err := r.db.NewInsert().Model(post).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "postRepo.CreatePost.Insert")
	}
	return nil
}

func (r *PostRepository) GetPostByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	post := new(models.Post)
	err := r.db.NewSelect().
		Model(post).
		Relation("Author").
		Where("post.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, errors.Wrap(err, "postRepo.GetPostByID.Scan")
	}
	return post, nil
}

func (r *PostRepository) ListFeed(ctx context.Context, limit int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.NewSelect().
		Model(&posts).
		Relation("Author").
		Relation("Likes").
		Relation("Comments", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("created_at ASC")
		}).
		Relation("Comments.User").
		Order("post.created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "postRepo.ListFeed.Scan")
	}
	return posts, nil
}

// AddLike relies on the (post_id, user_id) primary key: a second like from
// the same user is a conflict, reported as already-liked rather than an error.
func (r *PostRepository) AddLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	like := &models.PostLike{PostID: postID, UserID: userID}
	res, err := r.db.NewInsert().
		Model(like).
		On("CONFLICT (post_id, user_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "postRepo.AddLike.Insert")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "postRepo.AddLike.RowsAffected")
	}
	return affected > 0, nil
}

func (r *PostRepository) RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*models.PostLike)(nil)).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "postRepo.RemoveLike.Exec")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "postRepo.RemoveLike.RowsAffected")
	}
	return affected > 0, nil
}

func (r *PostRepository) AddComment(ctx context.Context, comment *models.PostComment) (*models.PostComment, error) {
	_, err := r.db.NewInsert().Model(comment).Returning("*").Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "postRepo.AddComment.Insert")
	}

	loaded := new(models.PostComment)
	err = r.db.NewSelect().
		Model(loaded).
		Relation("User").
		Where("post_comment.id = ?", comment.ID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "postRepo.AddComment.Reload")
	}
	return loaded, nil
}
