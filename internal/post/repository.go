package post

import (
	"context"

	"github.com/google/uuid"

	models "github.com/binay-tripathy/CareerTree/internal/post/model"
)

type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id uuid.UUID) (*models.Post, error)

	// ListFeed returns posts newest first with author, comments and likes
	// populated.
	ListFeed(ctx context.Context, limit int) ([]*models.Post, error)

	// AddLike reports false when the user had already liked the post.
	AddLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)
	RemoveLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)

	AddComment(ctx context.Context, comment *models.PostComment) (*models.PostComment, error)
}
