package post

import (
	"context"

	"github.com/google/uuid"
)

type PostUsecase interface {
	Create(ctx context.Context, authorID uuid.UUID, cmd CreatePostCommand) (*PostDTO, error)
	ListFeed(ctx context.Context, viewerID uuid.UUID, limit int) ([]*PostDTO, error)

	// ToggleLike likes the post, or unlikes it when the viewer had already
	// liked it. Returns the new liked state.
	ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error)

	AddComment(ctx context.Context, postID, userID uuid.UUID, content string) (*CommentDTO, error)
}
