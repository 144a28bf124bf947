package usecase

import (
	"context"
	"strings"

	goerrors "errors"

	"github.com/google/uuid"

	"github.com/binay-tripathy/CareerTree/internal/post"
	models "github.com/binay-tripathy/CareerTree/internal/post/model"
	"github.com/binay-tripathy/CareerTree/internal/post/repository"
	"github.com/binay-tripathy/CareerTree/internal/user"
	"github.com/binay-tripathy/CareerTree/pkg/errors"
	"github.com/binay-tripathy/CareerTree/pkg/logger"
)

const defaultFeedLimit = 50

type PostUsecase struct {
	repo   post.PostRepository
	users  user.UserRepository
	logger logger.Logger
}

func NewPostUsecase(repo post.PostRepository, users user.UserRepository, logger logger.Logger) *PostUsecase {
	return &PostUsecase{repo: repo, users: users, logger: logger}
}

func (uc *PostUsecase) Create(ctx context.Context, authorID uuid.UUID, cmd post.CreatePostCommand) (*post.PostDTO, error) {
	content := strings.TrimSpace(cmd.Content)
	if content == "" {
		return nil, errors.ErrEmptyPost
	}

	p := &models.Post{
		AuthorID: authorID,
		Content:  content,
		Image:    cmd.Image,
	}
	if err := uc.repo.CreatePost(ctx, p); err != nil {
		uc.logger.Error("saving post failed", "err", err)
		return nil, errors.Internal("internal server error")
	}

	author, err := uc.users.GetUserByID(ctx, authorID)
	if err != nil {
		uc.logger.Error("populating post author failed", "err", err)
		return nil, errors.Internal("internal server error")
	}
	p.Author = author

	return post.DTOOf(p, authorID), nil
}

func (uc *PostUsecase) ListFeed(ctx context.Context, viewerID uuid.UUID, limit int) ([]*post.PostDTO, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultFeedLimit
	}

	posts, err := uc.repo.ListFeed(ctx, limit)
	if err != nil {
		uc.logger.Error("loading feed failed", "err", err)
		return nil, errors.Internal("internal server error")
	}

	out := make([]*post.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, post.DTOOf(p, viewerID))
	}
	return out, nil
}

func (uc *PostUsecase) ToggleLike(ctx context.Context, postID, userID uuid.UUID) (bool, error) {
	if _, err := uc.repo.GetPostByID(ctx, postID); err != nil {
		if goerrors.Is(err, repository.ErrPostNotFound) {
			return false, errors.ErrPostNotFound
		}
		uc.logger.Error("fetching post failed", "err", err)
		return false, errors.Internal("internal server error")
	}

	added, err := uc.repo.AddLike(ctx, postID, userID)
	if err != nil {
		uc.logger.Error("liking post failed", "err", err)
		return false, errors.Internal("internal server error")
	}
	if added {
		return true, nil
	}

	// Already liked: toggle off.
	if _, err := uc.repo.RemoveLike(ctx, postID, userID); err != nil {
		uc.logger.Error("unliking post failed", "err", err)
		return false, errors.Internal("internal server error")
	}
	return false, nil
}

func (uc *PostUsecase) AddComment(ctx context.Context, postID, userID uuid.UUID, content string) (*post.CommentDTO, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.InvalidArg("comment content is required")
	}

	if _, err := uc.repo.GetPostByID(ctx, postID); err != nil {
		if goerrors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.ErrPostNotFound
		}
		uc.logger.Error("fetching post failed", "err", err)
		return nil, errors.Internal("internal server error")
	}

	comment := &models.PostComment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	saved, err := uc.repo.AddComment(ctx, comment)
	if err != nil {
		uc.logger.Error("saving comment failed", "err", err)
		return nil, errors.Internal("internal server error")
	}

	return &post.CommentDTO{
		ID:        saved.ID,
		User:      user.SummaryOf(saved.User),
		Content:   saved.Content,
		CreatedAt: saved.CreatedAt,
	}, nil
}
