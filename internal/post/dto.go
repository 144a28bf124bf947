package post

import (
	"time"

	"github.com/google/uuid"

	models "github.com/binay-tripathy/CareerTree/internal/post/model"
	"github.com/binay-tripathy/CareerTree/internal/user"
)

type CreatePostCommand struct {
	Content string `json:"content"`
	Image   string `json:"image"`
}

type CommentDTO struct {
	ID        int64                `json:"id"`
	User      *user.UserSummaryDTO `json:"user"`
	Content   string               `json:"content"`
	CreatedAt time.Time            `json:"createdAt"`
}

type PostDTO struct {
	ID        uuid.UUID            `json:"id"`
	Author    *user.UserSummaryDTO `json:"author"`
	Content   string               `json:"content"`
	Image     string               `json:"image,omitempty"`
	LikeCount int                  `json:"likeCount"`
	LikedByMe bool                 `json:"likedByMe"`
	Comments  []*CommentDTO        `json:"comments"`
	CreatedAt time.Time            `json:"createdAt"`
}

func DTOOf(p *models.Post, viewerID uuid.UUID) *PostDTO {
	dto := &PostDTO{
		ID:        p.ID,
		Author:    user.SummaryOf(p.Author),
		Content:   p.Content,
		Image:     p.Image,
		LikeCount: len(p.Likes),
		Comments:  make([]*CommentDTO, 0, len(p.Comments)),
		CreatedAt: p.CreatedAt,
	}
	for _, l := range p.Likes {
		if l.UserID == viewerID {
			dto.LikedByMe = true
			break
		}
	}
	for _, c := range p.Comments {
		dto.Comments = append(dto.Comments, &CommentDTO{
			ID:        c.ID,
			User:      user.SummaryOf(c.User),
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return dto
}
