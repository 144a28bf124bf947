package models

import (
	"time"

	"github.com/google/uuid"

	user "github.com/binay-tripathy/CareerTree/internal/user/model"
)

type Post struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	AuthorID uuid.UUID  `bun:",notnull,type:uuid"`
	Author   *user.User `bun:"rel:belongs-to,join:author_id=id"`

	Content string `bun:",notnull"`
	Image   string `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	Comments []*PostComment `bun:"rel:has-many,join:id=post_id"`
	Likes    []*PostLike    `bun:"rel:has-many,join:id=post_id"`
}

// PostLike keys on (post, user) so a user can like a post at most once.
type PostLike struct {
	PostID uuid.UUID `bun:",pk,type:uuid"`
	Post   *Post     `bun:"rel:belongs-to,join:post_id=id"`

	UserID uuid.UUID  `bun:",pk,type:uuid"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	LikedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

type PostComment struct {
	ID int64 `bun:",pk,autoincrement"`

	PostID uuid.UUID `bun:",notnull,type:uuid"`
	Post   *Post     `bun:"rel:belongs-to,join:post_id=id"`

	UserID uuid.UUID  `bun:",notnull,type:uuid"`
	User   *user.User `bun:"rel:belongs-to,join:user_id=id"`

	Content   string    `bun:",notnull"`
	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
