package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	FirstName string `bun:",notnull"`
	LastName  string `bun:",notnull"`

	// Email = unique login identity, stored lowercased
	Email        string `bun:",unique,notnull"`
	PasswordHash string `bun:",notnull"`

	ProfilePicture string `bun:",nullzero"`
	Headline       string `bun:",nullzero"`
	Location       string `bun:",nullzero"`
	About          string `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

type Skill struct {
	ID     int64     `bun:",pk,autoincrement"`
	UserID uuid.UUID `bun:",notnull,type:uuid"`
	User   *User     `bun:"rel:belongs-to,join:user_id=id"`

	Name         string `bun:",notnull"`
	Endorsements int    `bun:",default:0"`
}

type Experience struct {
	ID     int64     `bun:",pk,autoincrement"`
	UserID uuid.UUID `bun:",notnull,type:uuid"`
	User   *User     `bun:"rel:belongs-to,join:user_id=id"`

	Title       string     `bun:",notnull"`
	Company     string     `bun:",notnull"`
	Location    string     `bun:",nullzero"`
	StartDate   time.Time  `bun:",nullzero"`
	EndDate     *time.Time `bun:",nullzero"` // nil = current position
	Description string     `bun:",nullzero"`
}

type Education struct {
	ID     int64     `bun:",pk,autoincrement"`
	UserID uuid.UUID `bun:",notnull,type:uuid"`
	User   *User     `bun:"rel:belongs-to,join:user_id=id"`

	School       string     `bun:",notnull"`
	Degree       string     `bun:",nullzero"`
	FieldOfStudy string     `bun:",nullzero"`
	StartDate    time.Time  `bun:",nullzero"`
	EndDate      *time.Time `bun:",nullzero"`
}
