package user

import (
	"context"

	"github.com/google/uuid"

	models "github.com/binay-tripathy/CareerTree/internal/user/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	UpdateProfile(ctx context.Context, user *models.User) error
	SearchUsers(ctx context.Context, query string, limit int) ([]*models.User, error)

	ListSkills(ctx context.Context, userID uuid.UUID) ([]*models.Skill, error)
	ListExperience(ctx context.Context, userID uuid.UUID) ([]*models.Experience, error)
	ListEducation(ctx context.Context, userID uuid.UUID) ([]*models.Education, error)

	// Replace* swap a profile section wholesale inside one transaction;
	// an empty slice clears the section.
	ReplaceSkills(ctx context.Context, userID uuid.UUID, skills []models.Skill) error
	ReplaceExperience(ctx context.Context, userID uuid.UUID, entries []models.Experience) error
	ReplaceEducation(ctx context.Context, userID uuid.UUID, entries []models.Education) error
}
