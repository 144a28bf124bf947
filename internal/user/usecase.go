package user

import (
	"context"

	"github.com/google/uuid"
)

type UserUsecase interface {
	// Register a new account; returns the created user plus a signed access token
	Register(ctx context.Context, cmd RegisterCommand) (*AuthResponse, error)

	// Login with email + password; unknown email and wrong password are
	// indistinguishable to the caller
	Login(ctx context.Context, cmd LoginCommand) (*AuthResponse, error)

	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileDTO, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, cmd UpdateProfileCommand) error

	// Search users by name prefix (for adding connections)
	SearchUsers(ctx context.Context, query string, limit int) ([]*UserSummaryDTO, error)
}
