package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	models "github.com/binay-tripathy/CareerTree/internal/user/model"
	"github.com/binay-tripathy/CareerTree/pkg/logger"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

const pgUniqueViolation = "23505"

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewUserRepository(db *bun.DB, logger logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: &logger,
	}
}

// CreateUser inserts the row; the unique email index is the authority on
// duplicates, so a racing registration surfaces as ErrDuplicateEmail rather
// than an opaque constraint error.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	_, err := r.db.NewInsert().Model(user).Returning("*").Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation {
			return ErrDuplicateEmail
		}
		return errors.Wrap(err, "userRepo.CreateUser.Insert")
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan")
	}
	return user, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("email = ?", email).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByEmail.Scan")
	}
	return user, nil
}

func (r *UserRepository) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []*models.User
	err := r.db.NewSelect().Model(&users).Where("id IN (?)", bun.In(ids)).Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.GetUsersByIDs.Scan")
	}

	// Preserve the caller's ordering; IN() returns rows in arbitrary order.
	byID := make(map[uuid.UUID]*models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	ordered := make([]*models.User, 0, len(users))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			ordered = append(ordered, u)
		}
	}
	return ordered, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	exists, err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Where("email = ?", email).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "userRepo.EmailExists.Exists")
	}
	return exists, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) error {
	_, err := r.db.NewUpdate().
		Model(user).
		Column("headline", "location", "about", "profile_picture", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateProfile.Update")
	}
	return nil
}

func (r *UserRepository) SearchUsers(ctx context.Context, query string, limit int) ([]*models.User, error) {
	var users []*models.User
	err := r.db.NewSelect().
		Model(&users).
		Where("first_name ILIKE ? OR last_name ILIKE ?", query+"%", query+"%").
		Order("first_name ASC", "last_name ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.SearchUsers.Scan")
	}
	return users, nil
}

func (r *UserRepository) ListSkills(ctx context.Context, userID uuid.UUID) ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.NewSelect().Model(&skills).Where("user_id = ?", userID).Order("id ASC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.ListSkills.Scan")
	}
	return skills, nil
}

func (r *UserRepository) ListExperience(ctx context.Context, userID uuid.UUID) ([]*models.Experience, error) {
	var exp []*models.Experience
	err := r.db.NewSelect().Model(&exp).Where("user_id = ?", userID).Order("start_date DESC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.ListExperience.Scan")
	}
	return exp, nil
}

func (r *UserRepository) ListEducation(ctx context.Context, userID uuid.UUID) ([]*models.Education, error) {
	var edu []*models.Education
	err := r.db.NewSelect().Model(&edu).Where("user_id = ?", userID).Order("start_date DESC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.ListEducation.Scan")
	}
	return edu, nil
}

func (r *UserRepository) ReplaceSkills(ctx context.Context, userID uuid.UUID, skills []models.Skill) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.Skill)(nil)).
			Where("user_id = ?", userID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "userRepo.ReplaceSkills.Delete")
		}
		if len(skills) == 0 {
			return nil
		}
		for i := range skills {
			skills[i].UserID = userID
		}
		if _, err := tx.NewInsert().Model(&skills).Exec(ctx); err != nil {
			return errors.Wrap(err, "userRepo.ReplaceSkills.Insert")
		}
		return nil
	})
}

func (r *UserRepository) ReplaceExperience(ctx context.Context, userID uuid.UUID, entries []models.Experience) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.Experience)(nil)).
			Where("user_id = ?", userID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "userRepo.ReplaceExperience.Delete")
		}
		if len(entries) == 0 {
			return nil
		}
		for i := range entries {
			entries[i].UserID = userID
		}
		if _, err := tx.NewInsert().Model(&entries).Exec(ctx); err != nil {
			return errors.Wrap(err, "userRepo.ReplaceExperience.Insert")
		}
		return nil
	})
}

func (r *UserRepository) ReplaceEducation(ctx context.Context, userID uuid.UUID, entries []models.Education) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*models.Education)(nil)).
			Where("user_id = ?", userID).
			Exec(ctx); err != nil {
			return errors.Wrap(err, "userRepo.ReplaceEducation.Delete")
		}
		if len(entries) == 0 {
			return nil
		}
		for i := range entries {
			entries[i].UserID = userID
		}
		if _, err := tx.NewInsert().Model(&entries).Exec(ctx); err != nil {
			return errors.Wrap(err, "userRepo.ReplaceEducation.Insert")
		}
		return nil
	})
}
