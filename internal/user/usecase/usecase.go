package usecase

import (
	"context"
	"regexp"
	"strings"
	"time"

	goerrors "errors"

	"github.com/google/uuid"

	"github.com/binay-tripathy/CareerTree/config"
	"github.com/binay-tripathy/CareerTree/internal/user"
	models "github.com/binay-tripathy/CareerTree/internal/user/model"
	"github.com/binay-tripathy/CareerTree/internal/user/repository"
	"github.com/binay-tripathy/CareerTree/pkg/errors"
	"github.com/binay-tripathy/CareerTree/pkg/logger"
	"github.com/binay-tripathy/CareerTree/pkg/utils"
)

type UserUsecase struct {
	repo   user.UserRepository
	logger logger.Logger
	config config.Config
}

func NewUserUsecase(repo user.UserRepository, logger logger.Logger, config config.Config) *UserUsecase {
	return &UserUsecase{repo: repo, logger: logger, config: config}
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.AuthResponse, error) {
	firstName := strings.TrimSpace(cmd.FirstName)
	lastName := strings.TrimSpace(cmd.LastName)
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	if firstName == "" || lastName == "" || email == "" || cmd.Password == "" {
		return nil, errors.ErrMissingFields
	}
	if !emailRegex.MatchString(email) {
		return nil, errors.ErrInvalidEmail
	}
	if len(cmd.Password) < 6 {
		return nil, errors.ErrPasswordTooShort
	}

	if exists, err := uc.repo.EmailExists(ctx, email); err != nil {
		uc.logger.Error("database error checking email", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrEmailTaken
	}

	hash, err := utils.HashPassword(cmd.Password)
	if err != nil {
		uc.logger.Error("hashing password failed", "err", err)
		return nil, errors.ErrRegistrationFailed(err)
	}

	u := &models.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hash,
	}
	if err := uc.repo.CreateUser(ctx, u); err != nil {
		// EmailExists raced with another registration; the unique index is
		// the tiebreaker.
		if goerrors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errors.ErrEmailTaken
		}
		uc.logger.Errorf("error while saving user in db: %v", err)
		return nil, errors.ErrRegistrationFailed(errors.Internal("database error"))
	}

	token, err := utils.GenerateJWTToken(u.ID, uc.config)
	if err != nil {
		uc.logger.Error("minting token failed", "err", err)
		return nil, errors.ErrRegistrationFailed(err)
	}

	return &user.AuthResponse{Token: token, User: user.SummaryOf(u)}, nil
}

func (uc *UserUsecase) Login(ctx context.Context, cmd user.LoginCommand) (*user.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.ErrMissingFields
	}

	u, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if goerrors.Is(err, repository.ErrUserNotFound) {
			// Same error as a bad password; don't leak which emails exist.
			return nil, errors.ErrInvalidCredentials
		}
		uc.logger.Error("database error fetching user", "err", err)
		return nil, errors.Internal("internal server error")
	}

	if !utils.ComparePassword(u.PasswordHash, cmd.Password) {
		return nil, errors.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWTToken(u.ID, uc.config)
	if err != nil {
		uc.logger.Error("minting token failed", "err", err)
		return nil, errors.ErrLoginFailed(err)
	}

	return &user.AuthResponse{Token: token, User: user.SummaryOf(u)}, nil
}

func (uc *UserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*user.ProfileDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if goerrors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("database error fetching user", "err", err)
		return nil, errors.Internal("internal server error")
	}

	skills, err := uc.repo.ListSkills(ctx, userID)
	if err != nil {
		uc.logger.Error("loading skills failed", "err", err)
		return nil, errors.Internal("internal server error")
	}
	experience, err := uc.repo.ListExperience(ctx, userID)
	if err != nil {
		uc.logger.Error("loading experience failed", "err", err)
		return nil, errors.Internal("internal server error")
	}
	education, err := uc.repo.ListEducation(ctx, userID)
	if err != nil {
		uc.logger.Error("loading education failed", "err", err)
		return nil, errors.Internal("internal server error")
	}

	return &user.ProfileDTO{
		UserSummaryDTO: *user.SummaryOf(u),
		Email:          u.Email,
		Location:       u.Location,
		About:          u.About,
		Skills:         skills,
		Experience:     experience,
		Education:      education,
		CreatedAt:      u.CreatedAt,
	}, nil
}

func (uc *UserUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, cmd user.UpdateProfileCommand) error {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if goerrors.Is(err, repository.ErrUserNotFound) {
			return errors.ErrUserNotFound
		}
		uc.logger.Error("database error fetching user", "err", err)
		return errors.Internal("internal server error")
	}

	if cmd.Headline != nil {
		u.Headline = strings.TrimSpace(*cmd.Headline)
	}
	if cmd.Location != nil {
		u.Location = strings.TrimSpace(*cmd.Location)
	}
	if cmd.About != nil {
		u.About = strings.TrimSpace(*cmd.About)
	}
	if cmd.ProfilePicture != nil {
		u.ProfilePicture = *cmd.ProfilePicture
	}
	u.UpdatedAt = time.Now()

	if err := uc.repo.UpdateProfile(ctx, u); err != nil {
		uc.logger.Errorf("error while updating profile in db: %v", err)
		return errors.Internal("error while updating profile in db")
	}

	if cmd.Skills != nil {
		skills := make([]models.Skill, 0, len(*cmd.Skills))
		for _, name := range *cmd.Skills {
			if name = strings.TrimSpace(name); name != "" {
				skills = append(skills, models.Skill{Name: name})
			}
		}
		if err := uc.repo.ReplaceSkills(ctx, userID, skills); err != nil {
			uc.logger.Error("replacing skills failed", "err", err)
			return errors.Internal("internal server error")
		}
	}

	if cmd.Experience != nil {
		entries := make([]models.Experience, 0, len(*cmd.Experience))
		for _, e := range *cmd.Experience {
			if strings.TrimSpace(e.Title) == "" || strings.TrimSpace(e.Company) == "" {
				return errors.InvalidArg("experience entries need a title and company")
			}
			entries = append(entries, models.Experience{
				Title:       strings.TrimSpace(e.Title),
				Company:     strings.TrimSpace(e.Company),
				Location:    strings.TrimSpace(e.Location),
				StartDate:   e.StartDate,
				EndDate:     e.EndDate,
				Description: strings.TrimSpace(e.Description),
			})
		}
		if err := uc.repo.ReplaceExperience(ctx, userID, entries); err != nil {
			uc.logger.Error("replacing experience failed", "err", err)
			return errors.Internal("internal server error")
		}
	}

	if cmd.Education != nil {
		entries := make([]models.Education, 0, len(*cmd.Education))
		for _, e := range *cmd.Education {
			if strings.TrimSpace(e.School) == "" {
				return errors.InvalidArg("education entries need a school")
			}
			entries = append(entries, models.Education{
				School:       strings.TrimSpace(e.School),
				Degree:       strings.TrimSpace(e.Degree),
				FieldOfStudy: strings.TrimSpace(e.FieldOfStudy),
				StartDate:    e.StartDate,
				EndDate:      e.EndDate,
			})
		}
		if err := uc.repo.ReplaceEducation(ctx, userID, entries); err != nil {
			uc.logger.Error("replacing education failed", "err", err)
			return errors.Internal("internal server error")
		}
	}

	return nil
}

func (uc *UserUsecase) SearchUsers(ctx context.Context, query string, limit int) ([]*user.UserSummaryDTO, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*user.UserSummaryDTO{}, nil
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	users, err := uc.repo.SearchUsers(ctx, query, limit)
	if err != nil {
		uc.logger.Error("searching users failed", "err", err)
		return nil, errors.Internal("internal server error")
	}

	out := make([]*user.UserSummaryDTO, 0, len(users))
	for _, u := range users {
		out = append(out, user.SummaryOf(u))
	}
	return out, nil
}
