package user

import (
	"time"

	"github.com/google/uuid"

	models "github.com/binay-tripathy/CareerTree/internal/user/model"
)

// NOTE: commands travel from handler to usecase, DTOs travel back out.

type RegisterCommand struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileCommand carries only the fields the caller wants to change;
// nil means "leave as is". The section slices replace the stored set
// wholesale, so an empty non-nil slice clears a section.
type UpdateProfileCommand struct {
	Headline       *string `json:"headline"`
	Location       *string `json:"location"`
	About          *string `json:"about"`
	ProfilePicture *string `json:"profilePicture"`

	Skills     *[]string          `json:"skills"`
	Experience *[]ExperienceEntry `json:"experience"`
	Education  *[]EducationEntry  `json:"education"`
}

type ExperienceEntry struct {
	Title       string     `json:"title"`
	Company     string     `json:"company"`
	Location    string     `json:"location"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	Description string     `json:"description"`
}

type EducationEntry struct {
	School       string     `json:"school"`
	Degree       string     `json:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate"`
}

// UserSummaryDTO is the display data other modules embed when populating
// messages, requests and posts.
type UserSummaryDTO struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Headline       string    `json:"headline,omitempty"`
}

type ProfileDTO struct {
	UserSummaryDTO
	Email      string               `json:"email"`
	Location   string               `json:"location,omitempty"`
	About      string               `json:"about,omitempty"`
	Skills     []*models.Skill      `json:"skills"`
	Experience []*models.Experience `json:"experience"`
	Education  []*models.Education  `json:"education"`
	CreatedAt  time.Time            `json:"createdAt"`
}

type AuthResponse struct {
	Token string          `json:"token"`
	User  *UserSummaryDTO `json:"user"`
}

// SummaryOf projects a stored user onto its public display fields.
func SummaryOf(u *models.User) *UserSummaryDTO {
	if u == nil {
		return nil
	}
	return &UserSummaryDTO{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: u.ProfilePicture,
		Headline:       u.Headline,
	}
}
