package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/yogajourney/internal/journey"
	"github.com/limbo/yogajourney/internal/player"
	"github.com/limbo/yogajourney/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

type RegisterRequest struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=8,max=72"`
}

type SaveProfileRequest struct {
	ExperienceLevel string   `validate:"required,oneof=beginner intermediate advanced"`
	SessionDuration int      `validate:"required,min=1,max=120"`
	PracticeDays    []string `validate:"required,min=1,max=7,unique,dive,weekday"`
	ReminderTime    string   `validate:"required,hhmm"`
}

type CompleteDayRequest struct {
	Day     int     `validate:"min=1,max=30"`
	Poses   int     `validate:"min=0"`
	Minutes float64 `validate:"min=0"`
}

// Dashboard is everything the journey screen renders. Warning is set when
// the stored progress couldn't be loaded and defaults are shown instead.
type Dashboard struct {
	Profile           *entity.Profile     `json:"profile,omitempty"`
	Journey           entity.JourneyState `json:"journey"`
	Days              []journey.DayTile   `json:"days"`
	IsComplete        bool                `json:"is_complete"`
	HasCompletedToday bool                `json:"has_completed_today"`
	Warning           string              `json:"warning,omitempty"`
}

type SessionView struct {
	player.Snapshot
	Notice string `json:"notice,omitempty"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type ProfileServiceI interface {
	// Validates and stores onboarding answers. Fails with ErrProfileLocked if already saved
	SaveProfile(ctx context.Context, uid uuid.UUID, req *SaveProfileRequest) (*entity.Profile, error)
	GetProfile(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
}

type JourneyServiceI interface {
	// Returns stored journey or a fresh one. On load failure returns defaults and ErrJourneyNotLoaded
	LoadJourney(ctx context.Context, uid uuid.UUID) (entity.JourneyState, error)
	Dashboard(ctx context.Context, uid uuid.UUID) (*Dashboard, error)
	// Records a finished day. On save failure returns the new state and ErrJourneyNotPersisted
	CompleteDay(ctx context.Context, uid uuid.UUID, req *CompleteDayRequest) (entity.JourneyState, error)
	History(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DayCompletion, error)
	// Drops the session copy of user's journey, e.g. on logout
	Forget(uid uuid.UUID)
}

type ContentServiceI interface {
	// Returns poses of an unlocked day for user's experience level
	DayContent(ctx context.Context, uid uuid.UUID, day int) ([]entity.Pose, error)
}

type PracticeServiceI interface {
	// Opens a practice session for the day, closing any other session of the user
	Open(ctx context.Context, uid uuid.UUID, day int) (*SessionView, error)
	Current(uid uuid.UUID) (*SessionView, error)
	Play(uid uuid.UUID) (*SessionView, error)
	Pause(uid uuid.UUID) (*SessionView, error)
	Skip(uid uuid.UUID) (*SessionView, error)
	Close(uid uuid.UUID) error
}
