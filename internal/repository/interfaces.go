package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/yogajourney/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user together with profile, journey and history
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ProfilesRepositoryI interface {
	// Inserts profile. Profiles are write-once, a second insert fails with ErrProfileLocked
	Create(ctx context.Context, profile *entity.Profile) error
	// Returns ErrProfileNotFound if user hasn't finished onboarding
	Get(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
}

type JourneysRepositoryI interface {
	// Returns ErrJourneyNotFound if user has never completed a day
	Get(ctx context.Context, uid uuid.UUID) (*entity.JourneyState, error)
	// Creates journey on first call, overwrites it afterwards
	Upsert(ctx context.Context, uid uuid.UUID, state *entity.JourneyState) error
}

type CompletionsRepositoryI interface {
	// Appends a completed day to user's practice history
	Create(ctx context.Context, completion *entity.DayCompletion) error
	// Lists user's practice history in the given date range, oldest first
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DayCompletion, error)
}

type ContentRepositoryI interface {
	// Returns poses of the day for the level ordered by pose name
	GetDayContent(ctx context.Context, day int, level entity.ExperienceLevel) ([]entity.Pose, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
