package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/yogajourney/internal/error_values"
	"github.com/limbo/yogajourney/pkg/entity"
)

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepo(cfg DBConfig) *ProfilesRepository {
	return &ProfilesRepository{
		conn: NewPool(cfg),
	}
}

func NewProfilesRepoWithConn(conn PgConnection) *ProfilesRepository {
	mustPing(conn, "profilesRepo")
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) Create(ctx context.Context, profile *entity.Profile) error {
	_, err := pr.conn.Exec(ctx, `INSERT INTO user_profiles (user_id, experience_level, session_duration, practice_days, reminder_time) VALUES ($1, $2, $3, $4, $5);`,
		profile.UserID,
		string(profile.ExperienceLevel),
		profile.SessionDuration,
		profile.PracticeDays,
		profile.ReminderTime,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrProfileLocked
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("creating profile db error: " + err.Error())
	}
	return nil
}

func (pr *ProfilesRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	profile := entity.Profile{UserID: uid}
	var level string
	row := pr.conn.QueryRow(ctx, `SELECT experience_level, session_duration, practice_days, reminder_time, created_at FROM user_profiles WHERE user_id = $1;`, uid)
	if err := row.Scan(&level, &profile.SessionDuration, &profile.PracticeDays, &profile.ReminderTime, &profile.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting profile error: " + err.Error())
	}
	profile.ExperienceLevel = entity.ExperienceLevel(level)
	return &profile, nil
}
