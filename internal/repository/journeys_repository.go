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

type JourneysRepository struct {
	conn PgConnection
}

func NewJourneysRepo(cfg DBConfig) *JourneysRepository {
	return &JourneysRepository{
		conn: NewPool(cfg),
	}
}

func NewJourneysRepoWithConn(conn PgConnection) *JourneysRepository {
	mustPing(conn, "journeysRepo")
	return &JourneysRepository{
		conn: conn,
	}
}

func (jr *JourneysRepository) Get(ctx context.Context, uid uuid.UUID) (*entity.JourneyState, error) {
	var state entity.JourneyState
	row := jr.conn.QueryRow(ctx, `SELECT completed_days, total_poses_practiced, total_practice_time, current_day, last_practice_date, streak_count, journey_start_date
		FROM user_journeys WHERE user_id = $1;`, uid)
	err := row.Scan(
		&state.CompletedDays,
		&state.TotalPosesPracticed,
		&state.TotalPracticeTime,
		&state.CurrentDay,
		&state.LastPracticeDate,
		&state.StreakCount,
		&state.JourneyStartDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrJourneyNotFound
		}
		return nil, errors.New("getting journey error: " + err.Error())
	}
	if state.CompletedDays == nil {
		state.CompletedDays = []int{}
	}
	return &state, nil
}

func (jr *JourneysRepository) Upsert(ctx context.Context, uid uuid.UUID, state *entity.JourneyState) error {
	_, err := jr.conn.Exec(ctx, `INSERT INTO user_journeys (user_id, completed_days, total_poses_practiced, total_practice_time, current_day, last_practice_date, streak_count, journey_start_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id) DO UPDATE SET completed_days = EXCLUDED.completed_days, total_poses_practiced = EXCLUDED.total_poses_practiced, total_practice_time = EXCLUDED.total_practice_time, current_day = EXCLUDED.current_day, last_practice_date = EXCLUDED.last_practice_date, streak_count = EXCLUDED.streak_count, journey_start_date = EXCLUDED.journey_start_date, updated_at = NOW();`,
		uid,
		state.CompletedDays,
		state.TotalPosesPracticed,
		state.TotalPracticeTime,
		state.CurrentDay,
		state.LastPracticeDate,
		state.StreakCount,
		state.JourneyStartDate,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return errorvalues.ErrUserNotFound
			}
		}
		return errors.New("saving journey error: " + err.Error())
	}
	return nil
}
