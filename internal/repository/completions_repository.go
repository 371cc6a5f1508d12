package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/yogajourney/internal/error_values"
	"github.com/limbo/yogajourney/pkg/entity"
)

type CompletionsRepository struct {
	conn PgConnection
}

func NewCompletionsRepo(cfg DBConfig) *CompletionsRepository {
	return &CompletionsRepository{
		conn: NewPool(cfg),
	}
}

func NewCompletionsRepoWithConn(conn PgConnection) *CompletionsRepository {
	mustPing(conn, "completionsRepo")
	return &CompletionsRepository{
		conn: conn,
	}
}

func (cr *CompletionsRepository) Create(ctx context.Context, completion *entity.DayCompletion) error {
	_, err := cr.conn.Exec(
		ctx,
		`INSERT INTO day_completions (user_id, day, practice_date, poses, minutes) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (user_id, day) DO NOTHING;`,
		completion.UserID,
		completion.Day,
		completion.PracticeDate,
		completion.Poses,
		completion.Minutes,
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
		return errors.New("creating completion error: " + err.Error())
	}
	return nil
}

func (cr *CompletionsRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.DayCompletion, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT id, user_id, day, practice_date, poses, minutes, created_at FROM day_completions WHERE user_id = $1 AND practice_date >= $2 AND practice_date <= $3 ORDER BY practice_date, day;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting completions for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.DayCompletion, 0, 4)
	for rows.Next() {
		c := entity.DayCompletion{}
		err = rows.Scan(&c.ID, &c.UserID, &c.Day, &c.PracticeDate, &c.Poses, &c.Minutes, &c.CreatedAt)
		if err != nil {
			return nil, errors.New("completion row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected completion rows error: " + err.Error())
	}
	return result, nil
}
