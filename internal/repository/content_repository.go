package repository

import (
	"context"
	"errors"

	"github.com/limbo/yogajourney/pkg/entity"
)

type ContentRepository struct {
	conn PgConnection
}

func NewContentRepo(cfg DBConfig) *ContentRepository {
	return &ContentRepository{
		conn: NewPool(cfg),
	}
}

func NewContentRepoWithConn(conn PgConnection) *ContentRepository {
	mustPing(conn, "contentRepo")
	return &ContentRepository{
		conn: conn,
	}
}

func (cr *ContentRepository) GetDayContent(ctx context.Context, day int, level entity.ExperienceLevel) ([]entity.Pose, error) {
	rows, err := cr.conn.Query(ctx, `SELECT id, day, experience_level, asana_name, video_url, video_duration, benefits, muscles_impacted, pose_steps
		FROM content_library WHERE day = $1 AND experience_level = $2 ORDER BY asana_name;`, day, string(level))
	if err != nil {
		return nil, errors.New("getting day content error: " + err.Error())
	}
	defer rows.Close()
	poses := make([]entity.Pose, 0, 4)
	for rows.Next() {
		var (
			p        entity.Pose
			lvl      string
			duration *int
			benefits *string
			muscles  *string
		)
		err = rows.Scan(&p.ID, &p.Day, &lvl, &p.Name, &p.VideoURL, &duration, &benefits, &muscles, &p.Steps)
		if err != nil {
			return nil, errors.New("unmarshalling pose error: " + err.Error())
		}
		p.ExperienceLevel = entity.ExperienceLevel(lvl)
		if duration != nil {
			p.DurationSeconds = *duration
		}
		if benefits != nil {
			p.Benefits = *benefits
		}
		if muscles != nil {
			p.MusclesTargeted = *muscles
		}
		poses = append(poses, p)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected pose rows error: " + err.Error())
	}
	return poses, nil
}
