package repository

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/yogajourney/pkg/cleanup"
)

// NewPool opens the pool shared by every repository and registers its
// closing as a cleanup job.
func NewPool(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

func mustPing(conn PgConnection, repoName string) {
	if err := conn.Ping(context.Background()); err != nil {
		log.Fatal("error while pinging connection for " + repoName + ": " + err.Error())
	}
}
