package main

import (
	"database/sql"
	"flag"
	"log"

	_ "github.com/lib/pq"
	"github.com/limbo/yogajourney/internal/repository"
	"github.com/limbo/yogajourney/pkg/config"
	"github.com/pressly/goose"
)

func main() {
	down := flag.Bool("down", false, "roll back the latest migration instead of applying all")
	flag.Parse()

	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	conn, err := sql.Open("postgres", dbCfg.ConnString()+"?sslmode="+cfg.GetStringOr("POSTGRES_SSLMODE", "disable"))
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer conn.Close()

	if err = goose.SetDialect("postgres"); err != nil {
		log.Fatalf("set dialect: %v", err)
	}
	dir := cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")
	if *down {
		err = goose.Down(conn, dir)
	} else {
		err = goose.Up(conn, dir)
	}
	if err != nil {
		log.Fatalf("run migrations: %v", err)
	}
	log.Println("migrations applied successfully")
}
