// Package main applies database migrations outside the server lifecycle.
package main

import (
	"context"
	"database/sql"
	"flag"
	"os"
	"time"

	"github.com/josefahaz/bucksportbaseball/config"
	"github.com/josefahaz/bucksportbaseball/pkg/logger"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

func main() {
	command := flag.String("command", "up", "migrate command (up|status|down)")
	timeout := flag.Duration("timeout", time.Minute, "command timeout")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		log.Errorw("failed to open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	switch *command {
	case "up":
		err = goose.UpContext(ctx, db, cfg.Postgres.MigrationsDir)
	case "status":
		err = goose.StatusContext(ctx, db, cfg.Postgres.MigrationsDir)
	case "down":
		err = goose.DownContext(ctx, db, cfg.Postgres.MigrationsDir)
	default:
		log.Errorw("unsupported command", "command", *command)
		os.Exit(1)
	}
	if err != nil {
		log.Errorw("migration command failed", "command", *command, "error", err)
		os.Exit(1)
	}

	log.Infow("migration command completed", "command", *command)
}
