// Package main loads the initial roster and admin accounts into the database.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/josefahaz/bucksportbaseball/config"
	"github.com/josefahaz/bucksportbaseball/internal/repository"
	"github.com/josefahaz/bucksportbaseball/internal/seed"
	"github.com/josefahaz/bucksportbaseball/pkg/logger"
)

func main() {
	timeout := flag.Duration("timeout", time.Minute, "seed timeout")
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

	repo, err := repository.New(ctx, "postgres", log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		os.Exit(1)
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	if err := seed.New(log, repo).Run(ctx); err != nil {
		log.Errorw("seeding failed", "error", err)
		os.Exit(1)
	}

	log.Infow("seeding completed")
}
