// Package main rebuilds the donation ledger from the sponsorship workbook.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/josefahaz/bucksportbaseball/config"
	"github.com/josefahaz/bucksportbaseball/internal/importer"
	"github.com/josefahaz/bucksportbaseball/internal/repository"
	"github.com/josefahaz/bucksportbaseball/pkg/logger"
)

func main() {
	file := flag.String("file", "sponsorship_workbook.xlsx", "path to the sponsorship workbook")
	timeout := flag.Duration("timeout", time.Minute, "import timeout")
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

	count, err := importer.New(log, repo).ImportDonations(ctx, *file, importer.DefaultDonationSheets)
	if err != nil {
		log.Errorw("donation import failed", "file", *file, "error", err)
		os.Exit(1)
	}

	log.Infow("donation import completed", "file", *file, "donations", count)
}
