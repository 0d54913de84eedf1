// Package main dumps a stored sponsorship sheet to a JSON file for the
// public website build.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"github.com/josefahaz/bucksportbaseball/config"
	"github.com/josefahaz/bucksportbaseball/internal/repository"
	"github.com/josefahaz/bucksportbaseball/pkg/logger"
)

type export struct {
	SheetName  string           `json:"sheet_name"`
	Columns    []string         `json:"columns"`
	ExportedAt time.Time        `json:"exported_at"`
	Rows       []map[string]any `json:"rows"`
}

func main() {
	sheet := flag.String("sheet", "Master Sponsor List", "sheet to export")
	out := flag.String("out", "sponsors_export.json", "output file")
	timeout := flag.Duration("timeout", time.Minute, "export timeout")
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

	meta, rows, err := repo.GetSheet(ctx, *sheet)
	if err != nil {
		log.Errorw("sheet read failed", "sheet", *sheet, "error", err)
		os.Exit(1)
	}

	doc := export{
		SheetName:  meta.SheetName,
		Columns:    meta.Columns,
		ExportedAt: time.Now().UTC(),
		Rows:       make([]map[string]any, 0, len(rows)),
	}
	for _, r := range rows {
		doc.Rows = append(doc.Rows, r.Data)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Errorw("marshal failed", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Errorw("write failed", "file", *out, "error", err)
		os.Exit(1)
	}

	log.Infow("sponsor export completed", "sheet", *sheet, "file", *out, "rows", len(doc.Rows))
}
