// Package importer loads league data from spreadsheet exports into the repository.
package importer

import (
	"github.com/josefahaz/bucksportbaseball/internal/repository"

	"go.uber.org/zap"
)

// Importer runs spreadsheet imports against the repository.
type Importer struct {
	log  *zap.SugaredLogger
	repo repository.Repository
}

// New constructs an importer.
func New(log *zap.SugaredLogger, repo repository.Repository) *Importer {
	return &Importer{log: log.Named("importer"), repo: repo}
}
