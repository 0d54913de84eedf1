package domain

import (
	"context"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"
)

// Sheets lists imported sponsorship sheets.
func (u *Usecase) Sheets(ctx context.Context) ([]entities.SponsorshipSheet, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListSheets(ctx)
}

// Sheet returns one sponsorship sheet with its rows.
func (u *Usecase) Sheet(ctx context.Context, name string) (*entities.SponsorshipSheet, []entities.SponsorshipRow, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if name == "" {
		return nil, nil, fmt.Errorf("%w: sheet name is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetSheet(ctx, name)
}

// ReplaceSheet swaps a sheet's columns and rows wholesale.
func (u *Usecase) ReplaceSheet(ctx context.Context, sheet entities.SponsorshipSheet, rows []entities.SponsorshipRow) (int, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if sheet.SheetName == "" {
		return 0, fmt.Errorf("%w: sheet name is required", entities.ErrInvalidArgument)
	}
	if len(sheet.Columns) == 0 {
		return 0, fmt.Errorf("%w: columns are required", entities.ErrInvalidArgument)
	}
	return u.repo.ReplaceSheet(ctx, sheet, rows)
}
