package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	listSheetsQuery      = `SELECT sheet_name, columns, updated_at FROM sponsorship_sheets ORDER BY sheet_name`
	selectSheetQuery     = `SELECT sheet_name, columns, updated_at FROM sponsorship_sheets WHERE sheet_name=$1`
	selectSheetRowsQuery = `
SELECT id, sheet_name, row_index, data, updated_at
FROM sponsorship_sheet_rows
WHERE sheet_name=$1
ORDER BY row_index`
	upsertSheetQuery = `
INSERT INTO sponsorship_sheets(sheet_name, columns, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (sheet_name) DO UPDATE SET columns = EXCLUDED.columns, updated_at = NOW()`
	deleteSheetRowsQuery = `DELETE FROM sponsorship_sheet_rows WHERE sheet_name=$1`
	insertSheetRowQuery  = `INSERT INTO sponsorship_sheet_rows(sheet_name, row_index, data, updated_at) VALUES ($1,$2,$3,NOW())`
)

// ListSheets returns metadata of every stored sponsorship sheet.
func (p *Postgres) ListSheets(ctx context.Context) ([]entities.SponsorshipSheet, error) {
	rows, err := p.db.Query(ctx, listSheetsQuery)
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	defer rows.Close()

	sheets := make([]entities.SponsorshipSheet, 0)
	for rows.Next() {
		var s entities.SponsorshipSheet
		if err := rows.Scan(&s.SheetName, &s.Columns, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sheet: %w", err)
		}
		sheets = append(sheets, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sheets: %w", err)
	}

	return sheets, nil
}

// GetSheet returns one sheet's metadata and all of its rows.
func (p *Postgres) GetSheet(ctx context.Context, name string) (*entities.SponsorshipSheet, []entities.SponsorshipRow, error) {
	var sheet entities.SponsorshipSheet
	if err := p.db.QueryRow(ctx, selectSheetQuery, name).Scan(&sheet.SheetName, &sheet.Columns, &sheet.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, entities.ErrSheetNotFound
		}
		return nil, nil, fmt.Errorf("get sheet: %w", err)
	}

	rows, err := p.db.Query(ctx, selectSheetRowsQuery, name)
	if err != nil {
		return nil, nil, fmt.Errorf("get sheet rows: %w", err)
	}
	defer rows.Close()

	sheetRows := make([]entities.SponsorshipRow, 0)
	for rows.Next() {
		var r entities.SponsorshipRow
		if err := rows.Scan(&r.ID, &r.SheetName, &r.RowIndex, &r.Data, &r.UpdatedAt); err != nil {
			return nil, nil, fmt.Errorf("scan sheet row: %w", err)
		}
		sheetRows = append(sheetRows, r)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate sheet rows: %w", err)
	}

	return &sheet, sheetRows, nil
}

// ReplaceSheet upserts sheet metadata and swaps all of its rows in one
// transaction, mirroring the worksheet import semantics.
func (p *Postgres) ReplaceSheet(ctx context.Context, sheet entities.SponsorshipSheet, rowsIn []entities.SponsorshipRow) (int, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, upsertSheetQuery, sheet.SheetName, sheet.Columns); err != nil {
		return 0, fmt.Errorf("upsert sheet: %w", err)
	}
	if _, err := tx.Exec(ctx, deleteSheetRowsQuery, sheet.SheetName); err != nil {
		return 0, fmt.Errorf("clear sheet rows: %w", err)
	}

	inserted := 0
	for _, r := range rowsIn {
		if _, err := tx.Exec(ctx, insertSheetRowQuery, sheet.SheetName, r.RowIndex, r.Data); err != nil {
			return 0, fmt.Errorf("insert sheet row: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	p.log.Infow("sponsorship sheet replaced", "sheet", sheet.SheetName, "rows", inserted)
	return inserted, nil
}
