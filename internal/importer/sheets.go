package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"github.com/xuri/excelize/v2"
)

// DefaultSheets are the sponsorship workbook tabs imported for the website.
var DefaultSheets = []string{
	"Master Sponsor List",
	"Softball Banners - Current",
	"Softball Banners - Team Sponsor",
	"Baseball Banners - Current",
}

// ParseSheet extracts one workbook tab. The header row is trimmed to the
// last non-empty header and completely empty data rows are skipped.
func ParseSheet(f *excelize.File, sheetName string) (entities.SponsorshipSheet, []entities.SponsorshipRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return entities.SponsorshipSheet{}, nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return entities.SponsorshipSheet{SheetName: sheetName}, nil, nil
	}

	header := rows[0]
	lastCol := 0
	for i, h := range header {
		if strings.TrimSpace(h) != "" {
			lastCol = i + 1
		}
	}
	if lastCol == 0 {
		return entities.SponsorshipSheet{SheetName: sheetName}, nil, nil
	}
	columns := make([]string, lastCol)
	copy(columns, header[:lastCol])

	sheet := entities.SponsorshipSheet{SheetName: sheetName, Columns: columns}

	out := make([]entities.SponsorshipRow, 0, len(rows)-1)
	for rowNum := 1; rowNum < len(rows); rowNum++ {
		cells := rows[rowNum]
		data := make(map[string]any, lastCol)
		empty := true
		for i, colName := range columns {
			v := ""
			if i < len(cells) {
				v = cells[i]
			}
			if v != "" {
				empty = false
			}
			data[colName] = v
		}
		if empty {
			continue
		}
		out = append(out, entities.SponsorshipRow{
			SheetName: sheetName,
			RowIndex:  rowNum + 1,
			Data:      data,
		})
	}

	return sheet, out, nil
}

// ImportSheets replaces the stored copies of the given workbook tabs.
func (im *Importer) ImportSheets(ctx context.Context, path string, sheets []string) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	total := 0
	for _, name := range sheets {
		sheet, rows, err := ParseSheet(f, name)
		if err != nil {
			return total, err
		}
		count, err := im.repo.ReplaceSheet(ctx, sheet, rows)
		if err != nil {
			return total, fmt.Errorf("store sheet %q: %w", name, err)
		}
		im.log.Infow("sheet imported", "sheet", name, "rows", count)
		total += count
	}

	return total, nil
}
