// Package entities contains core business entities.
package entities

import "time"

// SponsorshipSheet mirrors one worksheet of the external sponsorship
// spreadsheet: a named column set plus generic JSON-valued rows.
type SponsorshipSheet struct {
	SheetName string
	Columns   []string
	UpdatedAt time.Time
}

// SponsorshipRow is one data row of a sponsorship sheet. Data is keyed by
// column header.
type SponsorshipRow struct {
	ID        int64
	SheetName string
	RowIndex  int
	Data      map[string]any
	UpdatedAt time.Time
}
