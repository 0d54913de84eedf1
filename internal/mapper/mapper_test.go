package mapper

import (
	"testing"

	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"github.com/stretchr/testify/require"
)

func TestFromAPISheetRowsNumbersLikeWorkbookRows(t *testing.T) {
	rows := FromAPISheetRows("2025 Sign Sponsors", []map[string]any{
		{"Business": "Hannaford", "Amount": 250},
		{"Business": "Bangor Savings", "Amount": 500},
	})

	require.Len(t, rows, 2)
	require.Equal(t, 2, rows[0].RowIndex)
	require.Equal(t, 3, rows[1].RowIndex)
	require.Equal(t, "2025 Sign Sponsors", rows[0].SheetName)
	require.Equal(t, "Hannaford", rows[0].Data["Business"])
}

func TestSheetRowsSurviveFetchAndReplace(t *testing.T) {
	sheet := entities.SponsorshipSheet{
		SheetName: "2025 Banner Sponsors",
		Columns:   []string{"Business", "Contact"},
	}
	stored := []entities.SponsorshipRow{
		{SheetName: sheet.SheetName, RowIndex: 2, Data: map[string]any{"Business": "Crosby's", "Contact": "Pat"}},
		{SheetName: sheet.SheetName, RowIndex: 3, Data: map[string]any{"Business": "Riverview Motel", "Contact": "Sam"}},
	}

	// A client that fetches the sheet and sends it straight back must not
	// shift any row numbers.
	fetched := ToAPISheet(sheet, stored)
	replaced := FromAPISheetRows(fetched.SheetName, fetched.Rows)

	require.Len(t, replaced, len(stored))
	for i := range stored {
		require.Equal(t, stored[i].RowIndex, replaced[i].RowIndex)
		require.Equal(t, stored[i].Data, replaced[i].Data)
	}
}
