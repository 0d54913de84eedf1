package importer

import (
	"strings"
	"testing"

	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestNormalizeCategory(t *testing.T) {
	require.Equal(t, "helmet", NormalizeCategory(" Helmet "))
	require.Equal(t, "bat", NormalizeCategory("BAT"))
	require.Equal(t, "other", NormalizeCategory("snowboard"))
	require.Equal(t, "other", NormalizeCategory(""))
}

func TestInferDivision(t *testing.T) {
	tests := []struct {
		name     string
		item     string
		category string
		notes    string
		want     string
	}{
		{"softball in name", "Softball Helmet", "helmet", "", "Softball"},
		{"softball in notes", "Helmet M", "helmet", "for softball team", "Softball"},
		{"shared wins over softball", "Umpire softball gear", "other", "", "Shared"},
		{"baseball in name", "Baseball Jersey", "jersey", "", "Baseball"},
		{"tee ball", "Tee Ball set", "other", "", "Baseball"},
		{"ball defaults baseball", "Practice set", "ball", "", "Baseball"},
		{"12 inch ball is softball", "12 inch balls", "ball", "", "Softball"},
		{"default shared", "Storage shed key", "other", "", "Shared"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, InferDivision(tt.item, tt.category, tt.notes))
		})
	}
}

func TestParseInventoryCSV(t *testing.T) {
	csv := strings.Join([]string{
		"Item Name,Category,Size,Team,Assigned Coach,Quantity,Status,Notes",
		"Softball Helmet,Helmet,M,,Coach A,6,Available,",
		",,,,,,,",
		"Practice Bats,bat,28in,,,notanumber,,",
		"Umpire Vest,Gear,,,,2,Checked Out,umpire equipment",
	}, "\n")

	items, err := ParseInventoryCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, items, 3)

	require.Equal(t, "Softball Helmet", items[0].ItemName)
	require.Equal(t, "helmet", items[0].Category)
	require.Equal(t, "Softball", *items[0].Division)
	require.Equal(t, 6, items[0].Quantity)
	require.Equal(t, "Coach A", items[0].AssignedCoach)

	require.Equal(t, "bat", items[1].Category)
	require.Equal(t, 1, items[1].Quantity)
	require.Equal(t, entities.StatusAvailable, items[1].Status)
	require.Equal(t, "Unassigned", items[1].AssignedCoach)

	require.Equal(t, "other", items[2].Category)
	require.Equal(t, "Shared", *items[2].Division)
	require.Equal(t, "Checked Out", items[2].Status)
}

func TestParseSheetTrimsHeaderAndSkipsEmptyRows(t *testing.T) {
	f := excelize.NewFile()
	const sheet = "Master Sponsor List"
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)

	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Company Name", "2025", "Notes", "", ""}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Hannaford", "500", "banner"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"", "", ""}))
	require.NoError(t, f.SetSheetRow(sheet, "A4", &[]any{"Local Hardware", "", ""}))

	meta, rows, err := ParseSheet(f, sheet)
	require.NoError(t, err)
	require.Equal(t, []string{"Company Name", "2025", "Notes"}, meta.Columns)
	require.Len(t, rows, 2)
	require.Equal(t, 2, rows[0].RowIndex)
	require.Equal(t, "Hannaford", rows[0].Data["Company Name"])
	require.Equal(t, 4, rows[1].RowIndex)
}

func TestParseDonationSheetExpandsYears(t *testing.T) {
	f := excelize.NewFile()
	const sheet = "Master Sponsor List"
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)

	require.NoError(t, f.SetSheetRow(sheet, "A1",
		&[]any{"Company Name", "Division", "Contact Person", "2025", "2024", "2023"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2",
		&[]any{"Hannaford", "Baseball", "Pat", "500", "", "250"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3",
		&[]any{"Local Hardware", "", "", "n/a", "0", "100"}))
	require.NoError(t, f.SetSheetRow(sheet, "A4",
		&[]any{"", "", "", "999", "", ""}))

	spec := DonationSheetSpec{
		Sheet:         sheet,
		NameHeader:    "Company Name",
		Years:         []int{2025, 2024, 2023},
		ContactHeader: "Contact Person",
	}

	donations, err := ParseDonationSheet(f, spec)
	require.NoError(t, err)
	require.Len(t, donations, 3)

	require.Equal(t, "Hannaford", donations[0].Name)
	require.InDelta(t, 500.0, donations[0].Amount, 0.001)
	require.Equal(t, 2025, donations[0].DonatedOn.Year())
	require.Equal(t, 1, int(donations[0].DonatedOn.Month()))
	require.Equal(t, "Baseball", *donations[0].Division)
	require.Equal(t, "Pat", *donations[0].ContactPerson)

	require.Equal(t, 2023, donations[1].DonatedOn.Year())

	require.Equal(t, "Local Hardware", donations[2].Name)
	require.Equal(t, 2023, donations[2].DonatedOn.Year())
}

func TestParseDonationSheetFixedDivision(t *testing.T) {
	f := excelize.NewFile()
	const sheet = "Softball Banners - Current"
	_, err := f.NewSheet(sheet)
	require.NoError(t, err)

	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Business", "2025"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Ice Cream Shop", "$1,200"}))

	spec := DonationSheetSpec{
		Sheet:      sheet,
		NameHeader: "Business",
		Division:   string(entities.DivisionSoftball),
		Years:      []int{2025},
	}

	donations, err := ParseDonationSheet(f, spec)
	require.NoError(t, err)
	require.Len(t, donations, 1)
	require.InDelta(t, 1200.0, donations[0].Amount, 0.001)
	require.Equal(t, "Softball", *donations[0].Division)
}
