package importer

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"github.com/xuri/excelize/v2"
)

// DonationSheetSpec maps a workbook tab's columns onto donation fields.
// Year columns hold the amount paid that year; each positive numeric cell
// becomes one donation dated January 1 of that year.
type DonationSheetSpec struct {
	Sheet      string
	NameHeader string
	// Division applies to every row; empty means read the Division column.
	Division      string
	Years         []int
	ContactHeader string
	PhoneHeader   string
	EmailHeader   string
	AddressHeader string
	NotesHeader   string
}

// DefaultDonationSheets mirror the sponsorship workbook layout.
var DefaultDonationSheets = []DonationSheetSpec{
	{
		Sheet:         "Master Sponsor List",
		NameHeader:    "Company Name",
		Years:         []int{2025, 2024, 2023, 2022, 2021, 2020},
		ContactHeader: "Contact Person",
		PhoneHeader:   "Phone",
		EmailHeader:   "Email",
		AddressHeader: "Address",
		NotesHeader:   "Notes",
	},
	{
		Sheet:         "Softball Banners - Current",
		NameHeader:    "Business",
		Division:      string(entities.DivisionSoftball),
		Years:         []int{2025, 2024, 2023, 2022, 2021},
		ContactHeader: "Business Contact",
		AddressHeader: "Mailing Address / Contact Info",
		NotesHeader:   "Notes",
	},
	{
		Sheet:         "Softball Banners - Team Sponsor",
		NameHeader:    "Company Name",
		Division:      string(entities.DivisionSoftball),
		Years:         []int{2025, 2024, 2023, 2022, 2021, 2020},
		ContactHeader: "Company Contact",
		PhoneHeader:   "Phone",
		EmailHeader:   "Email",
		AddressHeader: "Address",
		NotesHeader:   "Notes:",
	},
	{
		Sheet:         "Baseball Banners - Current",
		NameHeader:    "Business",
		Division:      string(entities.DivisionBaseball),
		Years:         []int{2025},
		ContactHeader: "Business Contact",
		AddressHeader: "Mailing Address / Contact Info",
		NotesHeader:   "Notes",
	},
}

// ParseDonationSheet expands a workbook tab into donation records.
func ParseDonationSheet(f *excelize.File, spec DonationSheetSpec) ([]entities.Donation, error) {
	rows, err := f.GetRows(spec.Sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", spec.Sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	col := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		col[strings.TrimSpace(h)] = i
	}
	nameIdx, ok := col[spec.NameHeader]
	if !ok {
		return nil, fmt.Errorf("sheet %q: missing column %q", spec.Sheet, spec.NameHeader)
	}

	cell := func(cells []string, header string) string {
		i, ok := col[strings.TrimSpace(header)]
		if !ok || i >= len(cells) {
			return ""
		}
		return strings.TrimSpace(cells[i])
	}
	optional := func(cells []string, header string) *string {
		if header == "" {
			return nil
		}
		if v := cell(cells, header); v != "" {
			return &v
		}
		return nil
	}

	donations := make([]entities.Donation, 0)
	for _, cells := range rows[1:] {
		if nameIdx >= len(cells) {
			continue
		}
		name := strings.TrimSpace(cells[nameIdx])
		if name == "" {
			continue
		}

		var division *string
		if spec.Division != "" {
			d := spec.Division
			division = &d
		} else {
			division = optional(cells, "Division")
		}

		for _, year := range spec.Years {
			raw := cell(cells, strconv.Itoa(year))
			if raw == "" {
				continue
			}
			amount, err := strconv.ParseFloat(strings.TrimPrefix(strings.ReplaceAll(raw, ",", ""), "$"), 64)
			if err != nil || amount <= 0 {
				continue
			}

			donations = append(donations, entities.Donation{
				Name:          name,
				Amount:        amount,
				DonationType:  "Sponsorship",
				DonatedOn:     time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
				Division:      division,
				ContactPerson: optional(cells, spec.ContactHeader),
				Phone:         optional(cells, spec.PhoneHeader),
				Email:         optional(cells, spec.EmailHeader),
				Address:       optional(cells, spec.AddressHeader),
				Notes:         optional(cells, spec.NotesHeader),
			})
		}
	}

	return donations, nil
}

// ImportDonations clears existing donations and books every spreadsheet payment.
func (im *Importer) ImportDonations(ctx context.Context, path string, specs []DonationSheetSpec) (int, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return 0, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	all := make([]entities.Donation, 0)
	for _, spec := range specs {
		donations, err := ParseDonationSheet(f, spec)
		if err != nil {
			return 0, err
		}
		im.log.Infow("donation sheet parsed", "sheet", spec.Sheet, "donations", len(donations))
		all = append(all, donations...)
	}

	count, err := im.repo.ReplaceDonations(ctx, all)
	if err != nil {
		return 0, err
	}

	summary, err := im.repo.DonationSummary(ctx)
	if err != nil {
		return count, err
	}
	for _, s := range summary {
		im.log.Infow("donation totals", "year", s.Year, "count", s.Count, "total", s.Total)
	}

	return count, nil
}
