package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/josefahaz/bucksportbaseball/internal/entities"
)

var softballKeywords = []string{
	"batting tee", "12 inch", "11 inch", "softball", "girls", "womens", "women's",
	"knee savers", "pitching machine balls",
}

var sharedKeywords = []string{
	"umpire", "field", "first aid", "marker", "turf", "wiffle", "tennis balls",
	"marking paint", "spray cans",
}

// NormalizeCategory lowercases a raw category and falls back to "other"
// when it is not in the whitelist.
func NormalizeCategory(raw string) string {
	category := strings.ToLower(strings.TrimSpace(raw))
	if entities.ValidCategory(category) {
		return category
	}
	return entities.CategoryOther
}

// InferDivision guesses the division from an item's name, category and notes.
// Shared keywords win over softball ones; balls and bats default to baseball.
func InferDivision(itemName, category, notes string) string {
	combined := strings.ToLower(itemName) + " " + strings.ToLower(notes)

	for _, kw := range sharedKeywords {
		if strings.Contains(combined, kw) {
			return string(entities.DivisionShared)
		}
	}
	for _, kw := range softballKeywords {
		if strings.Contains(combined, kw) {
			return string(entities.DivisionSoftball)
		}
	}
	if strings.Contains(combined, "baseball") || strings.Contains(combined, "tee ball") {
		return string(entities.DivisionBaseball)
	}
	if category == entities.CategoryBall || category == entities.CategoryBat {
		return string(entities.DivisionBaseball)
	}
	return string(entities.DivisionShared)
}

// ParseInventoryCSV reads the equipment spreadsheet export. Rows without
// an item name are skipped; category and division are normalized.
func ParseInventoryCSV(r io.Reader) ([]entities.InventoryItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	if _, ok := col["Item Name"]; !ok {
		return nil, fmt.Errorf("missing Item Name column")
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	items := make([]entities.InventoryItem, 0)
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		name := field(record, "Item Name")
		if name == "" {
			continue
		}

		category := NormalizeCategory(field(record, "Category"))
		division := InferDivision(name, category, field(record, "Notes"))

		quantity := 1
		if q, err := strconv.Atoi(field(record, "Quantity")); err == nil {
			quantity = q
		}

		status := field(record, "Status")
		if status == "" {
			status = entities.StatusAvailable
		}
		coach := field(record, "Assigned Coach")
		if coach == "" {
			coach = "Unassigned"
		}

		item := entities.InventoryItem{
			ItemName:      name,
			Category:      category,
			Division:      &division,
			AssignedCoach: coach,
			Quantity:      quantity,
			Status:        status,
		}
		if v := field(record, "Size"); v != "" {
			item.Size = &v
		}
		if v := field(record, "Team"); v != "" {
			item.Team = &v
		}
		if v := field(record, "Notes"); v != "" {
			item.Notes = &v
		}
		items = append(items, item)
	}

	return items, nil
}

// ImportInventoryCSV replaces the equipment inventory with the CSV contents.
func (im *Importer) ImportInventoryCSV(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open csv: %w", err)
	}
	defer func() { _ = f.Close() }()

	items, err := ParseInventoryCSV(f)
	if err != nil {
		return 0, err
	}

	count, err := im.repo.ReplaceItems(ctx, items)
	if err != nil {
		return 0, err
	}

	im.log.Infow("inventory imported", "path", path, "items", count)
	return count, nil
}
