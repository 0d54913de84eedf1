package handlers_fiber

import (
	"net/http"
	"net/url"

	"github.com/josefahaz/bucksportbaseball/internal/api"
	"github.com/josefahaz/bucksportbaseball/internal/entities"
	"github.com/josefahaz/bucksportbaseball/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetSheets lists imported sponsorship sheets.
func (h *Handler) GetSheets(c *fiber.Ctx) error {
	sheets, err := h.uc.Sheets(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISheetSummaryList(sheets))
}

// GetSheet returns one sponsorship sheet with its rows.
func (h *Handler) GetSheet(c *fiber.Ctx) error {
	name := sheetName(c)

	sheet, rows, err := h.uc.Sheet(c.Context(), name)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPISheet(*sheet, rows))
}

// PutSheet replaces a sheet's columns and rows wholesale.
func (h *Handler) PutSheet(c *fiber.Ctx) error {
	name := sheetName(c)

	var body api.ReplaceSheetRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	sheet := entities.SponsorshipSheet{SheetName: name, Columns: body.Columns}
	count, err := h.uc.ReplaceSheet(c.Context(), sheet, mapper.FromAPISheetRows(name, body.Rows))
	if err != nil {
		return writeError(c, err)
	}

	h.uc.LogActivity(c.Context(), actorEmail(c), "replace", "sponsorship_sheet", name, nil)
	return c.Status(http.StatusOK).JSON(struct {
		SheetName string `json:"sheet_name"`
		Rows      int    `json:"rows"`
	}{SheetName: name, Rows: count})
}

// Sheet names may contain spaces, so the path segment arrives escaped.
func sheetName(c *fiber.Ctx) string {
	raw := c.Params("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}
