package handlers_fiber

import (
	"net/http"
	"strconv"

	"github.com/josefahaz/bucksportbaseball/internal/api"
	"github.com/josefahaz/bucksportbaseball/internal/entities"
	"github.com/josefahaz/bucksportbaseball/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetDonations lists donations with optional year and division filters.
func (h *Handler) GetDonations(c *fiber.Ctx) error {
	var filter entities.DonationFilter
	if raw := c.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "year must be an integer")
		}
		filter.Year = &year
	}
	if v := c.Query("division"); v != "" {
		filter.Division = &v
	}

	donations, err := h.uc.Donations(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIDonationList(donations))
}

// GetDonationSummary totals donations per calendar year.
func (h *Handler) GetDonationSummary(c *fiber.Ctx) error {
	summary, err := h.uc.DonationSummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIDonationSummary(summary))
}

// PostDonation books a donation or sponsorship payment.
func (h *Handler) PostDonation(c *fiber.Ctx) error {
	var body api.Donation
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	donation, err := mapper.FromAPIDonation(body)
	if err != nil {
		return writeError(c, err)
	}

	created, err := h.uc.RecordDonation(c.Context(), donation)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	h.logActivity(c, "create", "donation", created.ID)
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIDonation(*created))
}

// PutDonation replaces a donation record.
func (h *Handler) PutDonation(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body api.Donation
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	body.ID = id

	donation, err := mapper.FromAPIDonation(body)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := h.uc.UpdateDonation(c.Context(), donation)
	if err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "update", "donation", id)
	return c.Status(http.StatusOK).JSON(mapper.ToAPIDonation(*updated))
}

// DeleteDonation removes a donation record.
func (h *Handler) DeleteDonation(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteDonation(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "delete", "donation", id)
	return c.SendStatus(http.StatusNoContent)
}
