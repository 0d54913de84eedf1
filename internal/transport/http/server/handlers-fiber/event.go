package handlers_fiber

import (
	"net/http"
	"strconv"

	"github.com/josefahaz/bucksportbaseball/internal/api"
	"github.com/josefahaz/bucksportbaseball/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostEvent registers a league event.
func (h *Handler) PostEvent(c *fiber.Ctx) error {
	var body api.Event
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	event, err := h.uc.CreateEvent(c.Context(), mapper.FromAPIEvent(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	h.logActivity(c, "create", "event", event.ID)
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIEvent(*event))
}

// GetEvents lists events ordered by start time, optionally for one team.
func (h *Handler) GetEvents(c *fiber.Ctx) error {
	var teamID *int64
	if raw := c.Query("team_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return badRequest(c, "team_id must be a positive integer")
		}
		teamID = &id
	}

	events, err := h.uc.Events(c.Context(), teamID)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIEventList(events))
}
