package handlers_fiber

import (
	"net/http"
	"time"

	"github.com/josefahaz/bucksportbaseball/internal/api"
	"github.com/josefahaz/bucksportbaseball/internal/entities"
	"github.com/josefahaz/bucksportbaseball/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetSchedule lists calendar entries with optional date, type and status filters.
func (h *Handler) GetSchedule(c *fiber.Ctx) error {
	var filter entities.ScheduleFilter
	if raw := c.Query("date"); raw != "" {
		date, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return badRequest(c, "date must be YYYY-MM-DD")
		}
		filter.Date = &date
	}
	if v := c.Query("type"); v != "" {
		filter.EventType = &v
	}
	if v := c.Query("status"); v != "" {
		status := entities.ScheduleStatus(v)
		filter.Status = &status
	}

	events, err := h.uc.ScheduleEvents(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIScheduleEventList(events))
}

// PostScheduleRequest files a calendar request awaiting board approval.
func (h *Handler) PostScheduleRequest(c *fiber.Ctx) error {
	var body api.ScheduleEvent
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	event, err := mapper.FromAPIScheduleEvent(body)
	if err != nil {
		return writeError(c, err)
	}

	created, err := h.uc.RequestScheduleEvent(c.Context(), event)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	h.logActivity(c, "request", "schedule_event", created.ID)
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIScheduleEvent(*created))
}

// PostScheduleEvent puts an approved event straight on the calendar.
func (h *Handler) PostScheduleEvent(c *fiber.Ctx) error {
	var body api.ScheduleEvent
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	event, err := mapper.FromAPIScheduleEvent(body)
	if err != nil {
		return writeError(c, err)
	}

	created, err := h.uc.CreateScheduleEvent(c.Context(), event)
	if err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "create", "schedule_event", created.ID)
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIScheduleEvent(*created))
}

// PutScheduleEvent replaces a calendar entry, including approving pending requests.
func (h *Handler) PutScheduleEvent(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body api.ScheduleEvent
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	body.ID = id

	event, err := mapper.FromAPIScheduleEvent(body)
	if err != nil {
		return writeError(c, err)
	}

	updated, err := h.uc.UpdateScheduleEvent(c.Context(), event)
	if err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "update", "schedule_event", id)
	return c.Status(http.StatusOK).JSON(mapper.ToAPIScheduleEvent(*updated))
}

// DeleteScheduleEvent removes a calendar entry.
func (h *Handler) DeleteScheduleEvent(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteScheduleEvent(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "delete", "schedule_event", id)
	return c.SendStatus(http.StatusNoContent)
}
