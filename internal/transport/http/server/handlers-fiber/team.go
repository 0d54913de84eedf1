package handlers_fiber

import (
	"net/http"

	"github.com/josefahaz/bucksportbaseball/internal/api"
	"github.com/josefahaz/bucksportbaseball/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostTeam creates a team.
func (h *Handler) PostTeam(c *fiber.Ctx) error {
	var body api.Team
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	team, err := h.uc.CreateTeam(c.Context(), mapper.FromAPITeam(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	h.logActivity(c, "create", "team", team.ID)
	return c.Status(http.StatusCreated).JSON(mapper.ToAPITeam(*team))
}

// GetTeams lists all teams.
func (h *Handler) GetTeams(c *fiber.Ctx) error {
	teams, err := h.uc.Teams(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeamList(teams))
}

// GetTeam returns one team by id.
func (h *Handler) GetTeam(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	team, err := h.uc.Team(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// PutTeam replaces a team's fields.
func (h *Handler) PutTeam(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body api.Team
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	body.ID = id

	team, err := h.uc.UpdateTeam(c.Context(), mapper.FromAPITeam(body))
	if err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "update", "team", id)
	return c.Status(http.StatusOK).JSON(mapper.ToAPITeam(*team))
}

// DeleteTeam removes a team.
func (h *Handler) DeleteTeam(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteTeam(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "delete", "team", id)
	return c.SendStatus(http.StatusNoContent)
}
