package handlers_fiber

import (
	"net/http"

	"github.com/josefahaz/bucksportbaseball/internal/api"
	"github.com/josefahaz/bucksportbaseball/internal/entities"
	"github.com/josefahaz/bucksportbaseball/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetBoardMembers lists the board roster.
func (h *Handler) GetBoardMembers(c *fiber.Ctx) error {
	members, err := h.uc.BoardMembers(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIBoardMemberList(members))
}

// PostBoardMember records a board member.
func (h *Handler) PostBoardMember(c *fiber.Ctx) error {
	var body api.BoardMember
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	member, err := h.uc.AddBoardMember(c.Context(), mapper.FromAPIBoardMember(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	h.logActivity(c, "create", "board_member", member.ID)
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIBoardMember(*member))
}

// PutBoardMember replaces a board member's fields.
func (h *Handler) PutBoardMember(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body api.BoardMember
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	body.ID = id

	member, err := h.uc.UpdateBoardMember(c.Context(), mapper.FromAPIBoardMember(body))
	if err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "update", "board_member", id)
	return c.Status(http.StatusOK).JSON(mapper.ToAPIBoardMember(*member))
}

// DeleteBoardMember removes a board member.
func (h *Handler) DeleteBoardMember(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.RemoveBoardMember(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "delete", "board_member", id)
	return c.SendStatus(http.StatusNoContent)
}

// GetCoaches lists the coaching roster.
func (h *Handler) GetCoaches(c *fiber.Ctx) error {
	coaches, err := h.uc.Coaches(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPICoachList(coaches))
}

// PostCoach records a coach.
func (h *Handler) PostCoach(c *fiber.Ctx) error {
	var body api.Coach
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	coach, err := h.uc.AddCoach(c.Context(), mapper.FromAPICoach(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	h.logActivity(c, "create", "coach", coach.ID)
	return c.Status(http.StatusCreated).JSON(mapper.ToAPICoach(*coach))
}

// PutCoach replaces a coach's fields.
func (h *Handler) PutCoach(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body api.Coach
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	body.ID = id

	coach, err := h.uc.UpdateCoach(c.Context(), mapper.FromAPICoach(body))
	if err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "update", "coach", id)
	return c.Status(http.StatusOK).JSON(mapper.ToAPICoach(*coach))
}

// DeleteCoach removes a coach.
func (h *Handler) DeleteCoach(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.RemoveCoach(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "delete", "coach", id)
	return c.SendStatus(http.StatusNoContent)
}

// GetLocations lists known fields and venues.
func (h *Handler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.uc.Locations(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPILocationList(locations))
}

// PostLocation records a field or venue.
func (h *Handler) PostLocation(c *fiber.Ctx) error {
	var body api.Location
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	loc, err := h.uc.AddLocation(c.Context(), entities.Location{Name: body.Name})
	if err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "create", "location", loc.ID)
	return c.Status(http.StatusCreated).JSON(mapper.ToAPILocation(*loc))
}

// DeleteLocation removes a field or venue.
func (h *Handler) DeleteLocation(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.RemoveLocation(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "delete", "location", id)
	return c.SendStatus(http.StatusNoContent)
}
