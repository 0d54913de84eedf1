package handlers_fiber

import (
	"net/http"

	"github.com/josefahaz/bucksportbaseball/internal/api"
	"github.com/josefahaz/bucksportbaseball/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostPlayer registers a player.
func (h *Handler) PostPlayer(c *fiber.Ctx) error {
	var body api.Player
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	player, err := mapper.FromAPIPlayer(body)
	if err != nil {
		return writeError(c, err)
	}

	created, err := h.uc.RegisterPlayer(c.Context(), player)
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	h.logActivity(c, "register", "player", created.ID)
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIPlayer(*created))
}

// GetPlayers lists all registered players.
func (h *Handler) GetPlayers(c *fiber.Ctx) error {
	players, err := h.uc.Players(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPlayerList(players))
}

// GetPlayer returns one player by id.
func (h *Handler) GetPlayer(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	player, err := h.uc.Player(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIPlayer(*player))
}
