package handlers_fiber

import (
	"net/http"
	"strconv"

	"github.com/josefahaz/bucksportbaseball/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetActivity returns the newest audit entries.
func (h *Handler) GetActivity(c *fiber.Ctx) error {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "limit must be an integer")
		}
		limit = n
	}

	entries, err := h.uc.Activity(c.Context(), limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIActivityList(entries))
}
