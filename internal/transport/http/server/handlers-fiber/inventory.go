package handlers_fiber

import (
	"net/http"

	"github.com/josefahaz/bucksportbaseball/internal/api"
	"github.com/josefahaz/bucksportbaseball/internal/entities"
	"github.com/josefahaz/bucksportbaseball/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// GetInventory lists equipment with optional category, division and status filters.
func (h *Handler) GetInventory(c *fiber.Ctx) error {
	var filter entities.InventoryFilter
	if v := c.Query("category"); v != "" {
		filter.Category = &v
	}
	if v := c.Query("division"); v != "" {
		filter.Division = &v
	}
	if v := c.Query("status"); v != "" {
		filter.Status = &v
	}

	items, err := h.uc.Items(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIItemList(items))
}

// GetInventoryItem returns one equipment record.
func (h *Handler) GetInventoryItem(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	item, err := h.uc.Item(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIItem(*item))
}

// PostInventoryItem records a new equipment item.
func (h *Handler) PostInventoryItem(c *fiber.Ctx) error {
	var body api.InventoryItem
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	item, err := h.uc.AddItem(c.Context(), mapper.FromAPIItem(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	h.logActivity(c, "create", "inventory_item", item.ID)
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIItem(*item))
}

// PutInventoryItem replaces an equipment record.
func (h *Handler) PutInventoryItem(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	var body api.InventoryItem
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	body.ID = id

	item, err := h.uc.UpdateItem(c.Context(), mapper.FromAPIItem(body))
	if err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "update", "inventory_item", id)
	return c.Status(http.StatusOK).JSON(mapper.ToAPIItem(*item))
}

// DeleteInventoryItem removes an equipment record.
func (h *Handler) DeleteInventoryItem(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.RemoveItem(c.Context(), id); err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "delete", "inventory_item", id)
	return c.SendStatus(http.StatusNoContent)
}
