package handlers_fiber

import (
	"net/http"

	"github.com/josefahaz/bucksportbaseball/internal/api"
	"github.com/josefahaz/bucksportbaseball/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// PostGoogleLogin exchanges a Google ID token for a session token.
func (h *Handler) PostGoogleLogin(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}
	if body.Credential == "" {
		return badRequest(c, "credential is required")
	}

	session, err := h.uc.GoogleLogin(c.Context(), body.Credential)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(api.LoginResponse{
		AccessToken: session.Token,
		TokenType:   "bearer",
		User:        mapper.ToAPIUser(session.User),
	})
}

// GetMe returns the account behind the session token.
func (h *Handler) GetMe(c *fiber.Ctx) error {
	user, err := h.uc.CurrentUser(c.Context(), actorEmail(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*user))
}

// GetUsers lists all site accounts.
func (h *Handler) GetUsers(c *fiber.Ctx) error {
	users, err := h.uc.Users(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIUserList(users))
}

// PostUser grants site access to a new account.
func (h *Handler) PostUser(c *fiber.Ctx) error {
	var body api.User
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	user, err := h.uc.CreateUser(c.Context(), mapper.FromAPIUser(body))
	if err != nil {
		h.log.Infow(err.Error())
		return writeError(c, err)
	}

	h.logActivity(c, "create", "user", user.ID)
	return c.Status(http.StatusCreated).JSON(mapper.ToAPIUser(*user))
}

// DeleteUser revokes an account.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.uc.DeleteUser(c.Context(), actorEmail(c), id); err != nil {
		return writeError(c, err)
	}

	h.logActivity(c, "delete", "user", id)
	return c.SendStatus(http.StatusNoContent)
}
