package handlers_fiber

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/josefahaz/bucksportbaseball/internal/api"
	"github.com/josefahaz/bucksportbaseball/internal/entities"
	"github.com/josefahaz/bucksportbaseball/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.CodeInternal
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.CodeInvalidArgument
		msg = err.Error()
	case errors.Is(err, entities.ErrTeamNotFound),
		errors.Is(err, entities.ErrPlayerNotFound),
		errors.Is(err, entities.ErrEventNotFound),
		errors.Is(err, entities.ErrItemNotFound),
		errors.Is(err, entities.ErrBoardMemberNotFound),
		errors.Is(err, entities.ErrCoachNotFound),
		errors.Is(err, entities.ErrLocationNotFound),
		errors.Is(err, entities.ErrScheduleEventNotFound),
		errors.Is(err, entities.ErrDonationNotFound),
		errors.Is(err, entities.ErrSheetNotFound),
		errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		code = api.CodeNotFound
		msg = "resource not found"
	case errors.Is(err, entities.ErrTeamExists):
		status = http.StatusBadRequest
		code = api.CodeTeamExists
		msg = "team name already exists"
	case errors.Is(err, entities.ErrEmailTaken):
		status = http.StatusConflict
		code = api.CodeEmailTaken
		msg = "a player with this email is already registered"
	case errors.Is(err, entities.ErrLocationExists):
		status = http.StatusBadRequest
		code = api.CodeLocationExists
		msg = "location already exists"
	case errors.Is(err, entities.ErrUserExists):
		status = http.StatusBadRequest
		code = api.CodeUserExists
		msg = "user already exists"
	case errors.Is(err, entities.ErrInvalidToken):
		status = http.StatusUnauthorized
		code = api.CodeUnauthorized
		msg = "invalid token"
	case errors.Is(err, entities.ErrDomainNotAllowed),
		errors.Is(err, entities.ErrUserNotAuthorized):
		status = http.StatusForbidden
		code = api.CodeForbidden
		msg = "not authorized, contact an administrator"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = api.CodeForbidden
		msg = "insufficient role"
	case errors.Is(err, entities.ErrSelfDelete):
		status = http.StatusBadRequest
		code = api.CodeSelfDelete
		msg = "cannot delete your own account"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: api.ErrorBody{Code: code, Message: msg}}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.CodeInvalidArgument, msg))
}

func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}

func actorEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(middleware.LocalUserEmail).(string)
	return email
}

// logActivity records an audit entry for a mutation performed by the caller.
func (h *Handler) logActivity(c *fiber.Ctx, action, entityType string, entityID int64) {
	h.uc.LogActivity(c.Context(), actorEmail(c), action, entityType, strconv.FormatInt(entityID, 10), nil)
}
