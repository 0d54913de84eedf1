package handlers_fiber

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/josefahaz/bucksportbaseball/internal/api"
	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorNotFoundMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, entities.ErrTeamNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.CodeNotFound, body.Error.Code)
	require.Equal(t, "resource not found", body.Error.Message)
}

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    api.ErrorCode
		message string
	}{
		{
			name:    "invalid_argument",
			err:     entities.ErrInvalidArgument,
			status:  http.StatusBadRequest,
			code:    api.CodeInvalidArgument,
			message: entities.ErrInvalidArgument.Error(),
		},
		{
			name:    "team_exists",
			err:     entities.ErrTeamExists,
			status:  http.StatusBadRequest,
			code:    api.CodeTeamExists,
			message: "team name already exists",
		},
		{
			name:    "email_taken",
			err:     entities.ErrEmailTaken,
			status:  http.StatusConflict,
			code:    api.CodeEmailTaken,
			message: "a player with this email is already registered",
		},
		{
			name:    "invalid_token",
			err:     entities.ErrInvalidToken,
			status:  http.StatusUnauthorized,
			code:    api.CodeUnauthorized,
			message: "invalid token",
		},
		{
			name:    "domain_not_allowed",
			err:     entities.ErrDomainNotAllowed,
			status:  http.StatusForbidden,
			code:    api.CodeForbidden,
			message: "not authorized, contact an administrator",
		},
		{
			name:    "unknown_user",
			err:     entities.ErrUserNotAuthorized,
			status:  http.StatusForbidden,
			code:    api.CodeForbidden,
			message: "not authorized, contact an administrator",
		},
		{
			name:    "self_delete",
			err:     entities.ErrSelfDelete,
			status:  http.StatusBadRequest,
			code:    api.CodeSelfDelete,
			message: "cannot delete your own account",
		},
		{
			name:    "user_exists",
			err:     entities.ErrUserExists,
			status:  http.StatusBadRequest,
			code:    api.CodeUserExists,
			message: "user already exists",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
			require.Equal(t, tt.message, body.Error.Message)
		})
	}
}
