package middleware

import (
	"strings"

	"github.com/josefahaz/bucksportbaseball/internal/api"
	"github.com/josefahaz/bucksportbaseball/internal/auth"
	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Locals keys set by Authenticate.
const (
	LocalUserEmail = "userEmail"
	LocalUserRole  = "userRole"
)

// Authenticate validates the Bearer session token and stores the caller identity in locals.
func Authenticate(log *zap.SugaredLogger, tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return unauthorized(c, "missing bearer token")
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			log.Infow("session token rejected", "error", err)
			return unauthorized(c, "invalid or expired token")
		}

		c.Locals(LocalUserEmail, claims.Email)
		c.Locals(LocalUserRole, claims.Role)
		return c.Next()
	}
}

// RequireRole rejects callers whose role ranks below min.
func RequireRole(min string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalUserRole).(string)
		if !entities.RoleAtLeast(role, min) {
			return c.Status(fiber.StatusForbidden).JSON(api.ErrorResponse{
				Error: api.ErrorBody{Code: api.CodeForbidden, Message: "insufficient role"},
			})
		}
		return c.Next()
	}
}

// RequireAnyRole rejects callers whose role is not in the allowed set.
func RequireAnyRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalUserRole).(string)
		if _, ok := allowed[role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(api.ErrorResponse{
				Error: api.ErrorBody{Code: api.CodeForbidden, Message: "insufficient role"},
			})
		}
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(api.ErrorResponse{
		Error: api.ErrorBody{Code: api.CodeUnauthorized, Message: msg},
	})
}
