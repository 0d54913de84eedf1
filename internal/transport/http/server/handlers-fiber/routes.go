package handlers_fiber

import (
	"github.com/josefahaz/bucksportbaseball/internal/auth"
	"github.com/josefahaz/bucksportbaseball/internal/entities"
	"github.com/josefahaz/bucksportbaseball/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the public and authenticated route groups.
func RegisterRoutes(app *fiber.App, h *Handler, log *zap.SugaredLogger, tokens *auth.TokenManager, limiter *middleware.RateLimiter) {
	app.Post("/auth/google", middleware.LoginRateLimit(limiter), h.PostGoogleLogin)

	pub := app.Group("/api")
	pub.Post("/teams", h.PostTeam)
	pub.Get("/teams", h.GetTeams)
	pub.Get("/teams/:id", h.GetTeam)
	pub.Post("/players", h.PostPlayer)
	pub.Get("/players", h.GetPlayers)
	pub.Get("/players/:id", h.GetPlayer)
	pub.Post("/events", h.PostEvent)
	pub.Get("/events", h.GetEvents)
	pub.Get("/schedule", h.GetSchedule)
	pub.Post("/schedule/request", h.PostScheduleRequest)
	pub.Get("/locations", h.GetLocations)
	pub.Get("/coaches", h.GetCoaches)
	pub.Get("/board-members", h.GetBoardMembers)

	authed := app.Group("/", middleware.Authenticate(log, tokens))

	me := authed.Group("/auth")
	me.Get("/me", h.GetMe)

	admin := middleware.RequireRole(entities.RoleAdmin)
	board := middleware.RequireRole(entities.RoleBoardMember)
	fundraising := middleware.RequireAnyRole(entities.RoleAdmin, entities.RoleFundraisingCoordinator)

	users := me.Group("/users", admin)
	users.Get("/", h.GetUsers)
	users.Post("/", h.PostUser)
	users.Delete("/:id", h.DeleteUser)

	priv := authed.Group("/api")

	priv.Get("/inventory", h.GetInventory)
	priv.Get("/inventory/:id", h.GetInventoryItem)
	priv.Post("/inventory", admin, h.PostInventoryItem)
	priv.Put("/inventory/:id", admin, h.PutInventoryItem)
	priv.Delete("/inventory/:id", admin, h.DeleteInventoryItem)

	priv.Post("/board-members", admin, h.PostBoardMember)
	priv.Put("/board-members/:id", admin, h.PutBoardMember)
	priv.Delete("/board-members/:id", admin, h.DeleteBoardMember)

	priv.Post("/coaches", admin, h.PostCoach)
	priv.Put("/coaches/:id", admin, h.PutCoach)
	priv.Delete("/coaches/:id", admin, h.DeleteCoach)

	priv.Post("/locations", admin, h.PostLocation)
	priv.Delete("/locations/:id", admin, h.DeleteLocation)

	priv.Put("/teams/:id", admin, h.PutTeam)
	priv.Delete("/teams/:id", admin, h.DeleteTeam)

	priv.Post("/schedule", board, h.PostScheduleEvent)
	priv.Put("/schedule/:id", board, h.PutScheduleEvent)
	priv.Delete("/schedule/:id", board, h.DeleteScheduleEvent)

	priv.Get("/donations", fundraising, h.GetDonations)
	priv.Get("/donations/summary", fundraising, h.GetDonationSummary)
	priv.Post("/donations", fundraising, h.PostDonation)
	priv.Put("/donations/:id", fundraising, h.PutDonation)
	priv.Delete("/donations/:id", fundraising, h.DeleteDonation)

	priv.Get("/sponsorship/sheets", fundraising, h.GetSheets)
	priv.Get("/sponsorship/sheets/:name", fundraising, h.GetSheet)
	priv.Put("/sponsorship/sheets/:name", fundraising, h.PutSheet)

	priv.Get("/activity", admin, h.GetActivity)
}
