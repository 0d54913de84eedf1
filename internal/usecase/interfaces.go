package usecase

import (
	"context"

	"github.com/josefahaz/bucksportbaseball/internal/entities"
)

// AuthUsecaseInterface abstracts sign-in and session handling for the delivery layer.
type AuthUsecaseInterface interface {
	GoogleLogin(ctx context.Context, idToken string) (*entities.LoginSession, error)
	CurrentUser(ctx context.Context, email string) (*entities.User, error)
}

// UserUsecaseInterface abstracts admin account management.
type UserUsecaseInterface interface {
	Users(ctx context.Context) ([]entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	DeleteUser(ctx context.Context, actorEmail string, id int64) error
}

// TeamUsecaseInterface abstracts team-related operations.
type TeamUsecaseInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	Team(ctx context.Context, id int64) (*entities.Team, error)
	Teams(ctx context.Context) ([]entities.Team, error)
	UpdateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
}

// PlayerUsecaseInterface abstracts player registration.
type PlayerUsecaseInterface interface {
	RegisterPlayer(ctx context.Context, p entities.Player) (*entities.Player, error)
	Player(ctx context.Context, id int64) (*entities.Player, error)
	Players(ctx context.Context) ([]entities.Player, error)
}

// EventUsecaseInterface abstracts league event registration.
type EventUsecaseInterface interface {
	CreateEvent(ctx context.Context, e entities.Event) (*entities.Event, error)
	Events(ctx context.Context, teamID *int64) ([]entities.Event, error)
}

// InventoryUsecaseInterface abstracts equipment tracking.
type InventoryUsecaseInterface interface {
	AddItem(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error)
	Item(ctx context.Context, id int64) (*entities.InventoryItem, error)
	Items(ctx context.Context, filter entities.InventoryFilter) ([]entities.InventoryItem, error)
	UpdateItem(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error)
	RemoveItem(ctx context.Context, id int64) error
}

// RosterUsecaseInterface abstracts board, coach and location rosters.
type RosterUsecaseInterface interface {
	AddBoardMember(ctx context.Context, m entities.BoardMember) (*entities.BoardMember, error)
	BoardMembers(ctx context.Context) ([]entities.BoardMember, error)
	UpdateBoardMember(ctx context.Context, m entities.BoardMember) (*entities.BoardMember, error)
	RemoveBoardMember(ctx context.Context, id int64) error

	AddCoach(ctx context.Context, c entities.Coach) (*entities.Coach, error)
	Coaches(ctx context.Context) ([]entities.Coach, error)
	UpdateCoach(ctx context.Context, c entities.Coach) (*entities.Coach, error)
	RemoveCoach(ctx context.Context, id int64) error

	AddLocation(ctx context.Context, l entities.Location) (*entities.Location, error)
	Locations(ctx context.Context) ([]entities.Location, error)
	RemoveLocation(ctx context.Context, id int64) error
}

// ScheduleUsecaseInterface abstracts the shared calendar.
type ScheduleUsecaseInterface interface {
	RequestScheduleEvent(ctx context.Context, e entities.ScheduleEvent) (*entities.ScheduleEvent, error)
	CreateScheduleEvent(ctx context.Context, e entities.ScheduleEvent) (*entities.ScheduleEvent, error)
	ScheduleEvents(ctx context.Context, filter entities.ScheduleFilter) ([]entities.ScheduleEvent, error)
	UpdateScheduleEvent(ctx context.Context, e entities.ScheduleEvent) (*entities.ScheduleEvent, error)
	DeleteScheduleEvent(ctx context.Context, id int64) error
}

// DonationUsecaseInterface abstracts donation bookkeeping.
type DonationUsecaseInterface interface {
	RecordDonation(ctx context.Context, d entities.Donation) (*entities.Donation, error)
	Donations(ctx context.Context, filter entities.DonationFilter) ([]entities.Donation, error)
	UpdateDonation(ctx context.Context, d entities.Donation) (*entities.Donation, error)
	DeleteDonation(ctx context.Context, id int64) error
	DonationSummary(ctx context.Context) ([]entities.DonationYearSummary, error)
}

// SponsorshipUsecaseInterface abstracts imported sponsorship sheets.
type SponsorshipUsecaseInterface interface {
	Sheets(ctx context.Context) ([]entities.SponsorshipSheet, error)
	Sheet(ctx context.Context, name string) (*entities.SponsorshipSheet, []entities.SponsorshipRow, error)
	ReplaceSheet(ctx context.Context, sheet entities.SponsorshipSheet, rows []entities.SponsorshipRow) (int, error)
}

// ActivityUsecaseInterface abstracts the audit trail.
type ActivityUsecaseInterface interface {
	LogActivity(ctx context.Context, actorEmail, action, entityType, entityID string, detail *string)
	Activity(ctx context.Context, limit int) ([]entities.ActivityEntry, error)
}
