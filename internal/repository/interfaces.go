// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/josefahaz/bucksportbaseball/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// TeamInterface exposes team operations.
type TeamInterface interface {
	CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	GetTeam(ctx context.Context, id int64) (*entities.Team, error)
	ListTeams(ctx context.Context) ([]entities.Team, error)
	UpdateTeam(ctx context.Context, team entities.Team) (*entities.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
}

// PlayerInterface exposes player registration operations.
type PlayerInterface interface {
	CreatePlayer(ctx context.Context, p entities.Player) (*entities.Player, error)
	GetPlayer(ctx context.Context, id int64) (*entities.Player, error)
	ListPlayers(ctx context.Context) ([]entities.Player, error)
}

// EventInterface exposes event operations.
type EventInterface interface {
	CreateEvent(ctx context.Context, e entities.Event) (*entities.Event, error)
	ListEvents(ctx context.Context, teamID *int64) ([]entities.Event, error)
}

// InventoryInterface exposes equipment inventory operations.
type InventoryInterface interface {
	CreateItem(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error)
	GetItem(ctx context.Context, id int64) (*entities.InventoryItem, error)
	ListItems(ctx context.Context, filter entities.InventoryFilter) ([]entities.InventoryItem, error)
	UpdateItem(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error)
	DeleteItem(ctx context.Context, id int64) error
	ReplaceItems(ctx context.Context, items []entities.InventoryItem) (int, error)
}

// RosterInterface exposes board member, coach and location operations.
type RosterInterface interface {
	CreateBoardMember(ctx context.Context, m entities.BoardMember) (*entities.BoardMember, error)
	ListBoardMembers(ctx context.Context) ([]entities.BoardMember, error)
	UpdateBoardMember(ctx context.Context, m entities.BoardMember) (*entities.BoardMember, error)
	DeleteBoardMember(ctx context.Context, id int64) error

	CreateCoach(ctx context.Context, c entities.Coach) (*entities.Coach, error)
	ListCoaches(ctx context.Context) ([]entities.Coach, error)
	UpdateCoach(ctx context.Context, c entities.Coach) (*entities.Coach, error)
	DeleteCoach(ctx context.Context, id int64) error

	CreateLocation(ctx context.Context, l entities.Location) (*entities.Location, error)
	ListLocations(ctx context.Context) ([]entities.Location, error)
	DeleteLocation(ctx context.Context, id int64) error
}

// ScheduleInterface exposes calendar operations.
type ScheduleInterface interface {
	CreateScheduleEvent(ctx context.Context, e entities.ScheduleEvent) (*entities.ScheduleEvent, error)
	ListScheduleEvents(ctx context.Context, filter entities.ScheduleFilter) ([]entities.ScheduleEvent, error)
	UpdateScheduleEvent(ctx context.Context, e entities.ScheduleEvent) (*entities.ScheduleEvent, error)
	DeleteScheduleEvent(ctx context.Context, id int64) error
}

// DonationInterface exposes donation bookkeeping operations.
type DonationInterface interface {
	CreateDonation(ctx context.Context, d entities.Donation) (*entities.Donation, error)
	ListDonations(ctx context.Context, filter entities.DonationFilter) ([]entities.Donation, error)
	UpdateDonation(ctx context.Context, d entities.Donation) (*entities.Donation, error)
	DeleteDonation(ctx context.Context, id int64) error
	DonationSummary(ctx context.Context) ([]entities.DonationYearSummary, error)
	ReplaceDonations(ctx context.Context, donations []entities.Donation) (int, error)
}

// SponsorshipInterface exposes generic sponsorship sheet storage.
type SponsorshipInterface interface {
	ListSheets(ctx context.Context) ([]entities.SponsorshipSheet, error)
	GetSheet(ctx context.Context, name string) (*entities.SponsorshipSheet, []entities.SponsorshipRow, error)
	ReplaceSheet(ctx context.Context, sheet entities.SponsorshipSheet, rows []entities.SponsorshipRow) (int, error)
}

// UserInterface exposes admin account operations.
type UserInterface interface {
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
	CreateUser(ctx context.Context, u entities.User) (*entities.User, error)
	DeleteUser(ctx context.Context, id int64) error
	RecordLogin(ctx context.Context, id int64, googleID string) (*entities.User, error)
}

// ActivityInterface exposes the audit trail.
type ActivityInterface interface {
	AppendActivity(ctx context.Context, e entities.ActivityEntry) error
	ListActivity(ctx context.Context, limit int) ([]entities.ActivityEntry, error)
}
