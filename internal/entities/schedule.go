// Package entities contains core business entities.
package entities

import "time"

// ScheduleStatus enumerates schedule entry approval states.
type ScheduleStatus string

const (
	// SchedulePending marks a public event request awaiting approval.
	SchedulePending ScheduleStatus = "pending"
	// ScheduleApproved marks a published calendar entry.
	ScheduleApproved ScheduleStatus = "approved"
)

// ScheduleEvent is a calendar entry: a game, practice or other activity.
// Public event requests enter as pending and are approved by the board.
type ScheduleEvent struct {
	ID        int64
	Title     string
	EventDate time.Time
	EventTime string
	EventType string
	Location  string
	TeamID    *int64
	CoachID   *int64
	Notes     *string
	Status    ScheduleStatus
}

// ScheduleFilter limits schedule listings.
type ScheduleFilter struct {
	Date      *time.Time
	EventType *string
	Status    *ScheduleStatus
}
