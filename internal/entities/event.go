// Package entities contains core business entities.
package entities

import "time"

// Event is a one-off calendar entry tied to an optional team.
type Event struct {
	ID          int64
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	Location    *string
	TeamID      *int64
}
