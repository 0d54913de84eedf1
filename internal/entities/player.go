// Package entities contains core business entities.
package entities

import "time"

// Player is a registered league player.
type Player struct {
	ID        int64
	FirstName string
	LastName  string
	Birthdate time.Time
	Email     string
	Phone     string
	TeamID    *int64
}
