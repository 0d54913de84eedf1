// Package entities contains core business entities.
package entities

import "time"

// ActivityEntry records one authenticated mutation for the audit trail.
type ActivityEntry struct {
	ID         string
	ActorEmail string
	Action     string
	EntityType string
	EntityID   string
	Detail     *string
	CreatedAt  time.Time
}
