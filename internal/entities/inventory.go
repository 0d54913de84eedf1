// Package entities contains core business entities.
package entities

import "time"

// Valid inventory item categories.
const (
	CategoryJersey = "jersey"
	CategoryPants  = "pants"
	CategoryHat    = "hat"
	CategoryCleats = "cleats"
	CategoryBat    = "bat"
	CategoryBall   = "ball"
	CategoryGlove  = "glove"
	CategoryHelmet = "helmet"
	CategoryOther  = "other"
)

// Inventory item statuses.
const (
	StatusAvailable   = "Available"
	StatusCheckedOut  = "Checked Out"
	StatusNeedsRepair = "Needs Repair"
	StatusRetired     = "Retired"
)

// Categories lists every valid inventory category.
var Categories = []string{
	CategoryJersey, CategoryPants, CategoryHat, CategoryCleats,
	CategoryBat, CategoryBall, CategoryGlove, CategoryHelmet, CategoryOther,
}

// ValidCategory reports whether c is a known inventory category.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// InventoryItem is a tracked piece of league equipment.
type InventoryItem struct {
	ID            int64
	ItemName      string
	Category      string
	Size          *string
	Team          *string
	AssignedCoach string
	Division      *string
	Quantity      int
	Status        string
	Notes         *string
	LastUpdated   time.Time
}

// InventoryFilter limits inventory listings.
type InventoryFilter struct {
	Category *string
	Division *string
	Status   *string
}
