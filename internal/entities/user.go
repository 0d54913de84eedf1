// Package entities contains core business entities.
package entities

import "time"

// Role names, ordered by privilege.
const (
	RoleAdmin                  = "admin"
	RoleFundraisingCoordinator = "fundraising_coordinator"
	RoleBoardMember            = "board_member"
	RoleViewer                 = "viewer"
)

var roleRank = map[string]int{
	RoleViewer:                 0,
	RoleBoardMember:            1,
	RoleFundraisingCoordinator: 2,
	RoleAdmin:                  3,
}

// ValidRole reports whether r is a known role.
func ValidRole(r string) bool {
	_, ok := roleRank[r]
	return ok
}

// RoleAtLeast reports whether role carries at least the privilege of min.
// Fundraising duties are granted to coordinators and admins only; the rank
// order is viewer < board_member < fundraising_coordinator < admin.
func RoleAtLeast(role, min string) bool {
	return roleRank[role] >= roleRank[min]
}

// User is a provisioned admin-site account. Accounts are created by an admin
// before the owner can sign in with Google.
type User struct {
	ID        int64
	Email     string
	FirstName string
	LastName  string
	Role      string
	GoogleID  *string
	IsActive  bool
	CreatedAt time.Time
	LastLogin *time.Time
}
