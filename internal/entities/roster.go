// Package entities contains core business entities.
package entities

// BoardMember is a league board position holder. Division is nil for
// league-wide positions.
type BoardMember struct {
	ID       int64
	Name     string
	Position string
	Division *string
	Email    string
	Phone    string
}

// Coach is a team coach roster entry.
type Coach struct {
	ID       int64
	Name     string
	Email    string
	Phone    string
	TeamName *string
	Division *string
}

// Location is a named field or venue.
type Location struct {
	ID   int64
	Name string
}
