// Package entities contains core business entities.
package entities

// Division classifies rosters, equipment and sponsors within the league.
type Division string

const (
	// DivisionBaseball marks the baseball program.
	DivisionBaseball Division = "Baseball"
	// DivisionSoftball marks the softball program.
	DivisionSoftball Division = "Softball"
	// DivisionShared marks equipment or sponsors used by both programs.
	DivisionShared Division = "Shared"
)

// Team is a league team roster entry.
type Team struct {
	ID       int64
	Name     string
	Division *string
	Coach    *string
}
