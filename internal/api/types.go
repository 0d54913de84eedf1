// Package api defines the JSON request and response bodies of the HTTP surface.
package api

import "time"

// ErrorCode is a stable machine-readable error identifier.
type ErrorCode string

// Error codes returned in the error body.
const (
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	CodeNotFound        ErrorCode = "NOT_FOUND"
	CodeTeamExists      ErrorCode = "TEAM_EXISTS"
	CodeEmailTaken      ErrorCode = "EMAIL_TAKEN"
	CodeLocationExists  ErrorCode = "LOCATION_EXISTS"
	CodeUserExists      ErrorCode = "USER_EXISTS"
	CodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	CodeForbidden       ErrorCode = "FORBIDDEN"
	CodeSelfDelete      ErrorCode = "SELF_DELETE"
	CodeRateLimited     ErrorCode = "RATE_LIMITED"
	CodeInternal        ErrorCode = "INTERNAL"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the code and human message of a failed request.
type ErrorBody struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Team is the transport shape of a league team.
type Team struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name"`
	Division *string `json:"division,omitempty"`
	Coach    *string `json:"coach,omitempty"`
}

// Player is the transport shape of a player registration.
type Player struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Birthdate string `json:"birthdate"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	TeamID    *int64 `json:"team_id,omitempty"`
}

// Event is the transport shape of a registered league event.
type Event struct {
	ID          int64     `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    *string   `json:"location,omitempty"`
	TeamID      *int64    `json:"team_id,omitempty"`
}

// InventoryItem is the transport shape of an equipment record.
type InventoryItem struct {
	ID            int64     `json:"id,omitempty"`
	ItemName      string    `json:"item_name"`
	Category      string    `json:"category"`
	Size          *string   `json:"size,omitempty"`
	Team          *string   `json:"team,omitempty"`
	Division      *string   `json:"division,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	AssignedCoach string    `json:"assigned_coach,omitempty"`
	Quantity      int       `json:"quantity"`
	Status        string    `json:"status"`
	LastUpdated   time.Time `json:"last_updated,omitempty"`
}

// BoardMember is the transport shape of a board roster entry.
type BoardMember struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Division *string `json:"division,omitempty"`
	Email    string  `json:"email,omitempty"`
	Phone    string  `json:"phone,omitempty"`
}

// Coach is the transport shape of a coaching roster entry.
type Coach struct {
	ID       int64   `json:"id,omitempty"`
	Name     string  `json:"name"`
	Email    string  `json:"email,omitempty"`
	Phone    string  `json:"phone,omitempty"`
	TeamName *string `json:"team_name,omitempty"`
	Division *string `json:"division,omitempty"`
}

// Location is the transport shape of a field or venue.
type Location struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

// ScheduleEvent is the transport shape of a calendar entry.
type ScheduleEvent struct {
	ID        int64   `json:"id,omitempty"`
	Title     string  `json:"title"`
	EventDate string  `json:"event_date"`
	EventTime string  `json:"event_time,omitempty"`
	EventType string  `json:"event_type"`
	Location  string  `json:"location,omitempty"`
	TeamID    *int64  `json:"team_id,omitempty"`
	CoachID   *int64  `json:"coach_id,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	Status    string  `json:"status,omitempty"`
}

// Donation is the transport shape of a donation or sponsorship payment.
type Donation struct {
	ID            int64   `json:"id,omitempty"`
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	DonationType  string  `json:"donation_type"`
	DonatedOn     string  `json:"donated_on"`
	Division      *string `json:"division,omitempty"`
	ContactPerson *string `json:"contact_person,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	Address       *string `json:"address,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

// DonationYearSummary totals donations for one calendar year.
type DonationYearSummary struct {
	Year  int     `json:"year"`
	Count int64   `json:"count"`
	Total float64 `json:"total"`
}

// SheetSummary describes one imported sponsorship sheet.
type SheetSummary struct {
	SheetName string    `json:"sheet_name"`
	Columns   []string  `json:"columns"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Sheet is a full sponsorship sheet with its rows in import order.
type Sheet struct {
	SheetName string           `json:"sheet_name"`
	Columns   []string         `json:"columns"`
	Rows      []map[string]any `json:"rows"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ReplaceSheetRequest carries replacement columns and rows for one sheet.
type ReplaceSheetRequest struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}

// User is the transport shape of an admin site account.
type User struct {
	ID        int64      `json:"id,omitempty"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name,omitempty"`
	LastName  string     `json:"last_name,omitempty"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at,omitempty"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// LoginRequest carries the Google ID token posted by the frontend.
type LoginRequest struct {
	Credential string `json:"credential"`
}

// LoginResponse is the session issued after a successful sign-in.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// ActivityEntry is one audit trail record.
type ActivityEntry struct {
	ID         string    `json:"id"`
	ActorEmail string    `json:"actor_email"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Detail     *string   `json:"detail,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
