// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrTeamExists signals team name conflict.
	ErrTeamExists = errors.New("team exists")
	// ErrTeamNotFound signals missing team.
	ErrTeamNotFound = errors.New("team not found")
	// ErrPlayerNotFound signals missing player.
	ErrPlayerNotFound = errors.New("player not found")
	// ErrEmailTaken signals a player email already registered.
	ErrEmailTaken = errors.New("email taken")
	// ErrEventNotFound signals missing event.
	ErrEventNotFound = errors.New("event not found")
	// ErrItemNotFound signals missing inventory item.
	ErrItemNotFound = errors.New("inventory item not found")
	// ErrBoardMemberNotFound signals missing board member.
	ErrBoardMemberNotFound = errors.New("board member not found")
	// ErrCoachNotFound signals missing coach.
	ErrCoachNotFound = errors.New("coach not found")
	// ErrLocationExists signals location name conflict.
	ErrLocationExists = errors.New("location exists")
	// ErrLocationNotFound signals missing location.
	ErrLocationNotFound = errors.New("location not found")
	// ErrScheduleEventNotFound signals missing schedule event.
	ErrScheduleEventNotFound = errors.New("schedule event not found")
	// ErrDonationNotFound signals missing donation.
	ErrDonationNotFound = errors.New("donation not found")
	// ErrSheetNotFound signals missing sponsorship sheet.
	ErrSheetNotFound = errors.New("sponsorship sheet not found")
	// ErrUserNotFound signals missing user.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists signals user email conflict.
	ErrUserExists = errors.New("user exists")
	// ErrUserNotAuthorized signals a valid Google account with no provisioned user.
	ErrUserNotAuthorized = errors.New("user not authorized")
	// ErrDomainNotAllowed signals an email outside the league domain.
	ErrDomainNotAllowed = errors.New("email domain not allowed")
	// ErrInvalidToken signals a token that failed verification.
	ErrInvalidToken = errors.New("invalid token")
	// ErrForbidden signals insufficient role for the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrSelfDelete signals an attempt to delete one's own account.
	ErrSelfDelete = errors.New("cannot delete own account")
)
