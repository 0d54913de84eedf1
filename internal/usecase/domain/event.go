package domain

import (
	"context"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"
)

// CreateEvent records a league event.
func (u *Usecase) CreateEvent(ctx context.Context, e entities.Event) (*entities.Event, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if e.Title == "" {
		u.log.Errorw("failed to create event: missing title")
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if e.StartTime.IsZero() || e.EndTime.IsZero() {
		return nil, fmt.Errorf("%w: start_time and end_time are required", entities.ErrInvalidArgument)
	}
	if !e.EndTime.After(e.StartTime) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", entities.ErrInvalidArgument)
	}
	return u.repo.CreateEvent(ctx, e)
}

// Events lists league events, optionally for one team.
func (u *Usecase) Events(ctx context.Context, teamID *int64) ([]entities.Event, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListEvents(ctx, teamID)
}
