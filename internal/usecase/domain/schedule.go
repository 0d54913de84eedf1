package domain

import (
	"context"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"
)

// RequestScheduleEvent files a calendar request awaiting approval.
func (u *Usecase) RequestScheduleEvent(ctx context.Context, e entities.ScheduleEvent) (*entities.ScheduleEvent, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateScheduleEvent(e); err != nil {
		u.log.Errorw("failed to request schedule event", "error", err)
		return nil, err
	}
	e.Status = entities.SchedulePending
	return u.repo.CreateScheduleEvent(ctx, e)
}

// CreateScheduleEvent puts an approved event straight on the calendar.
func (u *Usecase) CreateScheduleEvent(ctx context.Context, e entities.ScheduleEvent) (*entities.ScheduleEvent, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateScheduleEvent(e); err != nil {
		u.log.Errorw("failed to create schedule event", "error", err)
		return nil, err
	}
	e.Status = entities.ScheduleApproved
	return u.repo.CreateScheduleEvent(ctx, e)
}

// ScheduleEvents lists calendar entries with optional filters.
func (u *Usecase) ScheduleEvents(ctx context.Context, filter entities.ScheduleFilter) ([]entities.ScheduleEvent, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListScheduleEvents(ctx, filter)
}

// UpdateScheduleEvent replaces a calendar entry, including approval of pending requests.
func (u *Usecase) UpdateScheduleEvent(ctx context.Context, e entities.ScheduleEvent) (*entities.ScheduleEvent, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if e.ID <= 0 {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	if err := validateScheduleEvent(e); err != nil {
		return nil, err
	}
	switch e.Status {
	case entities.SchedulePending, entities.ScheduleApproved:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", entities.ErrInvalidArgument, e.Status)
	}
	return u.repo.UpdateScheduleEvent(ctx, e)
}

// DeleteScheduleEvent removes a calendar entry.
func (u *Usecase) DeleteScheduleEvent(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteScheduleEvent(ctx, id)
}

func validateScheduleEvent(e entities.ScheduleEvent) error {
	if e.Title == "" {
		return fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if e.EventDate.IsZero() {
		return fmt.Errorf("%w: event_date is required", entities.ErrInvalidArgument)
	}
	if e.EventType == "" {
		return fmt.Errorf("%w: event_type is required", entities.ErrInvalidArgument)
	}
	return nil
}
