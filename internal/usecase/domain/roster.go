package domain

import (
	"context"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"
)

// AddBoardMember records a board member.
func (u *Usecase) AddBoardMember(ctx context.Context, m entities.BoardMember) (*entities.BoardMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if m.Name == "" || m.Position == "" {
		u.log.Errorw("failed to add board member: missing name or position")
		return nil, fmt.Errorf("%w: name and position are required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateBoardMember(ctx, m)
}

// BoardMembers lists the board roster.
func (u *Usecase) BoardMembers(ctx context.Context) ([]entities.BoardMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListBoardMembers(ctx)
}

// UpdateBoardMember replaces a board member's fields.
func (u *Usecase) UpdateBoardMember(ctx context.Context, m entities.BoardMember) (*entities.BoardMember, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if m.ID <= 0 {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	if m.Name == "" || m.Position == "" {
		return nil, fmt.Errorf("%w: name and position are required", entities.ErrInvalidArgument)
	}
	return u.repo.UpdateBoardMember(ctx, m)
}

// RemoveBoardMember deletes a board member.
func (u *Usecase) RemoveBoardMember(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteBoardMember(ctx, id)
}

// AddCoach records a coach.
func (u *Usecase) AddCoach(ctx context.Context, c entities.Coach) (*entities.Coach, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if c.Name == "" {
		u.log.Errorw("failed to add coach: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if err := validDivision(c.Division); err != nil {
		return nil, err
	}
	return u.repo.CreateCoach(ctx, c)
}

// Coaches lists the coaching roster.
func (u *Usecase) Coaches(ctx context.Context) ([]entities.Coach, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListCoaches(ctx)
}

// UpdateCoach replaces a coach's fields.
func (u *Usecase) UpdateCoach(ctx context.Context, c entities.Coach) (*entities.Coach, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if c.ID <= 0 {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	if c.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if err := validDivision(c.Division); err != nil {
		return nil, err
	}
	return u.repo.UpdateCoach(ctx, c)
}

// RemoveCoach deletes a coach.
func (u *Usecase) RemoveCoach(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteCoach(ctx, id)
}

// AddLocation records a field or venue.
func (u *Usecase) AddLocation(ctx context.Context, l entities.Location) (*entities.Location, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if l.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	return u.repo.CreateLocation(ctx, l)
}

// Locations lists known fields and venues.
func (u *Usecase) Locations(ctx context.Context) ([]entities.Location, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListLocations(ctx)
}

// RemoveLocation deletes a location.
func (u *Usecase) RemoveLocation(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteLocation(ctx, id)
}
