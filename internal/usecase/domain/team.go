// Package domain contains application Usecases orchestrating league administration logic.
package domain

import (
	"context"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"
)

// CreateTeam registers a new team.
func (u *Usecase) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if team.Name == "" {
		u.log.Errorw("failed to create team: missing name")
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if err := validDivision(team.Division); err != nil {
		return nil, err
	}
	return u.repo.CreateTeam(ctx, team)
}

// Team returns one team by id.
func (u *Usecase) Team(ctx context.Context, id int64) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetTeam(ctx, id)
}

// Teams lists all registered teams.
func (u *Usecase) Teams(ctx context.Context) ([]entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListTeams(ctx)
}

// UpdateTeam replaces a team's fields.
func (u *Usecase) UpdateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if team.ID <= 0 {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	if team.Name == "" {
		return nil, fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if err := validDivision(team.Division); err != nil {
		return nil, err
	}
	return u.repo.UpdateTeam(ctx, team)
}

// DeleteTeam removes a team.
func (u *Usecase) DeleteTeam(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteTeam(ctx, id)
}

func validDivision(division *string) error {
	if division == nil || *division == "" {
		return nil
	}
	switch entities.Division(*division) {
	case entities.DivisionBaseball, entities.DivisionSoftball, entities.DivisionShared:
		return nil
	}
	return fmt.Errorf("%w: unknown division %q", entities.ErrInvalidArgument, *division)
}
