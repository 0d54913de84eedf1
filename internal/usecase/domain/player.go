package domain

import (
	"context"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"
)

// RegisterPlayer records a player registration.
func (u *Usecase) RegisterPlayer(ctx context.Context, p entities.Player) (*entities.Player, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if p.FirstName == "" || p.LastName == "" {
		u.log.Errorw("failed to register player: missing name")
		return nil, fmt.Errorf("%w: first_name and last_name are required", entities.ErrInvalidArgument)
	}
	if p.Email == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	if p.Birthdate.IsZero() {
		return nil, fmt.Errorf("%w: birthdate is required", entities.ErrInvalidArgument)
	}
	return u.repo.CreatePlayer(ctx, p)
}

// Player returns one registered player by id.
func (u *Usecase) Player(ctx context.Context, id int64) (*entities.Player, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetPlayer(ctx, id)
}

// Players lists all registered players.
func (u *Usecase) Players(ctx context.Context) ([]entities.Player, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListPlayers(ctx)
}
