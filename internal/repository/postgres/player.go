package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertPlayerQuery = `
INSERT INTO players(first_name, last_name, birthdate, email, phone, team_id)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING id`
	selectPlayerQuery = `SELECT id, first_name, last_name, birthdate, email, phone, team_id FROM players WHERE id=$1`
	listPlayersQuery  = `SELECT id, first_name, last_name, birthdate, email, phone, team_id FROM players ORDER BY last_name, first_name`
)

// CreatePlayer registers a player. A duplicate email maps to ErrEmailTaken.
func (p *Postgres) CreatePlayer(ctx context.Context, pl entities.Player) (*entities.Player, error) {
	err := p.db.QueryRow(ctx, insertPlayerQuery,
		pl.FirstName, pl.LastName, pl.Birthdate, pl.Email, pl.Phone, pl.TeamID).Scan(&pl.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrEmailTaken
		}
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrTeamNotFound
		}
		p.log.Errorw("failed to insert player", "error", err, "email", pl.Email)
		return nil, fmt.Errorf("insert player: %w", err)
	}

	p.log.Infow("player registered", "player_id", pl.ID)
	return &pl, nil
}

// GetPlayer fetches a player by id.
func (p *Postgres) GetPlayer(ctx context.Context, id int64) (*entities.Player, error) {
	var pl entities.Player
	err := p.db.QueryRow(ctx, selectPlayerQuery, id).
		Scan(&pl.ID, &pl.FirstName, &pl.LastName, &pl.Birthdate, &pl.Email, &pl.Phone, &pl.TeamID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("get player: %w", err)
	}
	return &pl, nil
}

// ListPlayers returns all registered players.
func (p *Postgres) ListPlayers(ctx context.Context) ([]entities.Player, error) {
	rows, err := p.db.Query(ctx, listPlayersQuery)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	defer rows.Close()

	players := make([]entities.Player, 0)
	for rows.Next() {
		var pl entities.Player
		if err := rows.Scan(&pl.ID, &pl.FirstName, &pl.LastName, &pl.Birthdate, &pl.Email, &pl.Phone, &pl.TeamID); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		players = append(players, pl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate players: %w", err)
	}

	return players, nil
}
