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
	insertTeamQuery = `INSERT INTO teams(name, division, coach) VALUES($1,$2,$3) RETURNING id`
	selectTeamQuery = `SELECT id, name, division, coach FROM teams WHERE id=$1`
	listTeamsQuery  = `SELECT id, name, division, coach FROM teams ORDER BY name`
	updateTeamQuery = `UPDATE teams SET name=$2, division=$3, coach=$4 WHERE id=$1 RETURNING id, name, division, coach`
	deleteTeamQuery = `DELETE FROM teams WHERE id=$1`
)

// CreateTeam inserts a team.
func (p *Postgres) CreateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	if err := p.db.QueryRow(ctx, insertTeamQuery, team.Name, team.Division, team.Coach).Scan(&team.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrTeamExists
		}
		p.log.Errorw("failed to insert team", "error", err, "team", team.Name)
		return nil, fmt.Errorf("insert team: %w", err)
	}

	p.log.Infow("team created", "team_id", team.ID, "name", team.Name)
	return &team, nil
}

// GetTeam fetches a team by id.
func (p *Postgres) GetTeam(ctx context.Context, id int64) (*entities.Team, error) {
	var t entities.Team
	err := p.db.QueryRow(ctx, selectTeamQuery, id).Scan(&t.ID, &t.Name, &t.Division, &t.Coach)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		return nil, fmt.Errorf("get team: %w", err)
	}
	return &t, nil
}

// ListTeams returns all teams ordered by name.
func (p *Postgres) ListTeams(ctx context.Context) ([]entities.Team, error) {
	rows, err := p.db.Query(ctx, listTeamsQuery)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	defer rows.Close()

	teams := make([]entities.Team, 0)
	for rows.Next() {
		var t entities.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Division, &t.Coach); err != nil {
			return nil, fmt.Errorf("scan team: %w", err)
		}
		teams = append(teams, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate teams: %w", err)
	}

	return teams, nil
}

// UpdateTeam replaces mutable fields of a team.
func (p *Postgres) UpdateTeam(ctx context.Context, team entities.Team) (*entities.Team, error) {
	var t entities.Team
	err := p.db.QueryRow(ctx, updateTeamQuery, team.ID, team.Name, team.Division, team.Coach).
		Scan(&t.ID, &t.Name, &t.Division, &t.Coach)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTeamNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrTeamExists
		}
		p.log.Errorw("failed to update team", "error", err, "team_id", team.ID)
		return nil, fmt.Errorf("update team: %w", err)
	}
	return &t, nil
}

// DeleteTeam removes a team by id.
func (p *Postgres) DeleteTeam(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteTeamQuery, id)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTeamNotFound
	}
	p.log.Infow("team deleted", "team_id", id)
	return nil
}
