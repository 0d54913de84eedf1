package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertEventQuery = `
INSERT INTO events(title, description, start_time, end_time, location, team_id)
VALUES ($1,$2,$3,$4,$5,$6)
RETURNING id`
	listEventsQuery = `SELECT id, title, description, start_time, end_time, location, team_id FROM events ORDER BY start_time`
	listTeamEvents  = `SELECT id, title, description, start_time, end_time, location, team_id FROM events WHERE team_id=$1 ORDER BY start_time`
)

// CreateEvent inserts a calendar event.
func (p *Postgres) CreateEvent(ctx context.Context, e entities.Event) (*entities.Event, error) {
	err := p.db.QueryRow(ctx, insertEventQuery,
		e.Title, e.Description, e.StartTime, e.EndTime, e.Location, e.TeamID).Scan(&e.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrTeamNotFound
		}
		p.log.Errorw("failed to insert event", "error", err, "title", e.Title)
		return nil, fmt.Errorf("insert event: %w", err)
	}

	p.log.Infow("event created", "event_id", e.ID, "title", e.Title)
	return &e, nil
}

// ListEvents returns events ordered by start time, optionally for one team.
func (p *Postgres) ListEvents(ctx context.Context, teamID *int64) ([]entities.Event, error) {
	query := listEventsQuery
	args := []any{}
	if teamID != nil {
		query = listTeamEvents
		args = append(args, *teamID)
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	events := make([]entities.Event, 0)
	for rows.Next() {
		var e entities.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.StartTime, &e.EndTime, &e.Location, &e.TeamID); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return events, nil
}
