package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertScheduleQuery = `
INSERT INTO schedule_events(title, event_date, event_time, event_type, location, team_id, coach_id, notes, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
RETURNING id`
	updateScheduleQuery = `
UPDATE schedule_events
SET title=$2, event_date=$3, event_time=$4, event_type=$5, location=$6, team_id=$7, coach_id=$8, notes=$9, status=$10
WHERE id=$1
RETURNING id`
	deleteScheduleQuery = `DELETE FROM schedule_events WHERE id=$1`
)

// CreateScheduleEvent inserts a calendar entry or a pending request.
func (p *Postgres) CreateScheduleEvent(ctx context.Context, e entities.ScheduleEvent) (*entities.ScheduleEvent, error) {
	err := p.db.QueryRow(ctx, insertScheduleQuery,
		e.Title, e.EventDate, e.EventTime, e.EventType, e.Location, e.TeamID, e.CoachID, e.Notes, e.Status).
		Scan(&e.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, entities.ErrTeamNotFound
		}
		p.log.Errorw("failed to insert schedule event", "error", err, "title", e.Title)
		return nil, fmt.Errorf("insert schedule event: %w", err)
	}

	p.log.Infow("schedule event created", "id", e.ID, "status", e.Status)
	return &e, nil
}

// ListScheduleEvents returns calendar entries filtered by date, type and status.
func (p *Postgres) ListScheduleEvents(ctx context.Context, filter entities.ScheduleFilter) ([]entities.ScheduleEvent, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, title, event_date, event_time, event_type, location, team_id, coach_id, notes, status
FROM schedule_events`)

	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)
	if filter.Date != nil {
		args = append(args, *filter.Date)
		conds = append(conds, fmt.Sprintf("event_date=$%d", len(args)))
	}
	if filter.EventType != nil {
		args = append(args, *filter.EventType)
		conds = append(conds, fmt.Sprintf("event_type=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status=$%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY event_date, event_time")

	rows, err := p.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list schedule: %w", err)
	}
	defer rows.Close()

	events := make([]entities.ScheduleEvent, 0)
	for rows.Next() {
		var e entities.ScheduleEvent
		if err := rows.Scan(&e.ID, &e.Title, &e.EventDate, &e.EventTime, &e.EventType,
			&e.Location, &e.TeamID, &e.CoachID, &e.Notes, &e.Status); err != nil {
			return nil, fmt.Errorf("scan schedule event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule: %w", err)
	}

	return events, nil
}

// UpdateScheduleEvent replaces a calendar entry, including status transitions
// from pending to approved.
func (p *Postgres) UpdateScheduleEvent(ctx context.Context, e entities.ScheduleEvent) (*entities.ScheduleEvent, error) {
	err := p.db.QueryRow(ctx, updateScheduleQuery,
		e.ID, e.Title, e.EventDate, e.EventTime, e.EventType, e.Location, e.TeamID, e.CoachID, e.Notes, e.Status).
		Scan(&e.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrScheduleEventNotFound
		}
		p.log.Errorw("failed to update schedule event", "error", err, "id", e.ID)
		return nil, fmt.Errorf("update schedule event: %w", err)
	}
	return &e, nil
}

// DeleteScheduleEvent removes a calendar entry by id.
func (p *Postgres) DeleteScheduleEvent(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteScheduleQuery, id)
	if err != nil {
		return fmt.Errorf("delete schedule event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrScheduleEventNotFound
	}
	p.log.Infow("schedule event deleted", "id", id)
	return nil
}
