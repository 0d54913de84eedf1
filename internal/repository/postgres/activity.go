package postgres

import (
	"context"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"
)

const (
	insertActivityQuery = `
INSERT INTO activity_log(id, actor_email, action, entity_type, entity_id, detail)
VALUES ($1,$2,$3,$4,$5,$6)`
	listActivityQuery = `
SELECT id, actor_email, action, entity_type, entity_id, detail, created_at
FROM activity_log
ORDER BY created_at DESC
LIMIT $1`
)

// AppendActivity records one audit trail entry.
func (p *Postgres) AppendActivity(ctx context.Context, e entities.ActivityEntry) error {
	if _, err := p.db.Exec(ctx, insertActivityQuery,
		e.ID, e.ActorEmail, e.Action, e.EntityType, e.EntityID, e.Detail); err != nil {
		p.log.Errorw("failed to append activity", "error", err, "action", e.Action)
		return fmt.Errorf("append activity: %w", err)
	}
	return nil
}

// ListActivity returns the newest audit entries up to limit.
func (p *Postgres) ListActivity(ctx context.Context, limit int) ([]entities.ActivityEntry, error) {
	rows, err := p.db.Query(ctx, listActivityQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("list activity: %w", err)
	}
	defer rows.Close()

	entries := make([]entities.ActivityEntry, 0)
	for rows.Next() {
		var e entities.ActivityEntry
		if err := rows.Scan(&e.ID, &e.ActorEmail, &e.Action, &e.EntityType, &e.EntityID, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activity: %w", err)
	}

	return entries, nil
}
