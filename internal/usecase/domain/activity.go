package domain

import (
	"context"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"github.com/google/uuid"
)

// LogActivity appends an audit entry without failing the calling operation.
func (u *Usecase) LogActivity(ctx context.Context, actorEmail, action, entityType, entityID string, detail *string) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	entry := entities.ActivityEntry{
		ID:         uuid.NewString(),
		ActorEmail: actorEmail,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Detail:     detail,
	}
	if err := u.repo.AppendActivity(ctx, entry); err != nil {
		u.log.Errorw("failed to append activity", "error", err, "action", action, "entity_type", entityType)
	}
}

// Activity returns the newest audit entries.
func (u *Usecase) Activity(ctx context.Context, limit int) ([]entities.ActivityEntry, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if limit <= 0 || limit > 500 {
		return nil, fmt.Errorf("%w: limit must be between 1 and 500", entities.ErrInvalidArgument)
	}
	return u.repo.ListActivity(ctx, limit)
}
