package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/josefahaz/bucksportbaseball/internal/entities"

	"github.com/jackc/pgx/v5"
)

const (
	insertItemQuery = `
INSERT INTO inventory_items(item_name, category, size, team, assigned_coach, division, quantity, status, notes, last_updated)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW())
RETURNING id, last_updated`
	selectItemQuery = `
SELECT id, item_name, category, size, team, assigned_coach, division, quantity, status, notes, last_updated
FROM inventory_items WHERE id=$1`
	updateItemQuery = `
UPDATE inventory_items
SET item_name=$2, category=$3, size=$4, team=$5, assigned_coach=$6, division=$7, quantity=$8, status=$9, notes=$10, last_updated=NOW()
WHERE id=$1
RETURNING last_updated`
	deleteItemQuery = `DELETE FROM inventory_items WHERE id=$1`
)

// CreateItem inserts an inventory item.
func (p *Postgres) CreateItem(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error) {
	err := p.db.QueryRow(ctx, insertItemQuery,
		item.ItemName, item.Category, item.Size, item.Team, item.AssignedCoach,
		item.Division, item.Quantity, item.Status, item.Notes).
		Scan(&item.ID, &item.LastUpdated)
	if err != nil {
		p.log.Errorw("failed to insert inventory item", "error", err, "item", item.ItemName)
		return nil, fmt.Errorf("insert item: %w", err)
	}

	p.log.Infow("inventory item created", "item_id", item.ID, "item", item.ItemName)
	return &item, nil
}

// GetItem fetches an inventory item by id.
func (p *Postgres) GetItem(ctx context.Context, id int64) (*entities.InventoryItem, error) {
	var item entities.InventoryItem
	err := p.db.QueryRow(ctx, selectItemQuery, id).Scan(
		&item.ID, &item.ItemName, &item.Category, &item.Size, &item.Team,
		&item.AssignedCoach, &item.Division, &item.Quantity, &item.Status,
		&item.Notes, &item.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrItemNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &item, nil
}

// ListItems returns inventory filtered by category, division and status.
func (p *Postgres) ListItems(ctx context.Context, filter entities.InventoryFilter) ([]entities.InventoryItem, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, item_name, category, size, team, assigned_coach, division, quantity, status, notes, last_updated
FROM inventory_items`)

	conds := make([]string, 0, 3)
	args := make([]any, 0, 3)
	if filter.Category != nil {
		args = append(args, *filter.Category)
		conds = append(conds, fmt.Sprintf("category=$%d", len(args)))
	}
	if filter.Division != nil {
		args = append(args, *filter.Division)
		conds = append(conds, fmt.Sprintf("division=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conds = append(conds, fmt.Sprintf("status=$%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY category, item_name")

	rows, err := p.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]entities.InventoryItem, 0)
	for rows.Next() {
		var item entities.InventoryItem
		if err := rows.Scan(&item.ID, &item.ItemName, &item.Category, &item.Size, &item.Team,
			&item.AssignedCoach, &item.Division, &item.Quantity, &item.Status,
			&item.Notes, &item.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return items, nil
}

// UpdateItem replaces mutable fields of an item and bumps last_updated.
func (p *Postgres) UpdateItem(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error) {
	err := p.db.QueryRow(ctx, updateItemQuery,
		item.ID, item.ItemName, item.Category, item.Size, item.Team, item.AssignedCoach,
		item.Division, item.Quantity, item.Status, item.Notes).
		Scan(&item.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrItemNotFound
		}
		p.log.Errorw("failed to update inventory item", "error", err, "item_id", item.ID)
		return nil, fmt.Errorf("update item: %w", err)
	}
	return &item, nil
}

// DeleteItem removes an item by id.
func (p *Postgres) DeleteItem(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteItemQuery, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrItemNotFound
	}
	p.log.Infow("inventory item deleted", "item_id", id)
	return nil
}

// ReplaceItems clears the inventory and inserts the given items in one transaction.
func (p *Postgres) ReplaceItems(ctx context.Context, items []entities.InventoryItem) (int, error) {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM inventory_items`); err != nil {
		return 0, fmt.Errorf("clear items: %w", err)
	}

	for _, item := range items {
		if _, err := tx.Exec(ctx, `
INSERT INTO inventory_items(item_name, category, size, team, assigned_coach, division, quantity, status, notes, last_updated)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW())`,
			item.ItemName, item.Category, item.Size, item.Team, item.AssignedCoach,
			item.Division, item.Quantity, item.Status, item.Notes); err != nil {
			return 0, fmt.Errorf("insert item %q: %w", item.ItemName, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}

	p.log.Infow("inventory replaced", "count", len(items))
	return len(items), nil
}
