package domain

import (
	"context"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"
)

// AddItem records a new equipment item.
func (u *Usecase) AddItem(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateItem(item); err != nil {
		u.log.Errorw("failed to add inventory item", "error", err)
		return nil, err
	}
	return u.repo.CreateItem(ctx, item)
}

// Item returns one equipment item by id.
func (u *Usecase) Item(ctx context.Context, id int64) (*entities.InventoryItem, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetItem(ctx, id)
}

// Items lists equipment filtered by category, division or status.
func (u *Usecase) Items(ctx context.Context, filter entities.InventoryFilter) ([]entities.InventoryItem, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if filter.Category != nil && !entities.ValidCategory(*filter.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", entities.ErrInvalidArgument, *filter.Category)
	}
	return u.repo.ListItems(ctx, filter)
}

// UpdateItem replaces an equipment item's fields.
func (u *Usecase) UpdateItem(ctx context.Context, item entities.InventoryItem) (*entities.InventoryItem, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if item.ID <= 0 {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}
	return u.repo.UpdateItem(ctx, item)
}

// RemoveItem deletes an equipment item.
func (u *Usecase) RemoveItem(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteItem(ctx, id)
}

func validateItem(item entities.InventoryItem) error {
	if item.ItemName == "" {
		return fmt.Errorf("%w: item_name is required", entities.ErrInvalidArgument)
	}
	if !entities.ValidCategory(item.Category) {
		return fmt.Errorf("%w: unknown category %q", entities.ErrInvalidArgument, item.Category)
	}
	if item.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", entities.ErrInvalidArgument)
	}
	return validDivision(item.Division)
}
