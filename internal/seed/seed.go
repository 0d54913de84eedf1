// Package seed loads the initial league roster and admin accounts.
// Every seeder is idempotent: a table that already holds rows is left alone.
package seed

import (
	"context"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"
	"github.com/josefahaz/bucksportbaseball/internal/importer"
	"github.com/josefahaz/bucksportbaseball/internal/repository"

	"go.uber.org/zap"
)

type Seeder struct {
	log  *zap.SugaredLogger
	repo repository.Repository
}

func New(log *zap.SugaredLogger, repo repository.Repository) *Seeder {
	return &Seeder{log: log.Named("seed"), repo: repo}
}

// Run seeds users, board members, coaches, locations and inventory.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := s.seedBoardMembers(ctx); err != nil {
		return fmt.Errorf("seed board members: %w", err)
	}
	if err := s.seedCoaches(ctx); err != nil {
		return fmt.Errorf("seed coaches: %w", err)
	}
	if err := s.seedLocations(ctx); err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}
	if err := s.seedInventory(ctx); err != nil {
		return fmt.Errorf("seed inventory: %w", err)
	}
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	existing, err := s.repo.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.log.Infow("users already present, skipping", "count", len(existing))
		return nil
	}

	for _, u := range seedUsers {
		if _, err := s.repo.CreateUser(ctx, u); err != nil {
			return fmt.Errorf("create user %s: %w", u.Email, err)
		}
	}
	s.log.Infow("users seeded", "count", len(seedUsers))
	return nil
}

func (s *Seeder) seedBoardMembers(ctx context.Context) error {
	existing, err := s.repo.ListBoardMembers(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.log.Infow("board members already present, skipping", "count", len(existing))
		return nil
	}

	for _, m := range seedBoardMembers {
		if _, err := s.repo.CreateBoardMember(ctx, m); err != nil {
			return fmt.Errorf("create board member %s: %w", m.Name, err)
		}
	}
	s.log.Infow("board members seeded", "count", len(seedBoardMembers))
	return nil
}

func (s *Seeder) seedCoaches(ctx context.Context) error {
	existing, err := s.repo.ListCoaches(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.log.Infow("coaches already present, skipping", "count", len(existing))
		return nil
	}

	for _, c := range seedCoaches {
		if _, err := s.repo.CreateCoach(ctx, c); err != nil {
			return fmt.Errorf("create coach %s: %w", c.Name, err)
		}
	}
	s.log.Infow("coaches seeded", "count", len(seedCoaches))
	return nil
}

func (s *Seeder) seedLocations(ctx context.Context) error {
	existing, err := s.repo.ListLocations(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.log.Infow("locations already present, skipping", "count", len(existing))
		return nil
	}

	for _, name := range seedLocations {
		if _, err := s.repo.CreateLocation(ctx, entities.Location{Name: name}); err != nil {
			return fmt.Errorf("create location %s: %w", name, err)
		}
	}
	s.log.Infow("locations seeded", "count", len(seedLocations))
	return nil
}

func (s *Seeder) seedInventory(ctx context.Context) error {
	existing, err := s.repo.ListItems(ctx, entities.InventoryFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		s.log.Infow("inventory already present, skipping", "count", len(existing))
		return nil
	}

	for _, it := range seedInventory {
		notes := ""
		if it.Notes != nil {
			notes = *it.Notes
		}
		division := importer.InferDivision(it.ItemName, it.Category, notes)
		it.Division = &division
		if _, err := s.repo.CreateItem(ctx, it); err != nil {
			return fmt.Errorf("create item %s: %w", it.ItemName, err)
		}
	}
	s.log.Infow("inventory seeded", "count", len(seedInventory))
	return nil
}
