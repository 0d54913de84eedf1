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
	insertBoardMemberQuery = `INSERT INTO board_members(name, position, division, email, phone) VALUES ($1,$2,$3,$4,$5) RETURNING id`
	listBoardMembersQuery  = `SELECT id, name, position, division, email, phone FROM board_members ORDER BY division NULLS FIRST, position`
	updateBoardMemberQuery = `UPDATE board_members SET name=$2, position=$3, division=$4, email=$5, phone=$6 WHERE id=$1 RETURNING id`
	deleteBoardMemberQuery = `DELETE FROM board_members WHERE id=$1`

	insertCoachQuery = `INSERT INTO coaches(name, email, phone, team_name, division) VALUES ($1,$2,$3,$4,$5) RETURNING id`
	listCoachesQuery = `SELECT id, name, email, phone, team_name, division FROM coaches ORDER BY name`
	updateCoachQuery = `UPDATE coaches SET name=$2, email=$3, phone=$4, team_name=$5, division=$6 WHERE id=$1 RETURNING id`
	deleteCoachQuery = `DELETE FROM coaches WHERE id=$1`

	insertLocationQuery = `INSERT INTO locations(name) VALUES ($1) RETURNING id`
	listLocationsQuery  = `SELECT id, name FROM locations ORDER BY name`
	deleteLocationQuery = `DELETE FROM locations WHERE id=$1`
)

// CreateBoardMember inserts a board member.
func (p *Postgres) CreateBoardMember(ctx context.Context, m entities.BoardMember) (*entities.BoardMember, error) {
	err := p.db.QueryRow(ctx, insertBoardMemberQuery, m.Name, m.Position, m.Division, m.Email, m.Phone).Scan(&m.ID)
	if err != nil {
		p.log.Errorw("failed to insert board member", "error", err, "name", m.Name)
		return nil, fmt.Errorf("insert board member: %w", err)
	}
	p.log.Infow("board member created", "id", m.ID, "position", m.Position)
	return &m, nil
}

// ListBoardMembers returns the full board roster.
func (p *Postgres) ListBoardMembers(ctx context.Context) ([]entities.BoardMember, error) {
	rows, err := p.db.Query(ctx, listBoardMembersQuery)
	if err != nil {
		return nil, fmt.Errorf("list board members: %w", err)
	}
	defer rows.Close()

	members := make([]entities.BoardMember, 0)
	for rows.Next() {
		var m entities.BoardMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Position, &m.Division, &m.Email, &m.Phone); err != nil {
			return nil, fmt.Errorf("scan board member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate board members: %w", err)
	}
	return members, nil
}

// UpdateBoardMember replaces a board member record.
func (p *Postgres) UpdateBoardMember(ctx context.Context, m entities.BoardMember) (*entities.BoardMember, error) {
	err := p.db.QueryRow(ctx, updateBoardMemberQuery, m.ID, m.Name, m.Position, m.Division, m.Email, m.Phone).Scan(&m.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrBoardMemberNotFound
		}
		return nil, fmt.Errorf("update board member: %w", err)
	}
	return &m, nil
}

// DeleteBoardMember removes a board member by id.
func (p *Postgres) DeleteBoardMember(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteBoardMemberQuery, id)
	if err != nil {
		return fmt.Errorf("delete board member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrBoardMemberNotFound
	}
	return nil
}

// CreateCoach inserts a coach.
func (p *Postgres) CreateCoach(ctx context.Context, c entities.Coach) (*entities.Coach, error) {
	err := p.db.QueryRow(ctx, insertCoachQuery, c.Name, c.Email, c.Phone, c.TeamName, c.Division).Scan(&c.ID)
	if err != nil {
		p.log.Errorw("failed to insert coach", "error", err, "name", c.Name)
		return nil, fmt.Errorf("insert coach: %w", err)
	}
	p.log.Infow("coach created", "id", c.ID, "name", c.Name)
	return &c, nil
}

// ListCoaches returns all coaches.
func (p *Postgres) ListCoaches(ctx context.Context) ([]entities.Coach, error) {
	rows, err := p.db.Query(ctx, listCoachesQuery)
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	defer rows.Close()

	coaches := make([]entities.Coach, 0)
	for rows.Next() {
		var c entities.Coach
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.TeamName, &c.Division); err != nil {
			return nil, fmt.Errorf("scan coach: %w", err)
		}
		coaches = append(coaches, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coaches: %w", err)
	}
	return coaches, nil
}

// UpdateCoach replaces a coach record.
func (p *Postgres) UpdateCoach(ctx context.Context, c entities.Coach) (*entities.Coach, error) {
	err := p.db.QueryRow(ctx, updateCoachQuery, c.ID, c.Name, c.Email, c.Phone, c.TeamName, c.Division).Scan(&c.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrCoachNotFound
		}
		return nil, fmt.Errorf("update coach: %w", err)
	}
	return &c, nil
}

// DeleteCoach removes a coach by id.
func (p *Postgres) DeleteCoach(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteCoachQuery, id)
	if err != nil {
		return fmt.Errorf("delete coach: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrCoachNotFound
	}
	return nil
}

// CreateLocation inserts a field or venue.
func (p *Postgres) CreateLocation(ctx context.Context, l entities.Location) (*entities.Location, error) {
	err := p.db.QueryRow(ctx, insertLocationQuery, l.Name).Scan(&l.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrLocationExists
		}
		return nil, fmt.Errorf("insert location: %w", err)
	}
	return &l, nil
}

// ListLocations returns all fields and venues.
func (p *Postgres) ListLocations(ctx context.Context) ([]entities.Location, error) {
	rows, err := p.db.Query(ctx, listLocationsQuery)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	locations := make([]entities.Location, 0)
	for rows.Next() {
		var l entities.Location
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}
	return locations, nil
}

// DeleteLocation removes a location by id.
func (p *Postgres) DeleteLocation(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteLocationQuery, id)
	if err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrLocationNotFound
	}
	return nil
}
