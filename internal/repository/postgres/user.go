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
	userColumns          = `id, email, first_name, last_name, role, google_id, is_active, created_at, last_login`
	selectUserByEmail    = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	selectUserByID       = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	listUsersQuery       = `SELECT ` + userColumns + ` FROM users ORDER BY last_name, first_name`
	insertUserQuery      = `INSERT INTO users(email, first_name, last_name, role) VALUES ($1,$2,$3,$4) RETURNING id, is_active, created_at`
	deleteUserQuery      = `DELETE FROM users WHERE id=$1`
	recordUserLoginQuery = `
UPDATE users
SET last_login = NOW(), google_id = COALESCE(google_id, NULLIF($2, ''))
WHERE id=$1
RETURNING ` + userColumns
)

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role,
		&u.GoogleID, &u.IsActive, &u.CreatedAt, &u.LastLogin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// GetUserByEmail fetches a provisioned account by email.
func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	return scanUser(p.db.QueryRow(ctx, selectUserByEmail, email))
}

// GetUser fetches a provisioned account by id.
func (p *Postgres) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	return scanUser(p.db.QueryRow(ctx, selectUserByID, id))
}

// ListUsers returns all provisioned accounts.
func (p *Postgres) ListUsers(ctx context.Context) ([]entities.User, error) {
	rows, err := p.db.Query(ctx, listUsersQuery)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		var u entities.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role,
			&u.GoogleID, &u.IsActive, &u.CreatedAt, &u.LastLogin); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}

	return users, nil
}

// CreateUser provisions a new account.
func (p *Postgres) CreateUser(ctx context.Context, u entities.User) (*entities.User, error) {
	err := p.db.QueryRow(ctx, insertUserQuery, u.Email, u.FirstName, u.LastName, u.Role).
		Scan(&u.ID, &u.IsActive, &u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, entities.ErrUserExists
		}
		p.log.Errorw("failed to insert user", "error", err, "email", u.Email)
		return nil, fmt.Errorf("insert user: %w", err)
	}

	p.log.Infow("user provisioned", "user_id", u.ID, "email", u.Email, "role", u.Role)
	return &u, nil
}

// DeleteUser removes an account by id.
func (p *Postgres) DeleteUser(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteUserQuery, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrUserNotFound
	}
	p.log.Infow("user deleted", "user_id", id)
	return nil
}

// RecordLogin stamps last_login and stores the Google subject on first sign-in.
func (p *Postgres) RecordLogin(ctx context.Context, id int64, googleID string) (*entities.User, error) {
	u, err := scanUser(p.db.QueryRow(ctx, recordUserLoginQuery, id, googleID))
	if err != nil {
		return nil, err
	}
	p.log.Infow("user login recorded", "user_id", id)
	return u, nil
}
