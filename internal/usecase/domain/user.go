package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/josefahaz/bucksportbaseball/internal/entities"
)

// GoogleLogin verifies a Google ID token and issues a session for an authorized account.
func (u *Usecase) GoogleLogin(ctx context.Context, idToken string) (*entities.LoginSession, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if idToken == "" {
		return nil, fmt.Errorf("%w: token is required", entities.ErrInvalidArgument)
	}

	payload, err := u.verifier.Verify(ctx, idToken)
	if err != nil {
		u.log.Infow("google token rejected", "error", err)
		return nil, err
	}

	email := strings.ToLower(payload.Email)
	if !strings.HasSuffix(email, "@"+u.allowedDomain) {
		u.log.Infow("login from outside allowed domain", "email", email)
		return nil, fmt.Errorf("%w: %s", entities.ErrDomainNotAllowed, email)
	}

	user, err := u.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			return nil, fmt.Errorf("%w: %s", entities.ErrUserNotAuthorized, email)
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account disabled", entities.ErrUserNotAuthorized)
	}

	user, err = u.repo.RecordLogin(ctx, user.ID, payload.GoogleID)
	if err != nil {
		return nil, err
	}

	token, err := u.tokens.Generate(user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	u.log.Infow("user logged in", "email", user.Email, "role", user.Role)
	return &entities.LoginSession{Token: token, User: *user}, nil
}

// CurrentUser resolves the account behind a session token's email claim.
func (u *Usecase) CurrentUser(ctx context.Context, email string) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	return u.repo.GetUserByEmail(ctx, strings.ToLower(email))
}

// Users lists all admin accounts.
func (u *Usecase) Users(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListUsers(ctx)
}

// CreateUser grants site access to a new account.
func (u *Usecase) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if user.Email == "" {
		return nil, fmt.Errorf("%w: email is required", entities.ErrInvalidArgument)
	}
	if !entities.ValidRole(user.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", entities.ErrInvalidArgument, user.Role)
	}
	user.Email = strings.ToLower(user.Email)
	if !strings.HasSuffix(user.Email, "@"+u.allowedDomain) {
		return nil, fmt.Errorf("%w: email must belong to %s", entities.ErrInvalidArgument, u.allowedDomain)
	}
	user.IsActive = true
	return u.repo.CreateUser(ctx, user)
}

// DeleteUser revokes an account. The acting user cannot revoke their own access.
func (u *Usecase) DeleteUser(ctx context.Context, actorEmail string, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}

	target, err := u.repo.GetUser(ctx, id)
	if err != nil {
		return err
	}
	if strings.EqualFold(target.Email, actorEmail) {
		return entities.ErrSelfDelete
	}
	return u.repo.DeleteUser(ctx, id)
}
