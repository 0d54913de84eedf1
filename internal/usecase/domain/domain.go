package domain

import (
	"context"
	"time"

	"github.com/josefahaz/bucksportbaseball/internal/auth"
	"github.com/josefahaz/bucksportbaseball/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces.
type Usecase struct {
	ctx           context.Context
	log           *zap.SugaredLogger
	repo          repository.Repository
	timeout       time.Duration
	tokens        *auth.TokenManager
	verifier      auth.GoogleVerifier
	allowedDomain string
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	timeout time.Duration,
	tokens *auth.TokenManager,
	verifier auth.GoogleVerifier,
	allowedDomain string,
) *Usecase {
	return &Usecase{
		ctx:           ctx,
		log:           log,
		repo:          repo,
		timeout:       timeout,
		tokens:        tokens,
		verifier:      verifier,
		allowedDomain: allowedDomain,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
