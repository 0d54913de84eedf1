package usecase

import (
	"context"
	"time"

	"github.com/josefahaz/bucksportbaseball/internal/auth"
	"github.com/josefahaz/bucksportbaseball/internal/repository"
	"github.com/josefahaz/bucksportbaseball/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	AuthUsecaseInterface
	UserUsecaseInterface
	TeamUsecaseInterface
	PlayerUsecaseInterface
	EventUsecaseInterface
	InventoryUsecaseInterface
	RosterUsecaseInterface
	ScheduleUsecaseInterface
	DonationUsecaseInterface
	SponsorshipUsecaseInterface
	ActivityUsecaseInterface
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
) InterfaceUsecase {
	return domain.New(log, ctx, repo, timeout, tokens, verifier, allowedDomain)
}
