package domain

import (
	"context"
	"fmt"

	"github.com/josefahaz/bucksportbaseball/internal/entities"
)

// RecordDonation books a donation or sponsorship payment.
func (u *Usecase) RecordDonation(ctx context.Context, d entities.Donation) (*entities.Donation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if err := validateDonation(d); err != nil {
		u.log.Errorw("failed to record donation", "error", err)
		return nil, err
	}
	return u.repo.CreateDonation(ctx, d)
}

// Donations lists donations filtered by year or division.
func (u *Usecase) Donations(ctx context.Context, filter entities.DonationFilter) ([]entities.Donation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.ListDonations(ctx, filter)
}

// UpdateDonation replaces a donation record.
func (u *Usecase) UpdateDonation(ctx context.Context, d entities.Donation) (*entities.Donation, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if d.ID <= 0 {
		return nil, fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	if err := validateDonation(d); err != nil {
		return nil, err
	}
	return u.repo.UpdateDonation(ctx, d)
}

// DeleteDonation removes a donation record.
func (u *Usecase) DeleteDonation(ctx context.Context, id int64) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id is required", entities.ErrInvalidArgument)
	}
	return u.repo.DeleteDonation(ctx, id)
}

// DonationSummary totals donations per calendar year.
func (u *Usecase) DonationSummary(ctx context.Context) ([]entities.DonationYearSummary, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DonationSummary(ctx)
}

func validateDonation(d entities.Donation) error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", entities.ErrInvalidArgument)
	}
	if d.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", entities.ErrInvalidArgument)
	}
	if d.DonationType == "" {
		return fmt.Errorf("%w: donation_type is required", entities.ErrInvalidArgument)
	}
	if d.DonatedOn.IsZero() {
		return fmt.Errorf("%w: donated_on is required", entities.ErrInvalidArgument)
	}
	return nil
}
