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
	insertDonationQuery = `
INSERT INTO donations(name, amount, donation_type, donated_on, division, contact_person, phone, email, address, notes)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
RETURNING id`
	updateDonationQuery = `
UPDATE donations
SET name=$2, amount=$3, donation_type=$4, donated_on=$5, division=$6, contact_person=$7, phone=$8, email=$9, address=$10, notes=$11
WHERE id=$1
RETURNING id`
	deleteDonationQuery  = `DELETE FROM donations WHERE id=$1`
	donationSummaryQuery = `
SELECT EXTRACT(YEAR FROM donated_on)::int AS year, COUNT(*), COALESCE(SUM(amount), 0)
FROM donations
GROUP BY year
ORDER BY year DESC`
	truncateDonationsQuery = `DELETE FROM donations`
)

// CreateDonation inserts a donation record.
func (p *Postgres) CreateDonation(ctx context.Context, d entities.Donation) (*entities.Donation, error) {
	err := p.db.QueryRow(ctx, insertDonationQuery,
		d.Name, d.Amount, d.DonationType, d.DonatedOn, d.Division,
		d.ContactPerson, d.Phone, d.Email, d.Address, d.Notes).Scan(&d.ID)
	if err != nil {
		p.log.Errorw("failed to insert donation", "error", err, "name", d.Name)
		return nil, fmt.Errorf("insert donation: %w", err)
	}

	p.log.Infow("donation recorded", "donation_id", d.ID, "amount", d.Amount)
	return &d, nil
}

// ListDonations returns donations filtered by year and division, newest first.
func (p *Postgres) ListDonations(ctx context.Context, filter entities.DonationFilter) ([]entities.Donation, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT id, name, amount, donation_type, donated_on, division, contact_person, phone, email, address, notes
FROM donations`)

	conds := make([]string, 0, 2)
	args := make([]any, 0, 2)
	if filter.Year != nil {
		args = append(args, *filter.Year)
		conds = append(conds, fmt.Sprintf("EXTRACT(YEAR FROM donated_on)=$%d", len(args)))
	}
	if filter.Division != nil {
		args = append(args, *filter.Division)
		conds = append(conds, fmt.Sprintf("division=$%d", len(args)))
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}
	sb.WriteString(" ORDER BY donated_on DESC, name")

	rows, err := p.db.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	donations := make([]entities.Donation, 0)
	for rows.Next() {
		var d entities.Donation
		if err := rows.Scan(&d.ID, &d.Name, &d.Amount, &d.DonationType, &d.DonatedOn, &d.Division,
			&d.ContactPerson, &d.Phone, &d.Email, &d.Address, &d.Notes); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		donations = append(donations, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate donations: %w", err)
	}

	return donations, nil
}

// UpdateDonation replaces a donation record.
func (p *Postgres) UpdateDonation(ctx context.Context, d entities.Donation) (*entities.Donation, error) {
	err := p.db.QueryRow(ctx, updateDonationQuery,
		d.ID, d.Name, d.Amount, d.DonationType, d.DonatedOn, d.Division,
		d.ContactPerson, d.Phone, d.Email, d.Address, d.Notes).Scan(&d.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDonationNotFound
		}
		return nil, fmt.Errorf("update donation: %w", err)
	}
	return &d, nil
}

// DeleteDonation removes a donation by id.
func (p *Postgres) DeleteDonation(ctx context.Context, id int64) error {
	tag, err := p.db.Exec(ctx, deleteDonationQuery, id)
	if err != nil {
		return fmt.Errorf("delete donation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrDonationNotFound
	}
	return nil
}

// DonationSummary aggregates donation counts and totals per calendar year.
func (p *Postgres) DonationSummary(ctx context.Context) ([]entities.DonationYearSummary, error) {
	rows, err := p.db.Query(ctx, donationSummaryQuery)
	if err != nil {
		return nil, fmt.Errorf("donation summary: %w", err)
	}
	defer rows.Close()

	summary := make([]entities.DonationYearSummary, 0)
	for rows.Next() {
		var s entities.DonationYearSummary
		if err := rows.Scan(&s.Year, &s.Count, &s.Total); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		summary = append(summary, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate summary: %w", err)
	}

	return summary, nil
}

// ReplaceDonations clears the table and bulk-inserts imported records in one
// transaction. Used by the spreadsheet importer.
func (p *Postgres) ReplaceDonations(ctx context.Context, donations []entities.Donation) (int, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, truncateDonationsQuery); err != nil {
		return 0, fmt.Errorf("clear donations: %w", err)
	}

	inserted := 0
	for _, d := range donations {
		if _, err := tx.Exec(ctx, insertDonationQuery,
			d.Name, d.Amount, d.DonationType, d.DonatedOn, d.Division,
			d.ContactPerson, d.Phone, d.Email, d.Address, d.Notes); err != nil {
			return 0, fmt.Errorf("insert imported donation: %w", err)
		}
		inserted++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	p.log.Infow("donations replaced", "inserted", inserted)
	return inserted, nil
}
