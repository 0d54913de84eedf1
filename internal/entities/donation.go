// Package entities contains core business entities.
package entities

import "time"

// Donation is a single contribution or sponsorship payment.
type Donation struct {
	ID            int64
	Name          string
	Amount        float64
	DonationType  string
	DonatedOn     time.Time
	Division      *string
	ContactPerson *string
	Phone         *string
	Email         *string
	Address       *string
	Notes         *string
}

// DonationFilter limits donation listings.
type DonationFilter struct {
	Year     *int
	Division *string
}

// DonationYearSummary aggregates donation totals for one calendar year.
type DonationYearSummary struct {
	Year  int
	Count int64
	Total float64
}
