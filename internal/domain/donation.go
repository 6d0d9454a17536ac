package domain

import "time"

// Donation is a single pledge against a campaign. Campaign.Raised reflects
// the sum of currently completed donations via per-transition deltas, not a
// live recomputation.
type Donation struct {
	ID               string         `json:"id"`
	CampaignID       string         `json:"campaignId"`
	DonorID          string         `json:"donorId,omitempty"`
	DonorEmail       string         `json:"donorEmail"`
	Amount           float64        `json:"amount"`
	Method           string         `json:"method"`
	Status           DonationStatus `json:"status"`
	PaymentReference string         `json:"paymentReference,omitempty"`
	Message          string         `json:"message,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// DonationStats aggregates completed donations.
type DonationStats struct {
	Sum     float64 `json:"sum"`
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}
