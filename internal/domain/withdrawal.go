package domain

import "time"

// WithdrawalRequest is an organizer claim against a campaign's raised
// balance. At most one request per campaign may be outstanding (pending or
// approved) at a time.
type WithdrawalRequest struct {
	ID               string           `json:"id"`
	OrganizerID      string           `json:"organizerId"`
	CampaignID       string           `json:"campaignId"`
	AmountRequested  float64          `json:"amountRequested"`
	PayoutMethod     string           `json:"payoutMethod"`
	PayoutDetails    string           `json:"payoutDetails,omitempty"`
	Status           WithdrawalStatus `json:"status"`
	ReviewedBy       *string          `json:"reviewedBy,omitempty"`
	AdminMessage     string           `json:"adminMessage,omitempty"`
	PaidAt           *time.Time       `json:"paidAt,omitempty"`
	PaymentReference string           `json:"paymentReference,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}
