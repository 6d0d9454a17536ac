package domain

import "time"

// Campaign is an organizer-owned fundraising drive. Raised only reflects
// completed donations; it is debited on failure-after-completion and on
// withdrawal payout, never below zero.
type Campaign struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"ownerId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Images       []string  `json:"images,omitempty"`
	Target       float64   `json:"target"`
	Raised       float64   `json:"raised"`
	IsApproved   bool      `json:"isApproved"`
	IsClosed     bool      `json:"isClosed"`
	ClosedReason string    `json:"closedReason,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CampaignFilter narrows campaign listings.
type CampaignFilter struct {
	OwnerID      string
	Search       string
	ApprovedOnly bool
}

// CampaignPatch carries the mutable campaign fields. Nil fields are left
// untouched.
type CampaignPatch struct {
	Title       *string
	Description *string
	Images      *[]string
	Target      *float64
}
