package domain

import "time"

// OrganizerApplication is one organizer vetting attempt. A user may have at
// most one application with status pending or approved at a time; rejected
// applications are terminal and a new attempt creates a fresh record.
type OrganizerApplication struct {
	ID               string            `json:"id"`
	UserID           string            `json:"userId"`
	OrganizationName string            `json:"organizationName"`
	Description      string            `json:"description"`
	Status           ApplicationStatus `json:"status"`
	ReviewedBy       *string           `json:"reviewedBy,omitempty"`
	ReviewedAt       *time.Time        `json:"reviewedAt,omitempty"`
	RejectionReason  string            `json:"rejectionReason,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
}
