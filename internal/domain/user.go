package domain

import "time"

// User represents a platform account. Only a role=organizer user carries
// meaningful approval/revocation state.
type User struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email"`
	PasswordHash        string     `json:"-"`
	Name                string     `json:"name"`
	Role                Role       `json:"role"`
	EmailVerified       bool       `json:"emailVerified"`
	IsOrganizerApproved bool       `json:"isOrganizerApproved"`
	IsOrganizerRevoked  bool       `json:"isOrganizerRevoked"`
	RevokedAt           *time.Time `json:"revokedAt,omitempty"`
	RevokedBy           *string    `json:"revokedBy,omitempty"`
	RevocationReason    string     `json:"revocationReason,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`
}
