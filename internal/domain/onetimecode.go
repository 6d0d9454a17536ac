package domain

import "time"

// OneTimeCode is a short-lived verification code. It is consumed on first
// successful verification and garbage-collected after expiry.
type OneTimeCode struct {
	Email     string      `json:"email"`
	Code      string      `json:"code"`
	Purpose   CodePurpose `json:"purpose"`
	ExpiresAt time.Time   `json:"expiresAt"`
	IsUsed    bool        `json:"isUsed"`
}
