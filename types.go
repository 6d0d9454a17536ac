package causeway

// API request and response shapes shared by the server handlers and the
// client package.

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyEmailRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordResetConfirm struct {
	Email       string `json:"email"`
	Code        string `json:"code"`
	NewPassword string `json:"newPassword"`
}

type SubmitApplicationRequest struct {
	OrganizationName string `json:"organizationName"`
	Description      string `json:"description"`
}

type ReviewRequest struct {
	Reason string `json:"reason,omitempty"`
}

type RevokeRequest struct {
	Reason string `json:"reason"`
}

type CreateCampaignRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images,omitempty"`
	Target      float64  `json:"target"`
}

type UpdateCampaignRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Target      *float64  `json:"target,omitempty"`
}

type CloseCampaignRequest struct {
	Reason string `json:"reason,omitempty"`
}

type CreateDonationRequest struct {
	CampaignID string  `json:"campaignId"`
	Amount     float64 `json:"amount"`
	Method     string  `json:"method"`
	DonorEmail string  `json:"donorEmail"`
	Message    string  `json:"message,omitempty"`
}

type DonationStatusRequest struct {
	Status           string `json:"status"`
	PaymentReference string `json:"paymentReference,omitempty"`
}

type CreateWithdrawalRequest struct {
	CampaignID    string  `json:"campaignId"`
	Amount        float64 `json:"amount"`
	PayoutMethod  string  `json:"payoutMethod"`
	PayoutDetails string  `json:"payoutDetails,omitempty"`
}

type WithdrawalReviewRequest struct {
	Message string `json:"message,omitempty"`
}

type MarkPaidRequest struct {
	PaymentReference string `json:"paymentReference,omitempty"`
}

// Page wraps a list response with its total count and paging window.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
