package usecase

import (
	"context"
	"time"

	"github.com/causewayhq/causeway/internal/domain"
)

// UserRepository defines persistence/lookup for users.
type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	Get(ctx context.Context, id string) (domain.User, error)
	GetForUpdate(ctx context.Context, id string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Update(ctx context.Context, user domain.User) error
	ListOrganizers(ctx context.Context, filter domain.OrganizerFilter, offset, limit int) ([]domain.User, int64, error)
}

// ApplicationRepository defines persistence/lookup for organizer applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app domain.OrganizerApplication) (domain.OrganizerApplication, error)
	Get(ctx context.Context, id string) (domain.OrganizerApplication, error)
	GetForUpdate(ctx context.Context, id string) (domain.OrganizerApplication, error)
	// GetLiveByUser returns the user's application with status pending or
	// approved, or NotFoundError when none exists.
	GetLiveByUser(ctx context.Context, userID string) (domain.OrganizerApplication, error)
	Update(ctx context.Context, app domain.OrganizerApplication) error
	List(ctx context.Context, status *domain.ApplicationStatus, offset, limit int) ([]domain.OrganizerApplication, int64, error)
}

// CampaignRepository defines persistence/lookup for campaigns.
type CampaignRepository interface {
	Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	Get(ctx context.Context, id string) (domain.Campaign, error)
	GetForUpdate(ctx context.Context, id string) (domain.Campaign, error)
	Update(ctx context.Context, campaign domain.Campaign) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter domain.CampaignFilter, offset, limit int) ([]domain.Campaign, int64, error)
	// CloseOpenByOwner closes every non-closed campaign of the owner,
	// tagging the given reason.
	CloseOpenByOwner(ctx context.Context, ownerID, reason string) error
	// AdjustRaised applies a delta to the campaign's raised total, floored
	// at zero.
	AdjustRaised(ctx context.Context, id string, delta float64) error
}

// DonationRepository defines persistence/lookup for donations.
type DonationRepository interface {
	Create(ctx context.Context, donation domain.Donation) (domain.Donation, error)
	Get(ctx context.Context, id string) (domain.Donation, error)
	GetForUpdate(ctx context.Context, id string) (domain.Donation, error)
	Update(ctx context.Context, donation domain.Donation) error
	ListByCampaign(ctx context.Context, campaignID string, offset, limit int) ([]domain.Donation, int64, error)
	ListByDonor(ctx context.Context, donorID string, offset, limit int) ([]domain.Donation, int64, error)
	// Stats aggregates completed donations, optionally scoped to one
	// campaign (campaignID == "" means all).
	Stats(ctx context.Context, campaignID string) (domain.DonationStats, error)
}

// WithdrawalRepository defines persistence/lookup for withdrawal requests.
type WithdrawalRepository interface {
	Create(ctx context.Context, req domain.WithdrawalRequest) (domain.WithdrawalRequest, error)
	Get(ctx context.Context, id string) (domain.WithdrawalRequest, error)
	GetForUpdate(ctx context.Context, id string) (domain.WithdrawalRequest, error)
	Update(ctx context.Context, req domain.WithdrawalRequest) error
	// HasOpen reports whether the campaign has a request with status
	// pending or approved.
	HasOpen(ctx context.Context, campaignID string) (bool, error)
	// List returns requests, optionally scoped to one organizer
	// (organizerID == "" means all) and one status.
	List(ctx context.Context, organizerID string, status *domain.WithdrawalStatus, offset, limit int) ([]domain.WithdrawalRequest, int64, error)
	// RejectPendingByOrganizer rejects every pending request of the
	// organizer, tagging reviewer and message.
	RejectPendingByOrganizer(ctx context.Context, organizerID, reviewedBy, message string) error
}

// Stores bundles the repositories a workflow operates over.
type Stores struct {
	Users        UserRepository
	Applications ApplicationRepository
	Campaigns    CampaignRepository
	Donations    DonationRepository
	Withdrawals  WithdrawalRepository
}

// Atomic is the unit-of-work boundary. Writes made through the stores handed
// to fn become durably visible together or not at all.
type Atomic interface {
	Atomic(ctx context.Context, fn func(tx Stores) error) error
}

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// TokenIssuer mints session tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID string, role domain.Role) (string, time.Time, error)
}

// CodeStore issues and consumes one-time codes.
type CodeStore interface {
	Issue(ctx context.Context, email string, purpose domain.CodePurpose) (domain.OneTimeCode, error)
	// Verify consumes the code on success; a consumed or expired code
	// never verifies again.
	Verify(ctx context.Context, email, code string, purpose domain.CodePurpose) error
}

// CodeSender delivers one-time codes. Delivery transport is an external
// collaborator.
type CodeSender interface {
	Send(ctx context.Context, code domain.OneTimeCode) error
}
