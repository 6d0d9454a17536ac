package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/causewayhq/causeway/internal/domain"
)

const minDonationAmount = 0.01

// CreateDonationInput is the validated input for creating a donation.
type CreateDonationInput struct {
	CampaignID string
	Amount     float64
	Method     string
	DonorEmail string
	Message    string
}

// DonationUsecase governs donation reconciliation: pending creation and the
// status transitions that credit or debit the campaign's raised total.
type DonationUsecase struct {
	stores Stores
	atomic Atomic
}

func NewDonationUsecase(stores Stores, atomic Atomic) *DonationUsecase {
	return &DonationUsecase{stores: stores, atomic: atomic}
}

// Create records a pending donation. No funds move until the donation
// transitions to completed.
func (uc *DonationUsecase) Create(ctx context.Context, donorID string, input CreateDonationInput) (domain.Donation, error) {
	if input.Amount < minDonationAmount {
		return domain.Donation{}, domain.ValidationError{Field: "amount", Reason: "must be at least 0.01"}
	}
	email := strings.TrimSpace(input.DonorEmail)
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Donation{}, domain.ValidationError{Field: "donorEmail", Reason: "must be a valid email address"}
	}
	if strings.TrimSpace(input.Method) == "" {
		return domain.Donation{}, domain.ValidationError{Field: "method", Reason: "must not be empty"}
	}

	campaign, err := uc.stores.Campaigns.Get(ctx, input.CampaignID)
	if err != nil {
		return domain.Donation{}, err
	}
	if !campaign.IsApproved || campaign.IsClosed {
		return domain.Donation{}, domain.StateError{
			Entity: "campaign",
			Reason: "campaign is not accepting donations",
		}
	}

	donation := domain.Donation{
		ID:         uuid.NewString(),
		CampaignID: campaign.ID,
		DonorID:    donorID,
		DonorEmail: email,
		Amount:     input.Amount,
		Method:     input.Method,
		Status:     domain.DonationPending,
		Message:    input.Message,
		CreatedAt:  time.Now().UTC(),
	}
	return uc.stores.Donations.Create(ctx, donation)
}

// UpdateStatus transitions a donation and applies the matching balance delta
// in one atomic unit. Entering completed from any other state credits the
// campaign exactly once; entering failed from completed debits it, floored
// at zero. Transitions that do not cross the completed boundary leave the
// balance untouched, so re-posting the same target status is harmless.
func (uc *DonationUsecase) UpdateStatus(ctx context.Context, donationID string, newStatus domain.DonationStatus, paymentReference string) (domain.Donation, error) {
	switch newStatus {
	case domain.DonationCompleted, domain.DonationFailed:
	default:
		return domain.Donation{}, domain.ValidationError{
			Field:  "status",
			Reason: "must be completed or failed",
		}
	}

	var updated domain.Donation
	err := uc.atomic.Atomic(ctx, func(tx Stores) error {
		donation, err := tx.Donations.GetForUpdate(ctx, donationID)
		if err != nil {
			return err
		}

		previous := donation.Status
		donation.Status = newStatus
		if paymentReference != "" {
			donation.PaymentReference = paymentReference
		}
		donation.UpdatedAt = time.Now().UTC()
		if err := tx.Donations.Update(ctx, donation); err != nil {
			return err
		}

		switch {
		case newStatus == domain.DonationCompleted && previous != domain.DonationCompleted:
			if err := tx.Campaigns.AdjustRaised(ctx, donation.CampaignID, donation.Amount); err != nil {
				return err
			}
		case newStatus == domain.DonationFailed && previous == domain.DonationCompleted:
			if err := tx.Campaigns.AdjustRaised(ctx, donation.CampaignID, -donation.Amount); err != nil {
				return err
			}
		}

		updated = donation
		return nil
	})
	return updated, err
}

// Get returns a single donation.
func (uc *DonationUsecase) Get(ctx context.Context, donationID string) (domain.Donation, error) {
	return uc.stores.Donations.Get(ctx, donationID)
}

// Stats aggregates completed donations, optionally scoped to one campaign.
func (uc *DonationUsecase) Stats(ctx context.Context, campaignID string) (domain.DonationStats, error) {
	if campaignID != "" {
		if _, err := uc.stores.Campaigns.Get(ctx, campaignID); err != nil {
			return domain.DonationStats{}, err
		}
	}
	return uc.stores.Donations.Stats(ctx, campaignID)
}

// ListByCampaign pages through a campaign's donations.
func (uc *DonationUsecase) ListByCampaign(ctx context.Context, campaignID string, page, limit int) ([]domain.Donation, int64, error) {
	offset, limit := NormalizePage(page, limit)
	return uc.stores.Donations.ListByCampaign(ctx, campaignID, offset, limit)
}

// ListByDonor pages through a donor's own donations.
func (uc *DonationUsecase) ListByDonor(ctx context.Context, donorID string, page, limit int) ([]domain.Donation, int64, error) {
	offset, limit := NormalizePage(page, limit)
	return uc.stores.Donations.ListByDonor(ctx, donorID, offset, limit)
}
