package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/causewayhq/causeway/internal/domain"
)

// CreateWithdrawalInput is the validated input for a withdrawal request.
type CreateWithdrawalInput struct {
	CampaignID    string
	Amount        float64
	PayoutMethod  string
	PayoutDetails string
}

// WithdrawalUsecase governs the payout workflow: request creation against a
// campaign's raised balance, admin review, and the paid transition that
// debits the campaign.
type WithdrawalUsecase struct {
	stores Stores
	atomic Atomic
}

func NewWithdrawalUsecase(stores Stores, atomic Atomic) *WithdrawalUsecase {
	return &WithdrawalUsecase{stores: stores, atomic: atomic}
}

// Create opens a pending withdrawal request. At most one request per
// campaign may be outstanding at a time.
func (uc *WithdrawalUsecase) Create(ctx context.Context, organizerID string, input CreateWithdrawalInput) (domain.WithdrawalRequest, error) {
	if input.Amount <= 0 {
		return domain.WithdrawalRequest{}, domain.ValidationError{Field: "amount", Reason: "must be greater than 0"}
	}
	if strings.TrimSpace(input.PayoutMethod) == "" {
		return domain.WithdrawalRequest{}, domain.ValidationError{Field: "payoutMethod", Reason: "must not be empty"}
	}

	campaign, err := uc.stores.Campaigns.Get(ctx, input.CampaignID)
	if err != nil {
		return domain.WithdrawalRequest{}, err
	}
	if campaign.OwnerID != organizerID {
		return domain.WithdrawalRequest{}, domain.AuthorizationError{Reason: "caller does not own this campaign"}
	}
	if !campaign.IsApproved {
		return domain.WithdrawalRequest{}, domain.StateError{
			Entity: "campaign",
			Reason: "campaign is not approved",
		}
	}
	if input.Amount > campaign.Raised {
		return domain.WithdrawalRequest{}, domain.ValidationError{
			Field:  "amount",
			Reason: "exceeds the campaign's available balance",
		}
	}

	open, err := uc.stores.Withdrawals.HasOpen(ctx, input.CampaignID)
	if err != nil {
		return domain.WithdrawalRequest{}, err
	}
	if open {
		return domain.WithdrawalRequest{}, domain.ConflictError{
			Reason: "an outstanding withdrawal request already exists for this campaign",
		}
	}

	req := domain.WithdrawalRequest{
		ID:              uuid.NewString(),
		OrganizerID:     organizerID,
		CampaignID:      input.CampaignID,
		AmountRequested: input.Amount,
		PayoutMethod:    input.PayoutMethod,
		PayoutDetails:   input.PayoutDetails,
		Status:          domain.WithdrawalPending,
		CreatedAt:       time.Now().UTC(),
	}
	return uc.stores.Withdrawals.Create(ctx, req)
}

// Approve moves a pending request to approved.
func (uc *WithdrawalUsecase) Approve(ctx context.Context, withdrawalID, adminID string) (domain.WithdrawalRequest, error) {
	req, err := uc.stores.Withdrawals.Get(ctx, withdrawalID)
	if err != nil {
		return domain.WithdrawalRequest{}, err
	}
	if req.Status != domain.WithdrawalPending {
		return domain.WithdrawalRequest{}, domain.StateError{
			Entity: "withdrawal",
			Reason: "only a pending request can be approved",
		}
	}

	req.Status = domain.WithdrawalApproved
	req.ReviewedBy = &adminID
	req.UpdatedAt = time.Now().UTC()
	if err := uc.stores.Withdrawals.Update(ctx, req); err != nil {
		return domain.WithdrawalRequest{}, err
	}
	return req, nil
}

// Reject moves a pending request to rejected.
func (uc *WithdrawalUsecase) Reject(ctx context.Context, withdrawalID, adminID, message string) (domain.WithdrawalRequest, error) {
	req, err := uc.stores.Withdrawals.Get(ctx, withdrawalID)
	if err != nil {
		return domain.WithdrawalRequest{}, err
	}
	if req.Status != domain.WithdrawalPending {
		return domain.WithdrawalRequest{}, domain.StateError{
			Entity: "withdrawal",
			Reason: "only a pending request can be rejected",
		}
	}

	if strings.TrimSpace(message) == "" {
		message = domain.DefaultWithdrawalRejectReason
	}
	req.Status = domain.WithdrawalRejected
	req.ReviewedBy = &adminID
	req.AdminMessage = message
	req.UpdatedAt = time.Now().UTC()
	if err := uc.stores.Withdrawals.Update(ctx, req); err != nil {
		return domain.WithdrawalRequest{}, err
	}
	return req, nil
}

// MarkPaid settles an approved request: in one atomic unit it records the
// payout and debits the campaign's raised balance, floored at zero.
func (uc *WithdrawalUsecase) MarkPaid(ctx context.Context, withdrawalID, adminID, paymentReference string) (domain.WithdrawalRequest, error) {
	var paid domain.WithdrawalRequest
	err := uc.atomic.Atomic(ctx, func(tx Stores) error {
		req, err := tx.Withdrawals.GetForUpdate(ctx, withdrawalID)
		if err != nil {
			return err
		}
		if req.Status != domain.WithdrawalApproved {
			return domain.StateError{
				Entity: "withdrawal",
				Reason: "only an approved request can be marked as paid",
			}
		}

		now := time.Now().UTC()
		req.Status = domain.WithdrawalPaid
		req.ReviewedBy = &adminID
		req.PaidAt = &now
		req.PaymentReference = paymentReference
		req.UpdatedAt = now
		if err := tx.Withdrawals.Update(ctx, req); err != nil {
			return err
		}

		if err := tx.Campaigns.AdjustRaised(ctx, req.CampaignID, -req.AmountRequested); err != nil {
			return err
		}

		paid = req
		return nil
	})
	return paid, err
}

// Get returns a request. Organizers may only view their own.
func (uc *WithdrawalUsecase) Get(ctx context.Context, withdrawalID, callerID string, callerRole domain.Role) (domain.WithdrawalRequest, error) {
	req, err := uc.stores.Withdrawals.Get(ctx, withdrawalID)
	if err != nil {
		return domain.WithdrawalRequest{}, err
	}
	if req.OrganizerID != callerID && callerRole != domain.RoleAdmin {
		return domain.WithdrawalRequest{}, domain.AuthorizationError{Reason: "caller does not own this request"}
	}
	return req, nil
}

// List pages through requests. Organizers see their own; admins see all.
func (uc *WithdrawalUsecase) List(ctx context.Context, callerID string, callerRole domain.Role, status *domain.WithdrawalStatus, page, limit int) ([]domain.WithdrawalRequest, int64, error) {
	organizerID := callerID
	if callerRole == domain.RoleAdmin {
		organizerID = ""
	}
	offset, limit := NormalizePage(page, limit)
	return uc.stores.Withdrawals.List(ctx, organizerID, status, offset, limit)
}
