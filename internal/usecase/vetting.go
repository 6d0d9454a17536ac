package usecase

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/causewayhq/causeway/internal/domain"
)

const (
	minOrganizationNameLen = 3
	minDescriptionLen      = 20
	minRevocationReasonLen = 10
)

// SubmitApplicationInput is the validated input for an organizer application.
type SubmitApplicationInput struct {
	OrganizationName string
	Description      string
}

// VettingUsecase governs the organizer vetting workflow: application
// submission, admin review, and revocation with cascading side effects.
type VettingUsecase struct {
	stores Stores
	atomic Atomic
}

func NewVettingUsecase(stores Stores, atomic Atomic) *VettingUsecase {
	return &VettingUsecase{stores: stores, atomic: atomic}
}

// Submit creates a pending application for the user. A user with a live
// (pending or approved) application may not submit another.
func (uc *VettingUsecase) Submit(ctx context.Context, userID string, input SubmitApplicationInput) (domain.OrganizerApplication, error) {
	orgName := strings.TrimSpace(input.OrganizationName)
	if utf8.RuneCountInString(orgName) < minOrganizationNameLen {
		return domain.OrganizerApplication{}, domain.ValidationError{
			Field:  "organizationName",
			Reason: "must be at least 3 characters",
		}
	}
	description := strings.TrimSpace(input.Description)
	if utf8.RuneCountInString(description) < minDescriptionLen {
		return domain.OrganizerApplication{}, domain.ValidationError{
			Field:  "description",
			Reason: "must be at least 20 characters",
		}
	}

	if _, err := uc.stores.Users.Get(ctx, userID); err != nil {
		return domain.OrganizerApplication{}, err
	}

	_, err := uc.stores.Applications.GetLiveByUser(ctx, userID)
	if err == nil {
		return domain.OrganizerApplication{}, domain.ConflictError{
			Reason: "a pending or approved application already exists",
		}
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.OrganizerApplication{}, err
	}

	app := domain.OrganizerApplication{
		ID:               uuid.NewString(),
		UserID:           userID,
		OrganizationName: orgName,
		Description:      description,
		Status:           domain.ApplicationPending,
		CreatedAt:        time.Now().UTC(),
	}
	return uc.stores.Applications.Create(ctx, app)
}

// Approve moves a pending application to approved and promotes the applicant
// to organizer. Both writes commit together or neither does.
func (uc *VettingUsecase) Approve(ctx context.Context, applicationID, adminID string) (domain.OrganizerApplication, error) {
	var approved domain.OrganizerApplication
	err := uc.atomic.Atomic(ctx, func(tx Stores) error {
		app, err := tx.Applications.GetForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
		if app.Status != domain.ApplicationPending {
			return domain.StateError{
				Entity: "application",
				Reason: "only a pending application can be approved",
			}
		}

		user, err := tx.Users.GetForUpdate(ctx, app.UserID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		app.Status = domain.ApplicationApproved
		app.ReviewedBy = &adminID
		app.ReviewedAt = &now
		if err := tx.Applications.Update(ctx, app); err != nil {
			return err
		}

		user.Role = domain.RoleOrganizer
		user.IsOrganizerApproved = true
		if err := tx.Users.Update(ctx, user); err != nil {
			return err
		}

		approved = app
		return nil
	})
	return approved, err
}

// Reject moves a pending application to rejected.
func (uc *VettingUsecase) Reject(ctx context.Context, applicationID, adminID, reason string) (domain.OrganizerApplication, error) {
	app, err := uc.stores.Applications.Get(ctx, applicationID)
	if err != nil {
		return domain.OrganizerApplication{}, err
	}
	if app.Status != domain.ApplicationPending {
		return domain.OrganizerApplication{}, domain.StateError{
			Entity: "application",
			Reason: "only a pending application can be rejected",
		}
	}

	if strings.TrimSpace(reason) == "" {
		reason = domain.DefaultRejectionReason
	}

	now := time.Now().UTC()
	app.Status = domain.ApplicationRejected
	app.ReviewedBy = &adminID
	app.ReviewedAt = &now
	app.RejectionReason = reason
	if err := uc.stores.Applications.Update(ctx, app); err != nil {
		return domain.OrganizerApplication{}, err
	}
	return app, nil
}

// Revoke suspends an organizer. In one atomic unit it marks the user revoked,
// closes every open campaign they own, and rejects every pending withdrawal
// request they have outstanding.
func (uc *VettingUsecase) Revoke(ctx context.Context, organizerID, adminID, reason string) (domain.User, error) {
	reason = strings.TrimSpace(reason)
	if utf8.RuneCountInString(reason) < minRevocationReasonLen {
		return domain.User{}, domain.ValidationError{
			Field:  "reason",
			Reason: "must be at least 10 characters",
		}
	}

	var revoked domain.User
	err := uc.atomic.Atomic(ctx, func(tx Stores) error {
		user, err := tx.Users.GetForUpdate(ctx, organizerID)
		if err != nil {
			return err
		}
		if user.Role != domain.RoleOrganizer {
			return domain.StateError{
				Entity: "user",
				Reason: "target is not an organizer",
			}
		}
		if user.IsOrganizerRevoked {
			return domain.StateError{
				Entity: "user",
				Reason: "organizer is already revoked",
			}
		}

		now := time.Now().UTC()
		user.IsOrganizerRevoked = true
		user.RevokedAt = &now
		user.RevokedBy = &adminID
		user.RevocationReason = reason
		if err := tx.Users.Update(ctx, user); err != nil {
			return err
		}

		if err := tx.Campaigns.CloseOpenByOwner(ctx, organizerID, domain.ClosedReasonOrganizerRevoked); err != nil {
			return err
		}
		if err := tx.Withdrawals.RejectPendingByOrganizer(ctx, organizerID, adminID, domain.AdminMessageOrganizerRevoked); err != nil {
			return err
		}

		revoked = user
		return nil
	})
	return revoked, err
}

// Reinstate lifts a revocation. Campaigns closed during revocation stay
// closed; the audit trail is preserved.
func (uc *VettingUsecase) Reinstate(ctx context.Context, organizerID, adminID string) (domain.User, error) {
	user, err := uc.stores.Users.Get(ctx, organizerID)
	if err != nil {
		return domain.User{}, err
	}
	if !user.IsOrganizerRevoked {
		return domain.User{}, domain.StateError{
			Entity: "user",
			Reason: "organizer is not revoked",
		}
	}

	user.IsOrganizerRevoked = false
	user.RevokedAt = nil
	user.RevokedBy = nil
	user.RevocationReason = ""
	if err := uc.stores.Users.Update(ctx, user); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// ListOrganizers pages through organizers by vetting state.
func (uc *VettingUsecase) ListOrganizers(ctx context.Context, filter domain.OrganizerFilter, page, limit int) ([]domain.User, int64, error) {
	switch filter {
	case domain.OrganizerFilterActive, domain.OrganizerFilterRevoked, domain.OrganizerFilterPending:
	default:
		return nil, 0, domain.ValidationError{Field: "filter", Reason: "must be active, revoked or pending"}
	}
	offset, limit := NormalizePage(page, limit)
	return uc.stores.Users.ListOrganizers(ctx, filter, offset, limit)
}

// GetApplication returns a single application.
func (uc *VettingUsecase) GetApplication(ctx context.Context, id string) (domain.OrganizerApplication, error) {
	return uc.stores.Applications.Get(ctx, id)
}

// ListApplications pages through applications, optionally by status.
func (uc *VettingUsecase) ListApplications(ctx context.Context, status *domain.ApplicationStatus, page, limit int) ([]domain.OrganizerApplication, int64, error) {
	offset, limit := NormalizePage(page, limit)
	return uc.stores.Applications.List(ctx, status, offset, limit)
}
