package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/causewayhq/causeway/internal/domain"
)

// CreateCampaignInput is the validated input for creating a campaign.
type CreateCampaignInput struct {
	Title       string
	Description string
	Images      []string
	Target      float64
}

// CampaignUsecase governs the campaign lifecycle: creation, update, approval,
// closure and deletion.
type CampaignUsecase struct {
	stores Stores
}

func NewCampaignUsecase(stores Stores) *CampaignUsecase {
	return &CampaignUsecase{stores: stores}
}

// Create opens a new, unapproved campaign for an approved organizer.
func (uc *CampaignUsecase) Create(ctx context.Context, organizerID string, input CreateCampaignInput) (domain.Campaign, error) {
	if strings.TrimSpace(input.Title) == "" {
		return domain.Campaign{}, domain.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if input.Target <= 0 {
		return domain.Campaign{}, domain.ValidationError{Field: "target", Reason: "must be greater than 0"}
	}

	user, err := uc.stores.Users.Get(ctx, organizerID)
	if err != nil {
		return domain.Campaign{}, err
	}
	if user.Role != domain.RoleOrganizer {
		return domain.Campaign{}, domain.AuthorizationError{Reason: "caller is not an organizer"}
	}
	if !user.IsOrganizerApproved {
		return domain.Campaign{}, domain.AuthorizationError{Reason: "organizer is not approved"}
	}

	campaign := domain.Campaign{
		ID:          uuid.NewString(),
		OwnerID:     organizerID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Images:      input.Images,
		Target:      input.Target,
		Raised:      0,
		IsApproved:  false,
		CreatedAt:   time.Now().UTC(),
	}
	return uc.stores.Campaigns.Create(ctx, campaign)
}

// Update patches the mutable fields of a campaign. Only the owner or an
// admin may update.
func (uc *CampaignUsecase) Update(ctx context.Context, campaignID, callerID string, callerRole domain.Role, patch domain.CampaignPatch) (domain.Campaign, error) {
	campaign, err := uc.stores.Campaigns.Get(ctx, campaignID)
	if err != nil {
		return domain.Campaign{}, err
	}
	if campaign.OwnerID != callerID && callerRole != domain.RoleAdmin {
		return domain.Campaign{}, domain.AuthorizationError{Reason: "caller does not own this campaign"}
	}

	if patch.Target != nil && *patch.Target <= 0 {
		return domain.Campaign{}, domain.ValidationError{Field: "target", Reason: "must be greater than 0"}
	}

	if patch.Title != nil {
		if strings.TrimSpace(*patch.Title) == "" {
			return domain.Campaign{}, domain.ValidationError{Field: "title", Reason: "must not be empty"}
		}
		campaign.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		campaign.Description = *patch.Description
	}
	if patch.Images != nil {
		campaign.Images = *patch.Images
	}
	if patch.Target != nil {
		campaign.Target = *patch.Target
	}

	if err := uc.stores.Campaigns.Update(ctx, campaign); err != nil {
		return domain.Campaign{}, err
	}
	return campaign, nil
}

// Approve marks a campaign approved. Re-approval is a no-op rather than an
// error.
func (uc *CampaignUsecase) Approve(ctx context.Context, campaignID string) (domain.Campaign, error) {
	campaign, err := uc.stores.Campaigns.Get(ctx, campaignID)
	if err != nil {
		return domain.Campaign{}, err
	}
	campaign.IsApproved = true
	if err := uc.stores.Campaigns.Update(ctx, campaign); err != nil {
		return domain.Campaign{}, err
	}
	return campaign, nil
}

// Close closes a campaign. A closed campaign is never reopened.
func (uc *CampaignUsecase) Close(ctx context.Context, campaignID, callerID string, callerRole domain.Role, reason string) (domain.Campaign, error) {
	campaign, err := uc.stores.Campaigns.Get(ctx, campaignID)
	if err != nil {
		return domain.Campaign{}, err
	}
	if campaign.OwnerID != callerID && callerRole != domain.RoleAdmin {
		return domain.Campaign{}, domain.AuthorizationError{Reason: "caller does not own this campaign"}
	}
	if campaign.IsClosed {
		return domain.Campaign{}, domain.StateError{Entity: "campaign", Reason: "campaign is already closed"}
	}

	if strings.TrimSpace(reason) == "" {
		reason = "Closed by request"
	}
	campaign.IsClosed = true
	campaign.ClosedReason = reason
	if err := uc.stores.Campaigns.Update(ctx, campaign); err != nil {
		return domain.Campaign{}, err
	}
	return campaign, nil
}

// Delete removes a campaign that has never received funds. A campaign with
// raised > 0 can only be closed.
func (uc *CampaignUsecase) Delete(ctx context.Context, campaignID, callerID string, callerRole domain.Role) error {
	campaign, err := uc.stores.Campaigns.Get(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign.OwnerID != callerID && callerRole != domain.RoleAdmin {
		return domain.AuthorizationError{Reason: "caller does not own this campaign"}
	}
	if campaign.Raised > 0 {
		return domain.ConflictError{Reason: "campaign has received funds and cannot be deleted"}
	}
	return uc.stores.Campaigns.Delete(ctx, campaignID)
}

// Get returns a campaign. Unapproved campaigns are visible only to their
// owner and admins.
func (uc *CampaignUsecase) Get(ctx context.Context, campaignID, callerID string, callerRole domain.Role) (domain.Campaign, error) {
	campaign, err := uc.stores.Campaigns.Get(ctx, campaignID)
	if err != nil {
		return domain.Campaign{}, err
	}
	if !campaign.IsApproved && campaign.OwnerID != callerID && callerRole != domain.RoleAdmin {
		return domain.Campaign{}, domain.NotFoundError{Resource: "campaign"}
	}
	return campaign, nil
}

// List pages through campaigns. Non-admin callers see only approved
// campaigns unless listing their own, in which case unapproved campaigns
// they own are included.
func (uc *CampaignUsecase) List(ctx context.Context, filter domain.CampaignFilter, callerID string, callerRole domain.Role, page, limit int) ([]domain.Campaign, int64, error) {
	if callerRole != domain.RoleAdmin {
		ownOnly := filter.OwnerID != "" && filter.OwnerID == callerID
		filter.ApprovedOnly = !ownOnly
	}
	offset, limit := NormalizePage(page, limit)
	return uc.stores.Campaigns.List(ctx, filter, offset, limit)
}
