package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/causewayhq/causeway/internal/domain"
)

func TestCreateCampaignRequiresApprovedOrganizer(t *testing.T) {
	m := newMemStores()
	seedUser(m, "dave", domain.RoleDonor)
	unapproved := seedUser(m, "newbie", domain.RoleOrganizer)
	m.users[unapproved.ID] = unapproved
	uc := NewCampaignUsecase(m.stores())

	input := CreateCampaignInput{Title: "Clean water", Target: 1000}

	if _, err := uc.Create(context.Background(), "dave", input); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected authorization error for donor, got %v", err)
	}
	if _, err := uc.Create(context.Background(), "newbie", input); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected authorization error for unapproved organizer, got %v", err)
	}
}

func TestCreateCampaignValidatesTarget(t *testing.T) {
	m := newMemStores()
	seedOrganizer(m, "olivia")
	uc := NewCampaignUsecase(m.stores())

	_, err := uc.Create(context.Background(), "olivia", CreateCampaignInput{Title: "Clean water", Target: 0})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateCampaignStartsUnapproved(t *testing.T) {
	m := newMemStores()
	seedOrganizer(m, "olivia")
	uc := NewCampaignUsecase(m.stores())

	campaign, err := uc.Create(context.Background(), "olivia", CreateCampaignInput{Title: "Clean water", Target: 1000})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if campaign.IsApproved || campaign.Raised != 0 {
		t.Fatalf("expected unapproved campaign with raised=0, got %+v", campaign)
	}
}

func TestUpdateCampaignOwnership(t *testing.T) {
	m := newMemStores()
	seedCampaign(m, "c1", "olivia", 0, true)
	uc := NewCampaignUsecase(m.stores())

	title := "New title"
	_, err := uc.Update(context.Background(), "c1", "mallory", domain.RoleDonor, domain.CampaignPatch{Title: &title})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected authorization error, got %v", err)
	}

	updated, err := uc.Update(context.Background(), "c1", "admin", domain.RoleAdmin, domain.CampaignPatch{Title: &title})
	if err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
	if updated.Title != "New title" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
}

func TestUpdateCampaignTargetValidation(t *testing.T) {
	m := newMemStores()
	seedCampaign(m, "c1", "olivia", 0, true)
	uc := NewCampaignUsecase(m.stores())

	bad := -5.0
	_, err := uc.Update(context.Background(), "c1", "olivia", domain.RoleOrganizer, domain.CampaignPatch{Target: &bad})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestApproveCampaignIsIdempotent(t *testing.T) {
	m := newMemStores()
	seedCampaign(m, "c1", "olivia", 0, false)
	uc := NewCampaignUsecase(m.stores())

	if _, err := uc.Approve(context.Background(), "c1"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	campaign, err := uc.Approve(context.Background(), "c1")
	if err != nil {
		t.Fatalf("re-approve failed: %v", err)
	}
	if !campaign.IsApproved {
		t.Fatalf("expected campaign approved")
	}
}

func TestCloseCampaignOnce(t *testing.T) {
	m := newMemStores()
	seedCampaign(m, "c1", "olivia", 0, true)
	uc := NewCampaignUsecase(m.stores())

	campaign, err := uc.Close(context.Background(), "c1", "olivia", domain.RoleOrganizer, "")
	if err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if !campaign.IsClosed || campaign.ClosedReason == "" {
		t.Fatalf("expected closed campaign with reason, got %+v", campaign)
	}

	_, err = uc.Close(context.Background(), "c1", "olivia", domain.RoleOrganizer, "")
	if !errors.Is(err, domain.ErrState) {
		t.Fatalf("expected state error on double close, got %v", err)
	}
}

func TestDeleteCampaignWithFundsConflicts(t *testing.T) {
	m := newMemStores()
	seedCampaign(m, "c1", "olivia", 0.01, true)
	uc := NewCampaignUsecase(m.stores())

	err := uc.Delete(context.Background(), "c1", "olivia", domain.RoleOrganizer)
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected conflict error, got %v", err)
	}
	if _, ok := m.campaigns["c1"]; !ok {
		t.Fatalf("campaign must not be deleted")
	}
}

func TestDeleteCampaignWithoutFunds(t *testing.T) {
	m := newMemStores()
	seedCampaign(m, "c1", "olivia", 0, true)
	uc := NewCampaignUsecase(m.stores())

	if err := uc.Delete(context.Background(), "c1", "olivia", domain.RoleOrganizer); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := m.campaigns["c1"]; ok {
		t.Fatalf("expected campaign deleted")
	}
}

func TestGetCampaignHidesUnapproved(t *testing.T) {
	m := newMemStores()
	seedCampaign(m, "c1", "olivia", 0, false)
	uc := NewCampaignUsecase(m.stores())

	if _, err := uc.Get(context.Background(), "c1", "stranger", domain.RoleDonor); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for stranger, got %v", err)
	}
	if _, err := uc.Get(context.Background(), "c1", "olivia", domain.RoleOrganizer); err != nil {
		t.Fatalf("owner must see own unapproved campaign: %v", err)
	}
	if _, err := uc.Get(context.Background(), "c1", "admin", domain.RoleAdmin); err != nil {
		t.Fatalf("admin must see unapproved campaign: %v", err)
	}
}

func TestListCampaignsVisibility(t *testing.T) {
	m := newMemStores()
	seedCampaign(m, "c1", "olivia", 0, true)
	seedCampaign(m, "c2", "olivia", 0, false)
	uc := NewCampaignUsecase(m.stores())

	// Strangers see only approved campaigns.
	items, _, err := uc.List(context.Background(), domain.CampaignFilter{}, "stranger", domain.RoleDonor, 1, 20)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != "c1" {
		t.Fatalf("expected only approved campaign, got %v", items)
	}

	// Owners listing their own also see unapproved ones.
	items, _, err = uc.List(context.Background(), domain.CampaignFilter{OwnerID: "olivia"}, "olivia", domain.RoleOrganizer, 1, 20)
	if err != nil {
		t.Fatalf("owner list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected both campaigns for owner, got %d", len(items))
	}

	// Admins see everything.
	items, _, err = uc.List(context.Background(), domain.CampaignFilter{}, "admin", domain.RoleAdmin, 1, 20)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected both campaigns for admin, got %d", len(items))
	}
}

func TestListCampaignsSearch(t *testing.T) {
	m := newMemStores()
	water := seedCampaign(m, "c1", "olivia", 0, true)
	water.Title = "Clean water for villages"
	m.campaigns["c1"] = water
	seedCampaign(m, "c2", "olivia", 0, true)
	uc := NewCampaignUsecase(m.stores())

	items, _, err := uc.List(context.Background(), domain.CampaignFilter{Search: "water"}, "", domain.RoleDonor, 1, 20)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != "c1" {
		t.Fatalf("expected title match, got %v", items)
	}
}
