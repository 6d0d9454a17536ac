package usecase

import (
	"context"
	"strings"

	"github.com/causewayhq/causeway/internal/domain"
)

// memStores is an in-memory stand-in for the persistence layer. memAtomic
// snapshots and restores it so tests can observe all-or-nothing semantics.
type memStores struct {
	users       map[string]domain.User
	apps        map[string]domain.OrganizerApplication
	campaigns   map[string]domain.Campaign
	donations   map[string]domain.Donation
	withdrawals map[string]domain.WithdrawalRequest

	failCloseOpenByOwner error
	failRejectPending    error
	failAdjustRaised     error
}

func newMemStores() *memStores {
	return &memStores{
		users:       map[string]domain.User{},
		apps:        map[string]domain.OrganizerApplication{},
		campaigns:   map[string]domain.Campaign{},
		donations:   map[string]domain.Donation{},
		withdrawals: map[string]domain.WithdrawalRequest{},
	}
}

func (m *memStores) stores() Stores {
	return Stores{
		Users:        &memUserRepo{m},
		Applications: &memApplicationRepo{m},
		Campaigns:    &memCampaignRepo{m},
		Donations:    &memDonationRepo{m},
		Withdrawals:  &memWithdrawalRepo{m},
	}
}

type memSnapshot struct {
	users       map[string]domain.User
	apps        map[string]domain.OrganizerApplication
	campaigns   map[string]domain.Campaign
	donations   map[string]domain.Donation
	withdrawals map[string]domain.WithdrawalRequest
}

func copyMap[V any](src map[string]V) map[string]V {
	dst := make(map[string]V, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func (m *memStores) snapshot() memSnapshot {
	return memSnapshot{
		users:       copyMap(m.users),
		apps:        copyMap(m.apps),
		campaigns:   copyMap(m.campaigns),
		donations:   copyMap(m.donations),
		withdrawals: copyMap(m.withdrawals),
	}
}

func (m *memStores) restore(s memSnapshot) {
	m.users = s.users
	m.apps = s.apps
	m.campaigns = s.campaigns
	m.donations = s.donations
	m.withdrawals = s.withdrawals
}

// memAtomic rolls the stores back when fn fails, mirroring a transaction.
type memAtomic struct {
	m *memStores
}

func (a *memAtomic) Atomic(ctx context.Context, fn func(tx Stores) error) error {
	snap := a.m.snapshot()
	if err := fn(a.m.stores()); err != nil {
		a.m.restore(snap)
		return err
	}
	return nil
}

// --- users ---

type memUserRepo struct{ m *memStores }

func (r *memUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	r.m.users[user.ID] = user
	return user, nil
}

func (r *memUserRepo) Get(ctx context.Context, id string) (domain.User, error) {
	user, ok := r.m.users[id]
	if !ok {
		return domain.User{}, domain.NotFoundError{Resource: "user"}
	}
	return user, nil
}

func (r *memUserRepo) GetForUpdate(ctx context.Context, id string) (domain.User, error) {
	return r.Get(ctx, id)
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, user := range r.m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return domain.User{}, domain.NotFoundError{Resource: "user"}
}

func (r *memUserRepo) Update(ctx context.Context, user domain.User) error {
	if _, ok := r.m.users[user.ID]; !ok {
		return domain.NotFoundError{Resource: "user"}
	}
	r.m.users[user.ID] = user
	return nil
}

func (r *memUserRepo) ListOrganizers(ctx context.Context, filter domain.OrganizerFilter, offset, limit int) ([]domain.User, int64, error) {
	var out []domain.User
	for _, user := range r.m.users {
		switch filter {
		case domain.OrganizerFilterActive:
			if user.Role == domain.RoleOrganizer && user.IsOrganizerApproved && !user.IsOrganizerRevoked {
				out = append(out, user)
			}
		case domain.OrganizerFilterRevoked:
			if user.Role == domain.RoleOrganizer && user.IsOrganizerRevoked {
				out = append(out, user)
			}
		case domain.OrganizerFilterPending:
			for _, app := range r.m.apps {
				if app.UserID == user.ID && app.Status == domain.ApplicationPending {
					out = append(out, user)
					break
				}
			}
		}
	}
	return out, int64(len(out)), nil
}

// --- applications ---

type memApplicationRepo struct{ m *memStores }

func (r *memApplicationRepo) Create(ctx context.Context, app domain.OrganizerApplication) (domain.OrganizerApplication, error) {
	r.m.apps[app.ID] = app
	return app, nil
}

func (r *memApplicationRepo) Get(ctx context.Context, id string) (domain.OrganizerApplication, error) {
	app, ok := r.m.apps[id]
	if !ok {
		return domain.OrganizerApplication{}, domain.NotFoundError{Resource: "application"}
	}
	return app, nil
}

func (r *memApplicationRepo) GetForUpdate(ctx context.Context, id string) (domain.OrganizerApplication, error) {
	return r.Get(ctx, id)
}

func (r *memApplicationRepo) GetLiveByUser(ctx context.Context, userID string) (domain.OrganizerApplication, error) {
	for _, app := range r.m.apps {
		if app.UserID == userID && (app.Status == domain.ApplicationPending || app.Status == domain.ApplicationApproved) {
			return app, nil
		}
	}
	return domain.OrganizerApplication{}, domain.NotFoundError{Resource: "application"}
}

func (r *memApplicationRepo) Update(ctx context.Context, app domain.OrganizerApplication) error {
	if _, ok := r.m.apps[app.ID]; !ok {
		return domain.NotFoundError{Resource: "application"}
	}
	r.m.apps[app.ID] = app
	return nil
}

func (r *memApplicationRepo) List(ctx context.Context, status *domain.ApplicationStatus, offset, limit int) ([]domain.OrganizerApplication, int64, error) {
	var out []domain.OrganizerApplication
	for _, app := range r.m.apps {
		if status == nil || app.Status == *status {
			out = append(out, app)
		}
	}
	return out, int64(len(out)), nil
}

// --- campaigns ---

type memCampaignRepo struct{ m *memStores }

func (r *memCampaignRepo) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	r.m.campaigns[campaign.ID] = campaign
	return campaign, nil
}

func (r *memCampaignRepo) Get(ctx context.Context, id string) (domain.Campaign, error) {
	campaign, ok := r.m.campaigns[id]
	if !ok {
		return domain.Campaign{}, domain.NotFoundError{Resource: "campaign"}
	}
	return campaign, nil
}

func (r *memCampaignRepo) GetForUpdate(ctx context.Context, id string) (domain.Campaign, error) {
	return r.Get(ctx, id)
}

func (r *memCampaignRepo) Update(ctx context.Context, campaign domain.Campaign) error {
	if _, ok := r.m.campaigns[campaign.ID]; !ok {
		return domain.NotFoundError{Resource: "campaign"}
	}
	r.m.campaigns[campaign.ID] = campaign
	return nil
}

func (r *memCampaignRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.m.campaigns[id]; !ok {
		return domain.NotFoundError{Resource: "campaign"}
	}
	delete(r.m.campaigns, id)
	return nil
}

func (r *memCampaignRepo) List(ctx context.Context, filter domain.CampaignFilter, offset, limit int) ([]domain.Campaign, int64, error) {
	var out []domain.Campaign
	for _, campaign := range r.m.campaigns {
		if filter.OwnerID != "" && campaign.OwnerID != filter.OwnerID {
			continue
		}
		if filter.ApprovedOnly && !campaign.IsApproved {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(campaign.Title), strings.ToLower(filter.Search)) {
			continue
		}
		out = append(out, campaign)
	}
	return out, int64(len(out)), nil
}

func (r *memCampaignRepo) CloseOpenByOwner(ctx context.Context, ownerID, reason string) error {
	if r.m.failCloseOpenByOwner != nil {
		return r.m.failCloseOpenByOwner
	}
	for id, campaign := range r.m.campaigns {
		if campaign.OwnerID == ownerID && !campaign.IsClosed {
			campaign.IsClosed = true
			campaign.ClosedReason = reason
			r.m.campaigns[id] = campaign
		}
	}
	return nil
}

func (r *memCampaignRepo) AdjustRaised(ctx context.Context, id string, delta float64) error {
	if r.m.failAdjustRaised != nil {
		return r.m.failAdjustRaised
	}
	campaign, ok := r.m.campaigns[id]
	if !ok {
		return domain.NotFoundError{Resource: "campaign"}
	}
	campaign.Raised += delta
	if campaign.Raised < 0 {
		campaign.Raised = 0
	}
	r.m.campaigns[id] = campaign
	return nil
}

// --- donations ---

type memDonationRepo struct{ m *memStores }

func (r *memDonationRepo) Create(ctx context.Context, donation domain.Donation) (domain.Donation, error) {
	r.m.donations[donation.ID] = donation
	return donation, nil
}

func (r *memDonationRepo) Get(ctx context.Context, id string) (domain.Donation, error) {
	donation, ok := r.m.donations[id]
	if !ok {
		return domain.Donation{}, domain.NotFoundError{Resource: "donation"}
	}
	return donation, nil
}

func (r *memDonationRepo) GetForUpdate(ctx context.Context, id string) (domain.Donation, error) {
	return r.Get(ctx, id)
}

func (r *memDonationRepo) Update(ctx context.Context, donation domain.Donation) error {
	if _, ok := r.m.donations[donation.ID]; !ok {
		return domain.NotFoundError{Resource: "donation"}
	}
	r.m.donations[donation.ID] = donation
	return nil
}

func (r *memDonationRepo) ListByCampaign(ctx context.Context, campaignID string, offset, limit int) ([]domain.Donation, int64, error) {
	var out []domain.Donation
	for _, donation := range r.m.donations {
		if donation.CampaignID == campaignID {
			out = append(out, donation)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memDonationRepo) ListByDonor(ctx context.Context, donorID string, offset, limit int) ([]domain.Donation, int64, error) {
	var out []domain.Donation
	for _, donation := range r.m.donations {
		if donation.DonorID == donorID {
			out = append(out, donation)
		}
	}
	return out, int64(len(out)), nil
}

func (r *memDonationRepo) Stats(ctx context.Context, campaignID string) (domain.DonationStats, error) {
	var stats domain.DonationStats
	for _, donation := range r.m.donations {
		if donation.Status != domain.DonationCompleted {
			continue
		}
		if campaignID != "" && donation.CampaignID != campaignID {
			continue
		}
		if stats.Count == 0 || donation.Amount < stats.Min {
			stats.Min = donation.Amount
		}
		if donation.Amount > stats.Max {
			stats.Max = donation.Amount
		}
		stats.Sum += donation.Amount
		stats.Count++
	}
	if stats.Count > 0 {
		stats.Average = stats.Sum / float64(stats.Count)
	}
	return stats, nil
}

// --- withdrawals ---

type memWithdrawalRepo struct{ m *memStores }

func (r *memWithdrawalRepo) Create(ctx context.Context, req domain.WithdrawalRequest) (domain.WithdrawalRequest, error) {
	r.m.withdrawals[req.ID] = req
	return req, nil
}

func (r *memWithdrawalRepo) Get(ctx context.Context, id string) (domain.WithdrawalRequest, error) {
	req, ok := r.m.withdrawals[id]
	if !ok {
		return domain.WithdrawalRequest{}, domain.NotFoundError{Resource: "withdrawal"}
	}
	return req, nil
}

func (r *memWithdrawalRepo) GetForUpdate(ctx context.Context, id string) (domain.WithdrawalRequest, error) {
	return r.Get(ctx, id)
}

func (r *memWithdrawalRepo) Update(ctx context.Context, req domain.WithdrawalRequest) error {
	if _, ok := r.m.withdrawals[req.ID]; !ok {
		return domain.NotFoundError{Resource: "withdrawal"}
	}
	r.m.withdrawals[req.ID] = req
	return nil
}

func (r *memWithdrawalRepo) HasOpen(ctx context.Context, campaignID string) (bool, error) {
	for _, req := range r.m.withdrawals {
		if req.CampaignID == campaignID && (req.Status == domain.WithdrawalPending || req.Status == domain.WithdrawalApproved) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memWithdrawalRepo) List(ctx context.Context, organizerID string, status *domain.WithdrawalStatus, offset, limit int) ([]domain.WithdrawalRequest, int64, error) {
	var out []domain.WithdrawalRequest
	for _, req := range r.m.withdrawals {
		if organizerID != "" && req.OrganizerID != organizerID {
			continue
		}
		if status != nil && req.Status != *status {
			continue
		}
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

func (r *memWithdrawalRepo) RejectPendingByOrganizer(ctx context.Context, organizerID, reviewedBy, message string) error {
	if r.m.failRejectPending != nil {
		return r.m.failRejectPending
	}
	for id, req := range r.m.withdrawals {
		if req.OrganizerID == organizerID && req.Status == domain.WithdrawalPending {
			req.Status = domain.WithdrawalRejected
			req.ReviewedBy = &reviewedBy
			req.AdminMessage = message
			r.m.withdrawals[id] = req
		}
	}
	return nil
}

// --- seeding helpers ---

func seedUser(m *memStores, id string, role domain.Role) domain.User {
	user := domain.User{
		ID:    id,
		Email: id + "@example.com",
		Name:  id,
		Role:  role,
	}
	m.users[id] = user
	return user
}

func seedOrganizer(m *memStores, id string) domain.User {
	user := seedUser(m, id, domain.RoleOrganizer)
	user.IsOrganizerApproved = true
	m.users[id] = user
	return user
}

func seedCampaign(m *memStores, id, ownerID string, raised float64, approved bool) domain.Campaign {
	campaign := domain.Campaign{
		ID:         id,
		OwnerID:    ownerID,
		Title:      "Campaign " + id,
		Target:     1000,
		Raised:     raised,
		IsApproved: approved,
	}
	m.campaigns[id] = campaign
	return campaign
}

func seedDonation(m *memStores, id, campaignID string, amount float64, status domain.DonationStatus) domain.Donation {
	donation := domain.Donation{
		ID:         id,
		CampaignID: campaignID,
		DonorEmail: "donor@example.com",
		Amount:     amount,
		Method:     "card",
		Status:     status,
	}
	m.donations[id] = donation
	return donation
}

func seedWithdrawal(m *memStores, id, organizerID, campaignID string, amount float64, status domain.WithdrawalStatus) domain.WithdrawalRequest {
	req := domain.WithdrawalRequest{
		ID:              id,
		OrganizerID:     organizerID,
		CampaignID:      campaignID,
		AmountRequested: amount,
		PayoutMethod:    "bank_transfer",
		Status:          status,
	}
	m.withdrawals[id] = req
	return req
}
