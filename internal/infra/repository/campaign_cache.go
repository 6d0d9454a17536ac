package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/zeebo/xxh3"

	"github.com/causewayhq/causeway/internal/domain"
	"github.com/causewayhq/causeway/internal/usecase"
)

const campaignListCacheTTL = 30 // seconds

type cachedCampaignPage struct {
	Campaigns []domain.Campaign `json:"campaigns"`
	Total     int64             `json:"total"`
}

// CachedCampaignRepository caches public campaign listings in memcached.
// Only the anonymous browse query (approved, not owner-scoped) is cached;
// everything else passes through. Writes bump a generation counter instead
// of enumerating keys.
type CachedCampaignRepository struct {
	inner usecase.CampaignRepository
	mc    *memcache.Client
	gen   atomic.Uint64
}

func NewCachedCampaignRepository(inner usecase.CampaignRepository, mc *memcache.Client) *CachedCampaignRepository {
	return &CachedCampaignRepository{
		inner: inner,
		mc:    mc,
	}
}

func (r *CachedCampaignRepository) listKey(filter domain.CampaignFilter, offset, limit int) string {
	seed := fmt.Sprintf("%d:%s:%d:%d", r.gen.Load(), filter.Search, offset, limit)
	return fmt.Sprintf("cw:campaigns:%x", xxh3.HashString(seed))
}

func (r *CachedCampaignRepository) cacheable(filter domain.CampaignFilter) bool {
	return filter.ApprovedOnly && filter.OwnerID == ""
}

func (r *CachedCampaignRepository) List(ctx context.Context, filter domain.CampaignFilter, offset, limit int) ([]domain.Campaign, int64, error) {
	if !r.cacheable(filter) {
		return r.inner.List(ctx, filter, offset, limit)
	}

	key := r.listKey(filter, offset, limit)
	if item, err := r.mc.Get(key); err == nil {
		var page cachedCampaignPage
		if err := json.Unmarshal(item.Value, &page); err == nil {
			return page.Campaigns, page.Total, nil
		}
	}

	campaigns, total, err := r.inner.List(ctx, filter, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	if raw, err := json.Marshal(cachedCampaignPage{Campaigns: campaigns, Total: total}); err == nil {
		r.mc.Set(&memcache.Item{
			Key:        key,
			Value:      raw,
			Expiration: campaignListCacheTTL,
		})
	}

	return campaigns, total, nil
}

func (r *CachedCampaignRepository) invalidate() {
	r.gen.Add(1)
}

func (r *CachedCampaignRepository) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	created, err := r.inner.Create(ctx, campaign)
	if err == nil {
		r.invalidate()
	}
	return created, err
}

func (r *CachedCampaignRepository) Get(ctx context.Context, id string) (domain.Campaign, error) {
	return r.inner.Get(ctx, id)
}

func (r *CachedCampaignRepository) GetForUpdate(ctx context.Context, id string) (domain.Campaign, error) {
	return r.inner.GetForUpdate(ctx, id)
}

func (r *CachedCampaignRepository) Update(ctx context.Context, campaign domain.Campaign) error {
	err := r.inner.Update(ctx, campaign)
	if err == nil {
		r.invalidate()
	}
	return err
}

func (r *CachedCampaignRepository) Delete(ctx context.Context, id string) error {
	err := r.inner.Delete(ctx, id)
	if err == nil {
		r.invalidate()
	}
	return err
}

func (r *CachedCampaignRepository) CloseOpenByOwner(ctx context.Context, ownerID, reason string) error {
	err := r.inner.CloseOpenByOwner(ctx, ownerID, reason)
	if err == nil {
		r.invalidate()
	}
	return err
}

func (r *CachedCampaignRepository) AdjustRaised(ctx context.Context, id string, delta float64) error {
	err := r.inner.AdjustRaised(ctx, id, delta)
	if err == nil {
		r.invalidate()
	}
	return err
}
