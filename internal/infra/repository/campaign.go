package repository

import (
	"context"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/causewayhq/causeway/internal/domain"
	"github.com/causewayhq/causeway/internal/infra/database/models"
)

type CampaignRepository struct {
	db *gorm.DB
}

func NewCampaignRepository(db *gorm.DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

func campaignToDomain(m models.Campaign) domain.Campaign {
	var images []string
	if m.Images != "" {
		json.Unmarshal([]byte(m.Images), &images)
	}
	return domain.Campaign{
		ID:           m.ID,
		OwnerID:      m.OwnerID,
		Title:        m.Title,
		Description:  m.Description,
		Images:       images,
		Target:       m.Target,
		Raised:       m.Raised,
		IsApproved:   m.IsApproved,
		IsClosed:     m.IsClosed,
		ClosedReason: m.ClosedReason,
		CreatedAt:    m.CDate,
		UpdatedAt:    m.MDate,
	}
}

func campaignToModel(c domain.Campaign) (models.Campaign, error) {
	images := c.Images
	if images == nil {
		images = []string{}
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return models.Campaign{}, err
	}
	return models.Campaign{
		ID:           c.ID,
		OwnerID:      c.OwnerID,
		Title:        c.Title,
		Description:  c.Description,
		Images:       string(raw),
		Target:       c.Target,
		Raised:       c.Raised,
		IsApproved:   c.IsApproved,
		IsClosed:     c.IsClosed,
		ClosedReason: c.ClosedReason,
	}, nil
}

func (r *CampaignRepository) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	m, err := campaignToModel(campaign)
	if err != nil {
		return domain.Campaign{}, err
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Campaign{}, err
	}
	return campaignToDomain(m), nil
}

func (r *CampaignRepository) Get(ctx context.Context, id string) (domain.Campaign, error) {
	var m models.Campaign
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Campaign{}, domain.NotFoundError{Resource: "campaign"}
		}
		return domain.Campaign{}, err
	}
	return campaignToDomain(m), nil
}

func (r *CampaignRepository) GetForUpdate(ctx context.Context, id string) (domain.Campaign, error) {
	var m models.Campaign
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Campaign{}, domain.NotFoundError{Resource: "campaign"}
		}
		return domain.Campaign{}, err
	}
	return campaignToDomain(m), nil
}

func (r *CampaignRepository) Update(ctx context.Context, campaign domain.Campaign) error {
	m, err := campaignToModel(campaign)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).Model(&models.Campaign{}).
		Where("id = ?", campaign.ID).
		Select("title", "description", "images", "target", "is_approved", "is_closed", "closed_reason").
		Updates(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "campaign"}
	}
	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Campaign{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "campaign"}
	}
	return nil
}

func (r *CampaignRepository) List(ctx context.Context, filter domain.CampaignFilter, offset, limit int) ([]domain.Campaign, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Campaign{})
	if filter.OwnerID != "" {
		query = query.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.ApprovedOnly {
		query = query.Where("is_approved = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Campaign
	err := query.Order("c_date DESC").Offset(offset).Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	campaigns := make([]domain.Campaign, 0, len(rows))
	for _, m := range rows {
		campaigns = append(campaigns, campaignToDomain(m))
	}
	return campaigns, total, nil
}

func (r *CampaignRepository) CloseOpenByOwner(ctx context.Context, ownerID, reason string) error {
	return r.db.WithContext(ctx).Model(&models.Campaign{}).
		Where("owner_id = ? AND is_closed = ?", ownerID, false).
		Updates(map[string]any{
			"is_closed":     true,
			"closed_reason": reason,
		}).Error
}

func (r *CampaignRepository) AdjustRaised(ctx context.Context, id string, delta float64) error {
	res := r.db.WithContext(ctx).Model(&models.Campaign{}).
		Where("id = ?", id).
		Update("raised", gorm.Expr("GREATEST(raised + ?, 0)", delta))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "campaign"}
	}
	return nil
}
