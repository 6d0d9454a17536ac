package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/causewayhq/causeway/internal/domain"
	"github.com/causewayhq/causeway/internal/infra/database/models"
)

type DonationRepository struct {
	db *gorm.DB
}

func NewDonationRepository(db *gorm.DB) *DonationRepository {
	return &DonationRepository{db: db}
}

func donationToDomain(m models.Donation) domain.Donation {
	return domain.Donation{
		ID:               m.ID,
		CampaignID:       m.CampaignID,
		DonorID:          m.DonorID,
		DonorEmail:       m.DonorEmail,
		Amount:           m.Amount,
		Method:           m.Method,
		Status:           domain.DonationStatus(m.Status),
		PaymentReference: m.PaymentReference,
		Message:          m.Message,
		CreatedAt:        m.CDate,
		UpdatedAt:        m.MDate,
	}
}

func donationToModel(d domain.Donation) models.Donation {
	return models.Donation{
		ID:               d.ID,
		CampaignID:       d.CampaignID,
		DonorID:          d.DonorID,
		DonorEmail:       d.DonorEmail,
		Amount:           d.Amount,
		Method:           d.Method,
		Status:           string(d.Status),
		PaymentReference: d.PaymentReference,
		Message:          d.Message,
	}
}

func (r *DonationRepository) Create(ctx context.Context, donation domain.Donation) (domain.Donation, error) {
	m := donationToModel(donation)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.Donation{}, err
	}
	return donationToDomain(m), nil
}

func (r *DonationRepository) Get(ctx context.Context, id string) (domain.Donation, error) {
	var m models.Donation
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Donation{}, domain.NotFoundError{Resource: "donation"}
		}
		return domain.Donation{}, err
	}
	return donationToDomain(m), nil
}

func (r *DonationRepository) GetForUpdate(ctx context.Context, id string) (domain.Donation, error) {
	var m models.Donation
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Donation{}, domain.NotFoundError{Resource: "donation"}
		}
		return domain.Donation{}, err
	}
	return donationToDomain(m), nil
}

func (r *DonationRepository) Update(ctx context.Context, donation domain.Donation) error {
	m := donationToModel(donation)
	res := r.db.WithContext(ctx).Model(&models.Donation{}).
		Where("id = ?", donation.ID).
		Select("status", "payment_reference").
		Updates(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "donation"}
	}
	return nil
}

func (r *DonationRepository) ListByCampaign(ctx context.Context, campaignID string, offset, limit int) ([]domain.Donation, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&models.Donation{}).
		Where("campaign_id = ?", campaignID), offset, limit)
}

func (r *DonationRepository) ListByDonor(ctx context.Context, donorID string, offset, limit int) ([]domain.Donation, int64, error) {
	return r.list(ctx, r.db.WithContext(ctx).Model(&models.Donation{}).
		Where("donor_id = ?", donorID), offset, limit)
}

func (r *DonationRepository) list(ctx context.Context, query *gorm.DB, offset, limit int) ([]domain.Donation, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Donation
	err := query.Order("c_date DESC").Offset(offset).Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	donations := make([]domain.Donation, 0, len(rows))
	for _, m := range rows {
		donations = append(donations, donationToDomain(m))
	}
	return donations, total, nil
}

func (r *DonationRepository) Stats(ctx context.Context, campaignID string) (domain.DonationStats, error) {
	query := r.db.WithContext(ctx).Model(&models.Donation{}).
		Where("status = ?", string(domain.DonationCompleted))
	if campaignID != "" {
		query = query.Where("campaign_id = ?", campaignID)
	}

	var stats domain.DonationStats
	err := query.
		Select("COALESCE(SUM(amount), 0) AS sum, COUNT(*) AS count, COALESCE(AVG(amount), 0) AS average, COALESCE(MIN(amount), 0) AS min, COALESCE(MAX(amount), 0) AS max").
		Scan(&stats).Error
	if err != nil {
		return domain.DonationStats{}, err
	}
	return stats, nil
}
