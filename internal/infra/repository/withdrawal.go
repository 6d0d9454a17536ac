package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/causewayhq/causeway/internal/domain"
	"github.com/causewayhq/causeway/internal/infra/database/models"
)

type WithdrawalRepository struct {
	db *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) *WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

func withdrawalToDomain(m models.WithdrawalRequest) domain.WithdrawalRequest {
	return domain.WithdrawalRequest{
		ID:               m.ID,
		OrganizerID:      m.OrganizerID,
		CampaignID:       m.CampaignID,
		AmountRequested:  m.AmountRequested,
		PayoutMethod:     m.PayoutMethod,
		PayoutDetails:    m.PayoutDetails,
		Status:           domain.WithdrawalStatus(m.Status),
		ReviewedBy:       m.ReviewedBy,
		AdminMessage:     m.AdminMessage,
		PaidAt:           m.PaidAt,
		PaymentReference: m.PaymentReference,
		CreatedAt:        m.CDate,
		UpdatedAt:        m.MDate,
	}
}

func withdrawalToModel(w domain.WithdrawalRequest) models.WithdrawalRequest {
	return models.WithdrawalRequest{
		ID:               w.ID,
		OrganizerID:      w.OrganizerID,
		CampaignID:       w.CampaignID,
		AmountRequested:  w.AmountRequested,
		PayoutMethod:     w.PayoutMethod,
		PayoutDetails:    w.PayoutDetails,
		Status:           string(w.Status),
		ReviewedBy:       w.ReviewedBy,
		AdminMessage:     w.AdminMessage,
		PaidAt:           w.PaidAt,
		PaymentReference: w.PaymentReference,
	}
}

func (r *WithdrawalRepository) Create(ctx context.Context, req domain.WithdrawalRequest) (domain.WithdrawalRequest, error) {
	m := withdrawalToModel(req)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.WithdrawalRequest{}, err
	}
	return withdrawalToDomain(m), nil
}

func (r *WithdrawalRepository) Get(ctx context.Context, id string) (domain.WithdrawalRequest, error) {
	var m models.WithdrawalRequest
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.WithdrawalRequest{}, domain.NotFoundError{Resource: "withdrawal"}
		}
		return domain.WithdrawalRequest{}, err
	}
	return withdrawalToDomain(m), nil
}

func (r *WithdrawalRepository) GetForUpdate(ctx context.Context, id string) (domain.WithdrawalRequest, error) {
	var m models.WithdrawalRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.WithdrawalRequest{}, domain.NotFoundError{Resource: "withdrawal"}
		}
		return domain.WithdrawalRequest{}, err
	}
	return withdrawalToDomain(m), nil
}

func (r *WithdrawalRepository) Update(ctx context.Context, req domain.WithdrawalRequest) error {
	m := withdrawalToModel(req)
	res := r.db.WithContext(ctx).Model(&models.WithdrawalRequest{}).
		Where("id = ?", req.ID).
		Select("status", "reviewed_by", "admin_message", "paid_at", "payment_reference").
		Updates(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "withdrawal"}
	}
	return nil
}

func (r *WithdrawalRepository) HasOpen(ctx context.Context, campaignID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.WithdrawalRequest{}).
		Where("campaign_id = ? AND status IN ?", campaignID,
			[]string{string(domain.WithdrawalPending), string(domain.WithdrawalApproved)}).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *WithdrawalRepository) List(ctx context.Context, organizerID string, status *domain.WithdrawalStatus, offset, limit int) ([]domain.WithdrawalRequest, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.WithdrawalRequest{})
	if organizerID != "" {
		query = query.Where("organizer_id = ?", organizerID)
	}
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.WithdrawalRequest
	err := query.Order("c_date DESC").Offset(offset).Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	reqs := make([]domain.WithdrawalRequest, 0, len(rows))
	for _, m := range rows {
		reqs = append(reqs, withdrawalToDomain(m))
	}
	return reqs, total, nil
}

func (r *WithdrawalRepository) RejectPendingByOrganizer(ctx context.Context, organizerID, reviewedBy, message string) error {
	return r.db.WithContext(ctx).Model(&models.WithdrawalRequest{}).
		Where("organizer_id = ? AND status = ?", organizerID, string(domain.WithdrawalPending)).
		Updates(map[string]any{
			"status":        string(domain.WithdrawalRejected),
			"reviewed_by":   reviewedBy,
			"admin_message": message,
		}).Error
}
