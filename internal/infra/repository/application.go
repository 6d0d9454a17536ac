package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/causewayhq/causeway/internal/domain"
	"github.com/causewayhq/causeway/internal/infra/database/models"
)

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func applicationToDomain(m models.OrganizerApplication) domain.OrganizerApplication {
	return domain.OrganizerApplication{
		ID:               m.ID,
		UserID:           m.UserID,
		OrganizationName: m.OrganizationName,
		Description:      m.Description,
		Status:           domain.ApplicationStatus(m.Status),
		ReviewedBy:       m.ReviewedBy,
		ReviewedAt:       m.ReviewedAt,
		RejectionReason:  m.RejectionReason,
		CreatedAt:        m.CDate,
	}
}

func applicationToModel(a domain.OrganizerApplication) models.OrganizerApplication {
	return models.OrganizerApplication{
		ID:               a.ID,
		UserID:           a.UserID,
		OrganizationName: a.OrganizationName,
		Description:      a.Description,
		Status:           string(a.Status),
		ReviewedBy:       a.ReviewedBy,
		ReviewedAt:       a.ReviewedAt,
		RejectionReason:  a.RejectionReason,
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, app domain.OrganizerApplication) (domain.OrganizerApplication, error) {
	m := applicationToModel(app)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return domain.OrganizerApplication{}, err
	}
	return applicationToDomain(m), nil
}

func (r *ApplicationRepository) Get(ctx context.Context, id string) (domain.OrganizerApplication, error) {
	var m models.OrganizerApplication
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrganizerApplication{}, domain.NotFoundError{Resource: "application"}
		}
		return domain.OrganizerApplication{}, err
	}
	return applicationToDomain(m), nil
}

func (r *ApplicationRepository) GetForUpdate(ctx context.Context, id string) (domain.OrganizerApplication, error) {
	var m models.OrganizerApplication
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrganizerApplication{}, domain.NotFoundError{Resource: "application"}
		}
		return domain.OrganizerApplication{}, err
	}
	return applicationToDomain(m), nil
}

func (r *ApplicationRepository) GetLiveByUser(ctx context.Context, userID string) (domain.OrganizerApplication, error) {
	var m models.OrganizerApplication
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status IN ?", userID,
			[]string{string(domain.ApplicationPending), string(domain.ApplicationApproved)}).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.OrganizerApplication{}, domain.NotFoundError{Resource: "application"}
		}
		return domain.OrganizerApplication{}, err
	}
	return applicationToDomain(m), nil
}

func (r *ApplicationRepository) Update(ctx context.Context, app domain.OrganizerApplication) error {
	m := applicationToModel(app)
	res := r.db.WithContext(ctx).Model(&models.OrganizerApplication{}).
		Where("id = ?", app.ID).
		Select("status", "reviewed_by", "reviewed_at", "rejection_reason").
		Updates(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "application"}
	}
	return nil
}

func (r *ApplicationRepository) List(ctx context.Context, status *domain.ApplicationStatus, offset, limit int) ([]domain.OrganizerApplication, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.OrganizerApplication{})
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.OrganizerApplication
	err := query.Order("c_date DESC").Offset(offset).Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	apps := make([]domain.OrganizerApplication, 0, len(rows))
	for _, m := range rows {
		apps = append(apps, applicationToDomain(m))
	}
	return apps, total, nil
}
