package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/causewayhq/causeway/internal/domain"
	"github.com/causewayhq/causeway/internal/infra/database/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func userToDomain(m models.User) domain.User {
	return domain.User{
		ID:                  m.ID,
		Email:               m.Email,
		PasswordHash:        m.PasswordHash,
		Name:                m.Name,
		Role:                domain.Role(m.Role),
		EmailVerified:       m.EmailVerified,
		IsOrganizerApproved: m.IsOrganizerApproved,
		IsOrganizerRevoked:  m.IsOrganizerRevoked,
		RevokedAt:           m.RevokedAt,
		RevokedBy:           m.RevokedBy,
		RevocationReason:    m.RevocationReason,
		CreatedAt:           m.CDate,
		UpdatedAt:           m.MDate,
	}
}

func userToModel(u domain.User) models.User {
	return models.User{
		ID:                  u.ID,
		Email:               u.Email,
		PasswordHash:        u.PasswordHash,
		Name:                u.Name,
		Role:                string(u.Role),
		EmailVerified:       u.EmailVerified,
		IsOrganizerApproved: u.IsOrganizerApproved,
		IsOrganizerRevoked:  u.IsOrganizerRevoked,
		RevokedAt:           u.RevokedAt,
		RevokedBy:           u.RevokedBy,
		RevocationReason:    u.RevocationReason,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	m := userToModel(user)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.User{}, domain.ConflictError{Reason: "an account with this email already exists"}
		}
		return domain.User{}, err
	}
	return userToDomain(m), nil
}

func (r *UserRepository) Get(ctx context.Context, id string) (domain.User, error) {
	var m models.User
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.NotFoundError{Resource: "user"}
		}
		return domain.User{}, err
	}
	return userToDomain(m), nil
}

func (r *UserRepository) GetForUpdate(ctx context.Context, id string) (domain.User, error) {
	var m models.User
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.NotFoundError{Resource: "user"}
		}
		return domain.User{}, err
	}
	return userToDomain(m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var m models.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.NotFoundError{Resource: "user"}
		}
		return domain.User{}, err
	}
	return userToDomain(m), nil
}

func (r *UserRepository) Update(ctx context.Context, user domain.User) error {
	m := userToModel(user)
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", user.ID).
		Select("email", "password_hash", "name", "role", "email_verified",
			"is_organizer_approved", "is_organizer_revoked",
			"revoked_at", "revoked_by", "revocation_reason").
		Updates(&m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}

func (r *UserRepository) ListOrganizers(ctx context.Context, filter domain.OrganizerFilter, offset, limit int) ([]domain.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{})

	switch filter {
	case domain.OrganizerFilterActive:
		query = query.Where("role = ? AND is_organizer_approved = ? AND is_organizer_revoked = ?",
			string(domain.RoleOrganizer), true, false)
	case domain.OrganizerFilterRevoked:
		query = query.Where("role = ? AND is_organizer_revoked = ?", string(domain.RoleOrganizer), true)
	case domain.OrganizerFilterPending:
		pending := r.db.Model(&models.OrganizerApplication{}).
			Select("user_id").
			Where("status = ?", string(domain.ApplicationPending))
		query = query.Where("id IN (?)", pending)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.User
	err := query.Order("c_date DESC").Offset(offset).Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		users = append(users, userToDomain(m))
	}
	return users, total, nil
}
