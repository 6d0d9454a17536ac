package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/causewayhq/causeway/internal/usecase"
)

// NewStores binds every repository to the given database handle. Handing a
// transaction handle yields a transactional view of all stores.
func NewStores(db *gorm.DB) usecase.Stores {
	return usecase.Stores{
		Users:        NewUserRepository(db),
		Applications: NewApplicationRepository(db),
		Campaigns:    NewCampaignRepository(db),
		Donations:    NewDonationRepository(db),
		Withdrawals:  NewWithdrawalRepository(db),
	}
}

// UnitOfWork exposes the database transaction as the workflow layer's
// atomic boundary.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Atomic(ctx context.Context, fn func(tx usecase.Stores) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStores(tx))
	})
}
