package models

import (
	"time"
)

type WithdrawalRequest struct {
	ID               string     `json:"id" gorm:"primaryKey;type:text"`
	OrganizerID      string     `json:"organizerId" gorm:"type:text;not null;index"`
	Organizer        User       `json:"-" gorm:"foreignKey:OrganizerID;references:ID;constraint:OnDelete:CASCADE;"`
	CampaignID       string     `json:"campaignId" gorm:"type:text;not null;index"`
	Campaign         Campaign   `json:"-" gorm:"foreignKey:CampaignID;references:ID;constraint:OnDelete:CASCADE;"`
	AmountRequested  float64    `json:"amountRequested" gorm:"type:numeric(14,2);not null"`
	PayoutMethod     string     `json:"payoutMethod" gorm:"type:text;not null"`
	PayoutDetails    string     `json:"payoutDetails,omitempty" gorm:"type:text"`
	Status           string     `json:"status" gorm:"type:text;not null;default:'pending';index"`
	ReviewedBy       *string    `json:"reviewedBy,omitempty" gorm:"type:text"`
	AdminMessage     string     `json:"adminMessage,omitempty" gorm:"type:text"`
	PaidAt           *time.Time `json:"paidAt,omitempty" gorm:"type:timestamp with time zone"`
	PaymentReference string     `json:"paymentReference,omitempty" gorm:"type:text"`
	CDate            time.Time  `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate            time.Time  `json:"mdate" gorm:"type:timestamp with time zone;not null;default:clock_timestamp();autoUpdateTime"`
}
