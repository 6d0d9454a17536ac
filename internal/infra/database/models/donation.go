package models

import (
	"time"
)

type Donation struct {
	ID               string    `json:"id" gorm:"primaryKey;type:text"`
	CampaignID       string    `json:"campaignId" gorm:"type:text;not null;index"`
	Campaign         Campaign  `json:"-" gorm:"foreignKey:CampaignID;references:ID;constraint:OnDelete:CASCADE;"`
	DonorID          string    `json:"donorId,omitempty" gorm:"type:text;index"`
	DonorEmail       string    `json:"donorEmail" gorm:"type:text;not null"`
	Amount           float64   `json:"amount" gorm:"type:numeric(14,2);not null"`
	Method           string    `json:"method" gorm:"type:text;not null"`
	Status           string    `json:"status" gorm:"type:text;not null;default:'pending';index"`
	PaymentReference string    `json:"paymentReference,omitempty" gorm:"type:text"`
	Message          string    `json:"message,omitempty" gorm:"type:text"`
	CDate            time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate            time.Time `json:"mdate" gorm:"type:timestamp with time zone;not null;default:clock_timestamp();autoUpdateTime"`
}
