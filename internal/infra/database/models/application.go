package models

import (
	"time"
)

type OrganizerApplication struct {
	ID               string     `json:"id" gorm:"primaryKey;type:text"`
	UserID           string     `json:"userId" gorm:"type:text;not null;index"`
	User             User       `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	OrganizationName string     `json:"organizationName" gorm:"type:text;not null"`
	Description      string     `json:"description" gorm:"type:text;not null"`
	Status           string     `json:"status" gorm:"type:text;not null;default:'pending';index"`
	ReviewedBy       *string    `json:"reviewedBy,omitempty" gorm:"type:text"`
	ReviewedAt       *time.Time `json:"reviewedAt,omitempty" gorm:"type:timestamp with time zone"`
	RejectionReason  string     `json:"rejectionReason,omitempty" gorm:"type:text"`
	CDate            time.Time  `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
}
