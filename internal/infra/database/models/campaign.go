package models

import (
	"time"
)

type Campaign struct {
	ID           string    `json:"id" gorm:"primaryKey;type:text"`
	OwnerID      string    `json:"ownerId" gorm:"type:text;not null;index"`
	Owner        User      `json:"-" gorm:"foreignKey:OwnerID;references:ID;constraint:OnDelete:CASCADE;"`
	Title        string    `json:"title" gorm:"type:text;not null"`
	Description  string    `json:"description" gorm:"type:text"`
	Images       string    `json:"images,omitempty" gorm:"type:jsonb;default:'[]'"`
	Target       float64   `json:"target" gorm:"type:numeric(14,2);not null"`
	Raised       float64   `json:"raised" gorm:"type:numeric(14,2);not null;default:0"`
	IsApproved   bool      `json:"isApproved" gorm:"type:boolean;not null;default:false;index"`
	IsClosed     bool      `json:"isClosed" gorm:"type:boolean;not null;default:false;index"`
	ClosedReason string    `json:"closedReason,omitempty" gorm:"type:text"`
	CDate        time.Time `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate        time.Time `json:"mdate" gorm:"type:timestamp with time zone;not null;default:clock_timestamp();autoUpdateTime"`
}
