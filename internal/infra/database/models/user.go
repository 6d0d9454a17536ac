package models

import (
	"time"
)

type User struct {
	ID                  string     `json:"id" gorm:"primaryKey;type:text"`
	Email               string     `json:"email" gorm:"type:text;uniqueIndex;not null"`
	PasswordHash        string     `json:"-" gorm:"type:text;not null"`
	Name                string     `json:"name" gorm:"type:text;not null"`
	Role                string     `json:"role" gorm:"type:text;not null;default:'donor';index"`
	EmailVerified       bool       `json:"emailVerified" gorm:"type:boolean;not null;default:false"`
	IsOrganizerApproved bool       `json:"isOrganizerApproved" gorm:"type:boolean;not null;default:false"`
	IsOrganizerRevoked  bool       `json:"isOrganizerRevoked" gorm:"type:boolean;not null;default:false;index"`
	RevokedAt           *time.Time `json:"revokedAt,omitempty" gorm:"type:timestamp with time zone"`
	RevokedBy           *string    `json:"revokedBy,omitempty" gorm:"type:text"`
	RevocationReason    string     `json:"revocationReason,omitempty" gorm:"type:text"`
	CDate               time.Time  `json:"cdate" gorm:"->;<-:create;type:timestamp with time zone;not null;default:clock_timestamp()"`
	MDate               time.Time  `json:"mdate" gorm:"type:timestamp with time zone;not null;default:clock_timestamp();autoUpdateTime"`
}
