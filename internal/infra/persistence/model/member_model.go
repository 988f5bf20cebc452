// Package model holds the GORM persistence models. Each mirrors one table.
package model

import (
	"time"

	"github.com/google/uuid"
)

// MemberModel mirrors the 'members' table. PostgreSQL generates UUIDs via gen_random_uuid().
type MemberModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password     string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null"`
	Nickname     string    `gorm:"type:varchar(100);not null"`
	Introduction string    `gorm:"type:varchar(255);not null;default:''"`
	ProfileImg   string    `gorm:"type:varchar(1024)"`
	Role         string    `gorm:"type:varchar(20);not null"`
	Sns          string    `gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MemberModel) TableName() string {
	return "members"
}
