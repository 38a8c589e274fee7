package models

import (
	"time"

	"github.com/google/uuid"
)

type CreditBalance struct {
	OwnerID   uuid.UUID `gorm:"type:uuid;primary_key" json:"owner_id"`
	Remaining int       `gorm:"not null;default:0" json:"remaining"`
	TotalUsed int       `gorm:"not null;default:0" json:"total_used"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (CreditBalance) TableName() string {
	return "credit_balances"
}
