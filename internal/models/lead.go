package models

import (
	"time"

	"gorm.io/gorm"
)

// LeadRecord is the archived copy of a lead that was delivered to the CRM.
// Sessions themselves are never persisted; only submitted leads are.
type LeadRecord struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Phone     string `gorm:"index"`
	Email     string
	Status    string
	Source    string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
