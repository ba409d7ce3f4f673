package storage

import (
	"gorm.io/gorm"

	"github.com/Franciscyber-J/habiticon-gyn-bot/internal/models"
)

// DatabaseStore archives delivered leads in PostgreSQL. It deliberately does
// not implement SessionStore: conversation state is process-lifetime only.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a lead archive backed by the given database
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// SaveLead persists a delivered lead
func (d *DatabaseStore) SaveLead(lead *models.LeadRecord) error {
	return d.db.Create(lead).Error
}

// CountLeads returns the number of archived leads
func (d *DatabaseStore) CountLeads() (int64, error) {
	var count int64
	err := d.db.Model(&models.LeadRecord{}).Count(&count).Error
	return count, err
}
