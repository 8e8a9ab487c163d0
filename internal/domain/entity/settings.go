package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreSettings holds store-wide configuration used at checkout and on
// receipts. A single row is seeded on first boot.
type StoreSettings struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Receipt header
	StoreName string `gorm:"size:255;default:'Tillpoint Store'" json:"store_name"`
	Address   string `gorm:"type:text" json:"address"`
	Phone     string `gorm:"size:50" json:"phone"`
	TaxID     string `gorm:"size:50" json:"tax_id"`

	// Checkout
	Currency       string  `gorm:"size:10;default:'KES'" json:"currency"`
	VATRatePercent float64 `gorm:"default:16" json:"vat_rate_percent"`
}

// BeforeCreate generates a UUID before creating new settings
func (s *StoreSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StoreSettings model
func (StoreSettings) TableName() string {
	return "store_settings"
}
