package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tillpoint/internal/domain/enum"
)

// Customer represents a customer known to the store. Credit sales must be
// tied to a customer; cash customers are optional walk-ins.
type Customer struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	Name         string            `gorm:"size:255;not null" json:"name"`
	CustomerType enum.CustomerType `gorm:"default:0" json:"customer_type"`
	Email        *string           `gorm:"size:255" json:"email,omitempty"`
	Phone        *string           `gorm:"size:50" json:"phone,omitempty"`
	Address      *string           `gorm:"type:text" json:"address,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	DeletedAt    gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Sales []Sale `gorm:"foreignKey:CustomerID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
