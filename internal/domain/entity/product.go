package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tillpoint/pkg/utils"
)

// Product represents a product in the inventory. Up to three selling price
// tiers are supported: tier 1 is mandatory, tiers 2 and 3 are available only
// when their value is greater than zero.
type Product struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	Code          string         `gorm:"size:100;unique;not null" json:"code"`
	Unit          string         `gorm:"size:50" json:"unit"`
	Quantity      int            `gorm:"default:0" json:"quantity"`
	QuantityAlert int            `gorm:"default:0" json:"quantity_alert"`
	CostPrice     int64          `gorm:"default:0" json:"-"` // Stored in cents
	SellingPrice  int64          `gorm:"not null" json:"-"`  // Tier 1, stored in cents
	SellingPrice2 int64          `gorm:"default:0" json:"-"` // Tier 2, 0 = unavailable
	SellingPrice3 int64          `gorm:"default:0" json:"-"` // Tier 3, 0 = unavailable
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// TierPrice returns the selling price for the given tier (1-based). A tier is
// available only when its price is greater than zero; unavailable tiers
// return 0.
func (p *Product) TierPrice(tier int) int64 {
	switch tier {
	case 1:
		return p.SellingPrice
	case 2:
		return p.SellingPrice2
	case 3:
		return p.SellingPrice3
	}
	return 0
}

// TierCount returns the number of available price tiers
func (p *Product) TierCount() int {
	count := 1
	if p.SellingPrice2 > 0 {
		count++
	}
	if p.SellingPrice3 > 0 {
		count++
	}
	return count
}

// InStock reports whether the product has any stock left
func (p *Product) InStock() bool {
	return p.Quantity > 0
}

// GetCostPriceDecimal returns the cost price as a decimal (for display)
func (p *Product) GetCostPriceDecimal() float64 {
	return float64(p.CostPrice) / 100
}

// GetSellingPriceDecimal returns the tier-1 selling price as a decimal
func (p *Product) GetSellingPriceDecimal() float64 {
	return float64(p.SellingPrice) / 100
}

// SetCostPriceFromDecimal sets the cost price from a decimal value
func (p *Product) SetCostPriceFromDecimal(price float64) {
	p.CostPrice = utils.ToCents(price)
}

// SetSellingPriceFromDecimal sets the tier-1 selling price from a decimal value
func (p *Product) SetSellingPriceFromDecimal(price float64) {
	p.SellingPrice = utils.ToCents(price)
}

// MarshalJSON converts Product to JSON with decimal prices
func (p Product) MarshalJSON() ([]byte, error) {
	type Alias Product
	return json.Marshal(&struct {
		Alias
		CostPrice     float64 `json:"cost_price"`
		SellingPrice  float64 `json:"selling_price"`
		SellingPrice2 float64 `json:"selling_price_2,omitempty"`
		SellingPrice3 float64 `json:"selling_price_3,omitempty"`
	}{
		Alias:         Alias(p),
		CostPrice:     float64(p.CostPrice) / 100,
		SellingPrice:  float64(p.SellingPrice) / 100,
		SellingPrice2: float64(p.SellingPrice2) / 100,
		SellingPrice3: float64(p.SellingPrice3) / 100,
	})
}
