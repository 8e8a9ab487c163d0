package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tillpoint/internal/domain/enum"
)

// Promotion represents a time-bound promotion. The Kind column decides which
// fields are meaningful: discount promotions use DiscountType/DiscountValue,
// free-product promotions use QuantityToBuy/FreeProductID/QuantityToGetFree.
// Products holds the eligible (or trigger) product set for either kind.
//
// Promotions are matched in ascending Priority order, ties broken by
// CreatedAt. The order is explicit so "first matching promotion wins" does
// not depend on incidental fetch order.
type Promotion struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Name      string             `gorm:"size:255;not null" json:"name"`
	Kind      enum.PromotionKind `gorm:"default:0" json:"kind"`
	Active    bool               `gorm:"default:true" json:"active"`
	StartDate time.Time          `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time          `gorm:"type:date;not null" json:"end_date"`
	Priority  int                `gorm:"default:0;index" json:"priority"`

	// Discount fields (Kind = Discount)
	DiscountType  enum.DiscountType `gorm:"default:0" json:"discount_type"`
	DiscountValue int64             `gorm:"default:0" json:"-"` // Percent value, or cents for fixed

	// Free-product fields (Kind = FreeProduct)
	QuantityToBuy     int        `gorm:"default:0" json:"quantity_to_buy"`
	FreeProductID     *uuid.UUID `gorm:"type:uuid" json:"free_product_id,omitempty"`
	QuantityToGetFree int        `gorm:"default:0" json:"quantity_to_get_free"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"many2many:promotion_products" json:"products,omitempty"`
}

// BeforeCreate generates a UUID before creating a new promotion
func (p *Promotion) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Promotion model
func (Promotion) TableName() string {
	return "promotions"
}

// ActiveAt reports whether the promotion is switched on and the given time
// falls within its [StartDate, EndDate] window (end date inclusive, whole day).
func (p *Promotion) ActiveAt(now time.Time) bool {
	if !p.Active {
		return false
	}
	if now.Before(p.StartDate) {
		return false
	}
	return now.Before(p.EndDate.AddDate(0, 0, 1))
}

// AppliesTo reports whether the product is in the promotion's product set
func (p *Promotion) AppliesTo(productID uuid.UUID) bool {
	for i := range p.Products {
		if p.Products[i].ID == productID {
			return true
		}
	}
	return false
}

// MarshalJSON converts Promotion to JSON with a decimal discount value
func (p Promotion) MarshalJSON() ([]byte, error) {
	type Alias Promotion
	value := float64(p.DiscountValue)
	if p.DiscountType == enum.DiscountTypeFixed {
		value = float64(p.DiscountValue) / 100
	}
	return json.Marshal(&struct {
		Alias
		DiscountValue float64 `json:"discount_value"`
	}{
		Alias:         Alias(p),
		DiscountValue: value,
	})
}
