package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tillpoint/internal/domain/enum"
)

// Sale is the immutable record of a finalized checkout. Once persisted it is
// never mutated by the pricing engine; corrections happen through separate
// reversing documents. The only field the application updates afterwards is
// the outstanding balance of a credit sale as payments come in.
type Sale struct {
	ID              uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo       string           `gorm:"size:100;unique;not null" json:"invoice_no"`
	UserID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID      *uuid.UUID       `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	SaleDate        time.Time        `gorm:"not null" json:"sale_date"`
	Status          enum.SaleStatus  `gorm:"default:0" json:"status"`
	TotalItems      int              `gorm:"default:0" json:"total_items"`
	SubTotal        int64            `gorm:"default:0" json:"-"` // Stored in cents
	ItemDiscount    int64            `gorm:"default:0" json:"-"` // Promotion savings across lines, cents
	OverallDiscount int64            `gorm:"default:0" json:"-"` // Cart-level deduction, cents
	VATRate         float64          `gorm:"default:0" json:"vat_rate"`
	VAT             int64            `gorm:"default:0" json:"-"` // Stored in cents
	GrandTotal      int64            `gorm:"default:0" json:"-"` // Stored in cents
	PaymentType     enum.PaymentType `gorm:"default:0" json:"payment_type"`
	Received        int64            `gorm:"default:0" json:"-"` // Cash received, cents
	Change          int64            `gorm:"default:0" json:"-"` // Change given, cents
	Outstanding     int64            `gorm:"default:0" json:"-"` // Unpaid balance for credit, cents
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
	DeletedAt       gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	User     User       `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// MarshalJSON converts cents to decimal for API responses
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		SubTotal        float64 `json:"sub_total"`
		ItemDiscount    float64 `json:"item_discount"`
		OverallDiscount float64 `json:"overall_discount"`
		VAT             float64 `json:"vat"`
		GrandTotal      float64 `json:"grand_total"`
		Received        float64 `json:"received"`
		Change          float64 `json:"change"`
		Outstanding     float64 `json:"outstanding"`
	}{
		Alias:           Alias(s),
		SubTotal:        float64(s.SubTotal) / 100,
		ItemDiscount:    float64(s.ItemDiscount) / 100,
		OverallDiscount: float64(s.OverallDiscount) / 100,
		VAT:             float64(s.VAT) / 100,
		GrandTotal:      float64(s.GrandTotal) / 100,
		Received:        float64(s.Received) / 100,
		Change:          float64(s.Change) / 100,
		Outstanding:     float64(s.Outstanding) / 100,
	})
}

// SaleItem represents a line item on a finalized sale, carrying the price
// actually charged. FreeGift lines are recorded at a zero unit price with the
// promotion that granted them.
type SaleItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"sale_id"`
	ProductID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName string         `gorm:"size:255;not null" json:"product_name"`
	Quantity    int            `gorm:"not null" json:"quantity"`
	UnitPrice   int64          `gorm:"not null" json:"-"` // Price charged, cents
	ListPrice   int64          `gorm:"not null" json:"-"` // Tier price before promotion, cents
	Total       int64          `gorm:"not null" json:"-"` // Stored in cents
	FreeGift    bool           `gorm:"default:false" json:"free_gift"`
	PromotionID *uuid.UUID     `gorm:"type:uuid" json:"promotion_id,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sale    Sale    `gorm:"foreignKey:SaleID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sale item
func (i *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}

// MarshalJSON converts cents to decimal for API responses
func (i SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		ListPrice float64 `json:"list_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(i),
		UnitPrice: float64(i.UnitPrice) / 100,
		ListPrice: float64(i.ListPrice) / 100,
		Total:     float64(i.Total) / 100,
	})
}
