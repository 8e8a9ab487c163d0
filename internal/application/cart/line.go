package cart

import "github.com/google/uuid"

// Line is one row in the shopping cart. A cart may hold at most one regular
// line and one free-gift line per product, never two regular lines.
//
// UnitPrice is the price currently charged. TierPrice is the selected tier's
// list price; whenever a discount promotion overrides the line, UnitPrice
// drops below TierPrice and PromotionID records which promotion did it. Lines
// with FreeGift set are synthesized by the promotion engine at a zero unit
// price and are never edited directly.
type Line struct {
	ProductID   uuid.UUID  `json:"product_id"`
	ProductName string     `json:"product_name"`
	Unit        string     `json:"unit"`
	Tier        int        `json:"tier"`
	Quantity    int        `json:"quantity"`
	TierPrice   int64      `json:"-"`
	UnitPrice   int64      `json:"-"`
	PromotionID *uuid.UUID `json:"promotion_id,omitempty"`
	FreeGift    bool       `json:"free_gift"`
}

// Total returns the charged total for the line, in cents
func (l *Line) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

// ListTotal returns the undiscounted total at the tier price, in cents
func (l *Line) ListTotal() int64 {
	return l.TierPrice * int64(l.Quantity)
}

// Discounted reports whether a discount promotion overrode the line's price
func (l *Line) Discounted() bool {
	return l.PromotionID != nil && !l.FreeGift
}
