package service

import (
	"context"

	"github.com/google/uuid"
	"tillpoint/internal/application/cart"
	"tillpoint/internal/domain/enum"
)

// CartLineView is one cart row as shown on the till, prices in decimal
type CartLineView struct {
	ProductID   uuid.UUID  `json:"product_id"`
	ProductName string     `json:"product_name"`
	Unit        string     `json:"unit"`
	Tier        int        `json:"tier,omitempty"`
	Quantity    int        `json:"quantity"`
	UnitPrice   float64    `json:"unit_price"`
	ListPrice   float64    `json:"list_price"`
	LineTotal   float64    `json:"line_total"`
	PromotionID *uuid.UUID `json:"promotion_id,omitempty"`
	FreeGift    bool       `json:"free_gift"`
}

// CartView is the full state of a cart session after an operation: lines,
// running totals and an optional warning (e.g. a quantity clamped to stock).
type CartView struct {
	SessionID       uuid.UUID        `json:"session_id"`
	Lines           []CartLineView   `json:"lines"`
	CustomerID      *uuid.UUID       `json:"customer_id,omitempty"`
	PaymentType     enum.PaymentType `json:"payment_type"`
	SubTotal        float64          `json:"sub_total"`
	ItemDiscount    float64          `json:"item_discount"`
	OverallDiscount float64          `json:"overall_discount"`
	VATRate         float64          `json:"vat_rate"`
	VAT             float64          `json:"vat"`
	GrandTotal      float64          `json:"grand_total"`
	Received        float64          `json:"received"`
	Change          float64          `json:"change"`
	Warning         string           `json:"warning,omitempty"`
}

// view recomputes display totals for the session. The caller holds the
// session lock.
func (s *PosService) view(ctx context.Context, sessionID uuid.UUID, sess *posSession, warning string) (*CartView, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	lines := sess.store.Lines()
	totals := cart.Compute(lines, sess.overallDiscount, settings.VATRatePercent, sess.paymentType, sess.received)

	v := &CartView{
		SessionID:       sessionID,
		Lines:           make([]CartLineView, 0, len(lines)),
		CustomerID:      sess.customerID,
		PaymentType:     sess.paymentType,
		SubTotal:        float64(totals.SubTotal) / 100,
		ItemDiscount:    float64(totals.ItemDiscount) / 100,
		OverallDiscount: float64(totals.OverallDiscount) / 100,
		VATRate:         totals.VATRate,
		VAT:             float64(totals.VAT) / 100,
		GrandTotal:      float64(totals.GrandTotal) / 100,
		Received:        float64(totals.Received) / 100,
		Change:          float64(totals.Change) / 100,
		Warning:         warning,
	}

	for i := range lines {
		line := &lines[i]
		v.Lines = append(v.Lines, CartLineView{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Unit:        line.Unit,
			Tier:        line.Tier,
			Quantity:    line.Quantity,
			UnitPrice:   float64(line.UnitPrice) / 100,
			ListPrice:   float64(line.TierPrice) / 100,
			LineTotal:   float64(line.Total()) / 100,
			PromotionID: line.PromotionID,
			FreeGift:    line.FreeGift,
		})
	}

	return v, nil
}
