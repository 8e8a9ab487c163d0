package cart

import (
	"math"

	"tillpoint/internal/domain/enum"
)

// Totals is the full pricing breakdown of a cart at checkout. All monetary
// values are in cents; decimal conversion happens only at the API edge.
type Totals struct {
	SubTotal        int64
	ItemDiscount    int64
	OverallDiscount int64
	TaxableAmount   int64
	VATRate         float64
	VAT             int64
	GrandTotal      int64
	PaymentType     enum.PaymentType
	Received        int64
	Change          int64
}

// Compute derives the checkout totals from the cart lines. The order of
// operations is fixed: subtotal, then the overall discount, then VAT on the
// discounted amount, then the grand total and cash change. VAT after discount
// matches fiscal convention and is not reorderable.
//
// Free-gift lines contribute zero to the subtotal but their forgone list
// price counts toward the item-level discount, which is tracked separately
// from the cart-level overall discount for audit purposes.
func Compute(lines []Line, overallDiscount int64, vatRatePercent float64, payment enum.PaymentType, received int64) Totals {
	var subTotal, itemDiscount int64
	for i := range lines {
		subTotal += lines[i].Total()
		itemDiscount += lines[i].ListTotal() - lines[i].Total()
	}

	if overallDiscount < 0 {
		overallDiscount = 0
	}
	taxable := subTotal - overallDiscount
	if taxable < 0 {
		taxable = 0
	}

	vat := int64(math.Round(float64(taxable) * vatRatePercent / 100))
	grandTotal := taxable + vat

	var change int64
	if payment == enum.PaymentTypeCash && received >= grandTotal {
		change = received - grandTotal
	}

	return Totals{
		SubTotal:        subTotal,
		ItemDiscount:    itemDiscount,
		OverallDiscount: overallDiscount,
		TaxableAmount:   taxable,
		VATRate:         vatRatePercent,
		VAT:             vat,
		GrandTotal:      grandTotal,
		PaymentType:     payment,
		Received:        received,
		Change:          change,
	}
}

// Shortfall returns how many cents a cash payment is short of the grand
// total, or zero when the payment covers it. Credit sales never have a
// shortfall at checkout; the balance becomes the outstanding amount instead.
func (t *Totals) Shortfall() int64 {
	if t.PaymentType != enum.PaymentTypeCash {
		return 0
	}
	if t.Received >= t.GrandTotal {
		return 0
	}
	return t.GrandTotal - t.Received
}
