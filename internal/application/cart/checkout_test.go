package cart

import (
	"testing"

	"tillpoint/internal/domain/entity"
	"tillpoint/internal/domain/enum"
)

func TestCompute_SubtotalIncludesGiftLinesAtZero(t *testing.T) {
	trigger := testProduct("noodles", 50, 2000)
	gift := testProduct("sauce", 5, 1500)
	promo := freeProductPromo(3, 1, gift, trigger)

	store := NewStore()
	addTimes(store, trigger, 3)
	store.ApplyPromotions([]entity.Promotion{promo}, newCatalog(trigger, gift))

	totals := Compute(store.Lines(), 0, 0, enum.PaymentTypeCash, 0)

	var expected int64
	for _, l := range store.Lines() {
		expected += l.UnitPrice * int64(l.Quantity)
	}
	if totals.SubTotal != expected {
		t.Errorf("expected subtotal %d, got %d", expected, totals.SubTotal)
	}
	if totals.SubTotal != 6000 {
		t.Errorf("expected gift lines to contribute nothing, got %d", totals.SubTotal)
	}
	// The forgone list price of the gift shows up as item discount.
	if totals.ItemDiscount != 1500 {
		t.Errorf("expected item discount 1500, got %d", totals.ItemDiscount)
	}
}

func TestCompute_VATAfterOverallDiscount(t *testing.T) {
	product := testProduct("rice", 100, 10000)
	store := NewStore()
	addTimes(store, product, 10) // subtotal 1000.00

	totals := Compute(store.Lines(), 10000, 7, enum.PaymentTypeCash, 0)

	if totals.TaxableAmount != 90000 {
		t.Errorf("expected taxable amount 90000, got %d", totals.TaxableAmount)
	}
	if totals.VAT != 6300 {
		t.Errorf("expected VAT 6300 (7%% of 900.00), got %d", totals.VAT)
	}
	if totals.GrandTotal != 96300 {
		t.Errorf("expected grand total 96300, got %d", totals.GrandTotal)
	}
}

func TestCompute_OverallDiscountClampedToSubtotal(t *testing.T) {
	product := testProduct("gum", 10, 500)
	store := NewStore()
	addTimes(store, product, 1)

	totals := Compute(store.Lines(), 10000, 16, enum.PaymentTypeCash, 0)

	if totals.TaxableAmount != 0 {
		t.Errorf("expected taxable amount clamped to 0, got %d", totals.TaxableAmount)
	}
	if totals.GrandTotal != 0 {
		t.Errorf("expected grand total 0, got %d", totals.GrandTotal)
	}
}

func TestCompute_CashChange(t *testing.T) {
	product := testProduct("rice", 100, 10000)
	store := NewStore()
	addTimes(store, product, 10)

	totals := Compute(store.Lines(), 10000, 7, enum.PaymentTypeCash, 100000)
	if totals.Change != 3700 {
		t.Errorf("expected change 3700, got %d", totals.Change)
	}
	if totals.Shortfall() != 0 {
		t.Errorf("expected no shortfall, got %d", totals.Shortfall())
	}

	short := Compute(store.Lines(), 10000, 7, enum.PaymentTypeCash, 90000)
	if short.Change != 0 {
		t.Errorf("expected no change on underpayment, got %d", short.Change)
	}
	if short.Shortfall() != 6300 {
		t.Errorf("expected shortfall 6300, got %d", short.Shortfall())
	}
}

func TestCompute_CreditHasNoChangeOrShortfall(t *testing.T) {
	product := testProduct("rice", 100, 10000)
	store := NewStore()
	addTimes(store, product, 1)

	totals := Compute(store.Lines(), 0, 16, enum.PaymentTypeCredit, 0)
	if totals.Change != 0 {
		t.Errorf("expected no change on credit, got %d", totals.Change)
	}
	if totals.Shortfall() != 0 {
		t.Errorf("expected no shortfall on credit, got %d", totals.Shortfall())
	}
}

func TestCompute_DiscountedLineFeedsSubtotal(t *testing.T) {
	product := testProduct("soda", 50, 10000)
	promo := discountPromo(10, enum.DiscountTypePercent, 0, product)

	store := NewStore()
	addTimes(store, product, 2)
	store.ApplyPromotions([]entity.Promotion{promo}, newCatalog(product))

	totals := Compute(store.Lines(), 0, 0, enum.PaymentTypeCash, 0)
	if totals.SubTotal != 18000 {
		t.Errorf("expected subtotal 18000 after 10%% line discount, got %d", totals.SubTotal)
	}
	if totals.ItemDiscount != 2000 {
		t.Errorf("expected item discount 2000, got %d", totals.ItemDiscount)
	}
}
