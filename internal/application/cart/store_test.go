package cart

import (
	"testing"

	"tillpoint/internal/domain/entity"
	"tillpoint/internal/domain/enum"
	"tillpoint/pkg/apperror"
)

func TestStore_AddCreatesLineAtTierOne(t *testing.T) {
	product := testProduct("soda", 10, 2500)
	store := NewStore()

	if err := store.Add(product); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := store.Regular()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Tier != 1 || lines[0].UnitPrice != 2500 || lines[0].Quantity != 1 {
		t.Errorf("expected tier 1 price 2500 qty 1, got %+v", lines[0])
	}
}

func TestStore_AddIncrementsExistingLine(t *testing.T) {
	product := testProduct("soda", 10, 2500)
	store := NewStore()
	addTimes(store, product, 3)

	lines := store.Regular()
	if len(lines) != 1 {
		t.Fatalf("expected a single regular line per product, got %d", len(lines))
	}
	if lines[0].Quantity != 3 {
		t.Errorf("expected quantity 3, got %d", lines[0].Quantity)
	}
}

func TestStore_AddRejectsWhenOutOfStock(t *testing.T) {
	product := testProduct("soda", 0, 2500)
	store := NewStore()

	err := store.Add(product)
	if err == nil {
		t.Fatal("expected out-of-stock error")
	}
	if len(store.Regular()) != 0 {
		t.Error("expected no line created on rejection")
	}
}

func TestStore_AddRejectsBeyondStock(t *testing.T) {
	product := testProduct("soda", 2, 2500)
	store := NewStore()
	addTimes(store, product, 2)

	if err := store.Add(product); err == nil {
		t.Fatal("expected insufficient stock error on third add")
	}
	if got := store.Regular()[0].Quantity; got != 2 {
		t.Errorf("expected quantity unchanged at 2, got %d", got)
	}
}

func TestStore_SetQuantityClampsToStock(t *testing.T) {
	product := testProduct("soda", 5, 2500)
	store := NewStore()
	addTimes(store, product, 1)

	err := store.SetQuantity(product, 9)
	if err == nil {
		t.Fatal("expected insufficient stock error")
	}
	if !apperror.IsAppError(err) {
		t.Errorf("expected an AppError, got %T", err)
	}
	if got := store.Regular()[0].Quantity; got != 5 {
		t.Errorf("expected quantity clamped to stock ceiling 5, got %d", got)
	}
}

func TestStore_SetQuantityZeroRemovesRegularLineOnly(t *testing.T) {
	trigger := testProduct("noodles", 50, 2000)
	gift := testProduct("sauce", 5, 1500)
	promo := freeProductPromo(3, 1, gift, trigger)
	catalog := newCatalog(trigger, gift)

	store := NewStore()
	addTimes(store, trigger, 3)
	addTimes(store, gift, 1)
	store.ApplyPromotions([]entity.Promotion{promo}, catalog)

	if len(store.Gifts()) != 1 {
		t.Fatalf("expected a gift line before the edit, got %d", len(store.Gifts()))
	}

	// Removing the separately purchased gift product must not touch the
	// derived free-gift line for the same product.
	if err := store.SetQuantity(gift, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(store.Regular()) != 1 {
		t.Errorf("expected only the trigger line to remain, got %d regular lines", len(store.Regular()))
	}
	if len(store.Gifts()) != 1 {
		t.Errorf("expected the free-gift line untouched, got %d gift lines", len(store.Gifts()))
	}
}

func TestStore_SelectTierClearsAppliedPromotion(t *testing.T) {
	product := testProduct("rice", 20, 10000)
	product.SellingPrice2 = 8000
	promo := discountPromo(10, enum.DiscountTypePercent, 0, product)
	catalog := newCatalog(product)

	store := NewStore()
	addTimes(store, product, 1)
	store.ApplyPromotions([]entity.Promotion{promo}, catalog)

	if store.Regular()[0].PromotionID == nil {
		t.Fatal("expected the discount applied before tier switch")
	}

	if err := store.SelectTier(product, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	line := store.Regular()[0]
	if line.PromotionID != nil {
		t.Error("expected manual tier selection to clear the applied promotion")
	}
	if line.UnitPrice != 8000 || line.TierPrice != 8000 || line.Tier != 2 {
		t.Errorf("expected tier 2 at 8000, got %+v", line)
	}

	// Rederivation may discount the new tier price again.
	store.ApplyPromotions([]entity.Promotion{promo}, catalog)
	if got := store.Regular()[0].UnitPrice; got != 7200 {
		t.Errorf("expected promotion re-applied against tier 2 price, got %d", got)
	}
}

func TestStore_SelectTierUnavailable(t *testing.T) {
	product := testProduct("rice", 20, 10000)
	store := NewStore()
	addTimes(store, product, 1)

	if err := store.SelectTier(product, 3); err == nil {
		t.Fatal("expected error for unavailable tier")
	}
	if got := store.Regular()[0].UnitPrice; got != 10000 {
		t.Errorf("expected price unchanged, got %d", got)
	}
}

func TestStore_RemoveLeavesGiftLines(t *testing.T) {
	trigger := testProduct("noodles", 50, 2000)
	gift := testProduct("sauce", 5, 1500)
	promo := freeProductPromo(3, 1, gift, trigger)
	catalog := newCatalog(trigger, gift)

	store := NewStore()
	addTimes(store, trigger, 3)
	store.ApplyPromotions([]entity.Promotion{promo}, catalog)

	store.Remove(gift.ID)
	if len(store.Gifts()) != 1 {
		t.Error("expected Remove to ignore free-gift lines")
	}

	// Dropping the trigger line and re-deriving withdraws the gift.
	store.Remove(trigger.ID)
	store.ApplyPromotions([]entity.Promotion{promo}, catalog)
	if len(store.Gifts()) != 0 {
		t.Error("expected the gift withdrawn once the trigger left the cart")
	}
}

func TestStore_ClearEmptiesEverything(t *testing.T) {
	product := testProduct("soda", 10, 2500)
	store := NewStore()
	addTimes(store, product, 2)

	store.Clear()
	if !store.Empty() {
		t.Error("expected empty store after Clear")
	}
}
