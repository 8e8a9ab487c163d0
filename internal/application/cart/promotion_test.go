package cart

import (
	"testing"

	"tillpoint/internal/domain/entity"
	"tillpoint/internal/domain/enum"
)

func TestDerive_PercentDiscount(t *testing.T) {
	product := testProduct("soda", 50, 10000)
	promo := discountPromo(10, enum.DiscountTypePercent, 0, product)

	store := NewStore()
	addTimes(store, product, 2)

	derived := Derive(store.Regular(), []entity.Promotion{promo}, newCatalog(product))

	line := derived.Regular[0]
	if line.UnitPrice != 9000 {
		t.Errorf("expected unit price 9000, got %d", line.UnitPrice)
	}
	if line.TierPrice != 10000 {
		t.Errorf("expected tier price preserved at 10000, got %d", line.TierPrice)
	}
	if line.PromotionID == nil || *line.PromotionID != promo.ID {
		t.Error("expected promotion id recorded on the line")
	}
	if got := line.Total(); got != 18000 {
		t.Errorf("expected line total 18000, got %d", got)
	}
}

func TestDerive_FixedDiscountClampsAtZero(t *testing.T) {
	product := testProduct("sticker", 10, 500)
	promo := discountPromo(800, enum.DiscountTypeFixed, 0, product)

	store := NewStore()
	addTimes(store, product, 1)

	derived := Derive(store.Regular(), []entity.Promotion{promo}, newCatalog(product))

	if got := derived.Regular[0].UnitPrice; got != 0 {
		t.Errorf("expected price clamped to 0, got %d", got)
	}
}

func TestDerive_NoStacking_FirstMatchWins(t *testing.T) {
	product := testProduct("rice", 20, 10000)
	first := discountPromo(10, enum.DiscountTypePercent, 1, product)
	second := discountPromo(50, enum.DiscountTypePercent, 2, product)

	store := NewStore()
	addTimes(store, product, 1)

	derived := Derive(store.Regular(), []entity.Promotion{first, second}, newCatalog(product))

	line := derived.Regular[0]
	if line.PromotionID == nil || *line.PromotionID != first.ID {
		t.Error("expected the first promotion in priority order to win")
	}
	if line.UnitPrice != 9000 {
		t.Errorf("expected 10%% discount only, got unit price %d", line.UnitPrice)
	}
}

func TestDerive_DiscountNotAppliedWhenNotStrictlyLower(t *testing.T) {
	product := testProduct("bread", 20, 10000)
	promo := discountPromo(0, enum.DiscountTypeFixed, 0, product)

	store := NewStore()
	addTimes(store, product, 1)

	derived := Derive(store.Regular(), []entity.Promotion{promo}, newCatalog(product))

	line := derived.Regular[0]
	if line.PromotionID != nil {
		t.Error("expected no promotion recorded when candidate price is not strictly lower")
	}
	if line.UnitPrice != 10000 {
		t.Errorf("expected unchanged price, got %d", line.UnitPrice)
	}
}

func TestDerive_FreeGiftQuantityLaw(t *testing.T) {
	trigger := testProduct("noodles", 50, 2000)
	gift := testProduct("sauce", 2, 1500)
	promo := freeProductPromo(3, 1, gift, trigger)

	store := NewStore()
	addTimes(store, trigger, 7)

	derived := Derive(store.Regular(), []entity.Promotion{promo}, newCatalog(trigger, gift))

	if len(derived.Gifts) != 1 {
		t.Fatalf("expected one gift line, got %d", len(derived.Gifts))
	}
	g := derived.Gifts[0]
	// floor(7/3)*1 = 2, capped by stock 2 with 0 reserved = 2
	if g.Quantity != 2 {
		t.Errorf("expected granted quantity 2, got %d", g.Quantity)
	}
	if g.UnitPrice != 0 {
		t.Errorf("expected zero unit price on gift line, got %d", g.UnitPrice)
	}
	if !g.FreeGift {
		t.Error("expected line flagged as free gift")
	}
	if g.PromotionID == nil || *g.PromotionID != promo.ID {
		t.Error("expected gift line tagged with the granting promotion")
	}
}

func TestDerive_FreeGiftCapAccountsForReservedStock(t *testing.T) {
	trigger := testProduct("noodles", 50, 2000)
	gift := testProduct("sauce", 3, 1500)
	promo := freeProductPromo(3, 1, gift, trigger)

	store := NewStore()
	addTimes(store, trigger, 9)
	// The gift product is also purchased outright, reserving 2 of its 3 units.
	addTimes(store, gift, 2)

	derived := Derive(store.Regular(), []entity.Promotion{promo}, newCatalog(trigger, gift))

	if len(derived.Gifts) != 1 {
		t.Fatalf("expected one gift line, got %d", len(derived.Gifts))
	}
	if got := derived.Gifts[0].Quantity; got != 1 {
		t.Errorf("expected grant capped at 1 by reserved stock, got %d", got)
	}
}

func TestDerive_FreeGiftNoLineWhenNothingGranted(t *testing.T) {
	trigger := testProduct("noodles", 50, 2000)
	gift := testProduct("sauce", 0, 1500)
	promo := freeProductPromo(3, 1, gift, trigger)

	store := NewStore()
	addTimes(store, trigger, 6)

	derived := Derive(store.Regular(), []entity.Promotion{promo}, newCatalog(trigger, gift))

	if len(derived.Gifts) != 0 {
		t.Errorf("expected no gift line when the gift product has no stock, got %d", len(derived.Gifts))
	}
}

func TestDerive_MalformedPromotionsAreSkipped(t *testing.T) {
	product := testProduct("milk", 20, 3000)

	dangling := freeProductPromo(2, 1, nil, product)
	noTriggers := freeProductPromo(2, 1, product)
	zeroBuy := freeProductPromo(0, 1, product, product)
	emptyDiscount := discountPromo(10, enum.DiscountTypePercent, 0)

	store := NewStore()
	addTimes(store, product, 4)

	derived := Derive(store.Regular(),
		[]entity.Promotion{dangling, noTriggers, zeroBuy, emptyDiscount},
		newCatalog(product))

	if len(derived.Gifts) != 0 {
		t.Errorf("expected malformed promotions to be skipped, got %d gift lines", len(derived.Gifts))
	}
	if derived.Regular[0].PromotionID != nil {
		t.Error("expected no discount from a promotion with an empty product set")
	}
}

func TestDerive_Idempotent(t *testing.T) {
	trigger := testProduct("noodles", 50, 2000)
	gift := testProduct("sauce", 10, 1500)
	promos := []entity.Promotion{
		discountPromo(10, enum.DiscountTypePercent, 0, trigger),
		freeProductPromo(3, 1, gift, trigger),
	}
	catalog := newCatalog(trigger, gift)

	store := NewStore()
	addTimes(store, trigger, 7)

	first := Derive(store.Regular(), promos, catalog)
	second := Derive(first.Regular, promos, catalog)

	if len(first.Gifts) != len(second.Gifts) {
		t.Fatalf("gift count drifted across derivations: %d then %d", len(first.Gifts), len(second.Gifts))
	}
	for i := range first.Gifts {
		a, b := first.Gifts[i], second.Gifts[i]
		if a.ProductID != b.ProductID || a.Quantity != b.Quantity || *a.PromotionID != *b.PromotionID {
			t.Errorf("gift line %d drifted: %+v vs %+v", i, a, b)
		}
	}
	for i := range first.Regular {
		if first.Regular[i].UnitPrice != second.Regular[i].UnitPrice {
			t.Errorf("regular line %d price drifted: %d then %d",
				i, first.Regular[i].UnitPrice, second.Regular[i].UnitPrice)
		}
	}
}

func TestDerive_GiftsFromTwoPromotionsShareTheStockCap(t *testing.T) {
	triggerA := testProduct("noodles", 50, 2000)
	triggerB := testProduct("pasta", 50, 2500)
	gift := testProduct("sauce", 3, 1500)
	promoA := freeProductPromo(2, 1, gift, triggerA)
	promoB := freeProductPromo(2, 1, gift, triggerB)

	store := NewStore()
	addTimes(store, triggerA, 4)
	addTimes(store, triggerB, 4)

	derived := Derive(store.Regular(), []entity.Promotion{promoA, promoB}, newCatalog(triggerA, triggerB, gift))

	if len(derived.Gifts) != 1 {
		t.Fatalf("expected grants merged into one gift line per product, got %d", len(derived.Gifts))
	}
	// 2 + 2 eligible, but only 3 in stock.
	if got := derived.Gifts[0].Quantity; got != 3 {
		t.Errorf("expected combined grant capped at 3, got %d", got)
	}
}
