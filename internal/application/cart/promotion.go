package cart

import (
	"math"

	"github.com/google/uuid"
	"tillpoint/internal/domain/entity"
	"tillpoint/internal/domain/enum"
)

// ProductLookup resolves product snapshots during derivation. The free-gift
// pass needs the gift product's name, price and stock even when it is not in
// the cart.
type ProductLookup interface {
	Product(id uuid.UUID) (*entity.Product, bool)
}

// Derivation is the result of one promotion derivation: the regular lines
// with discount overrides applied, and the complete free-gift line set.
type Derivation struct {
	Regular []Line
	Gifts   []Line
}

// Derive computes promotion state from the regular lines and the active
// promotion set. It is a pure function: the same inputs always produce the
// same outputs, and the gift set is rebuilt wholesale on every call, so
// running it twice over an unchanged cart yields identical gift lines.
//
// Promotions must arrive already ordered (ascending priority, then creation
// time); the first matching discount promotion wins and no stacking occurs.
// Misconfigured promotions — an empty product set, a dangling free product
// reference, non-positive quantities — are skipped, never an error.
func Derive(regular []Line, promotions []entity.Promotion, catalog ProductLookup) Derivation {
	out := make([]Line, len(regular))
	copy(out, regular)

	for i := range out {
		applyDiscount(&out[i], promotions)
	}

	return Derivation{
		Regular: out,
		Gifts:   deriveGifts(out, promotions, catalog),
	}
}

// applyDiscount scans promotions in order and applies the first discount
// promotion covering the line's product. A line already carrying a promotion
// keeps it. The override only happens when the candidate price is strictly
// lower than the price currently active on the line, so a manually selected
// cheaper tier is never raised by a promotion.
func applyDiscount(line *Line, promotions []entity.Promotion) {
	if line.PromotionID != nil {
		return
	}

	for i := range promotions {
		promo := &promotions[i]
		if promo.Kind != enum.PromotionKindDiscount {
			continue
		}
		if len(promo.Products) == 0 {
			continue
		}
		if !promo.AppliesTo(line.ProductID) {
			continue
		}

		candidate := discountedPrice(line.UnitPrice, promo)
		if candidate < line.UnitPrice {
			promoID := promo.ID
			line.UnitPrice = candidate
			line.PromotionID = &promoID
		}
		// First matching promotion settles the line either way.
		return
	}
}

func discountedPrice(price int64, promo *entity.Promotion) int64 {
	var candidate int64
	switch promo.DiscountType {
	case enum.DiscountTypePercent:
		candidate = int64(math.Round(float64(price) * (1 - float64(promo.DiscountValue)/100)))
	case enum.DiscountTypeFixed:
		candidate = price - promo.DiscountValue
	default:
		return price
	}
	if candidate < 0 {
		candidate = 0
	}
	return candidate
}

// deriveGifts runs the free-gift pass independently per promotion. The grant
// is floor(triggerQuantity / quantityToBuy) * quantityToGetFree, capped by
// the gift product's stock minus whatever a regular line already reserves.
// When several promotions grant the same product, the grants merge into one
// gift line per product and share the remaining stock cap.
func deriveGifts(regular []Line, promotions []entity.Promotion, catalog ProductLookup) []Line {
	var gifts []Line
	giftIndex := make(map[uuid.UUID]int)

	for i := range promotions {
		promo := &promotions[i]
		if promo.Kind != enum.PromotionKindFreeProduct {
			continue
		}
		if promo.QuantityToBuy <= 0 || promo.QuantityToGetFree <= 0 {
			continue
		}
		if promo.FreeProductID == nil || len(promo.Products) == 0 {
			continue
		}

		trigger := 0
		for j := range regular {
			if promo.AppliesTo(regular[j].ProductID) {
				trigger += regular[j].Quantity
			}
		}

		eligible := (trigger / promo.QuantityToBuy) * promo.QuantityToGetFree
		if eligible <= 0 {
			continue
		}

		freeProduct, ok := catalog.Product(*promo.FreeProductID)
		if !ok {
			continue
		}

		reserved := 0
		for j := range regular {
			if regular[j].ProductID == freeProduct.ID {
				reserved = regular[j].Quantity
				break
			}
		}
		if idx, exists := giftIndex[freeProduct.ID]; exists {
			reserved += gifts[idx].Quantity
		}

		available := freeProduct.Quantity - reserved
		granted := eligible
		if granted > available {
			granted = available
		}
		if granted <= 0 {
			continue
		}

		if idx, exists := giftIndex[freeProduct.ID]; exists {
			gifts[idx].Quantity += granted
			continue
		}

		promoID := promo.ID
		giftIndex[freeProduct.ID] = len(gifts)
		gifts = append(gifts, Line{
			ProductID:   freeProduct.ID,
			ProductName: freeProduct.Name,
			Unit:        freeProduct.Unit,
			Quantity:    granted,
			TierPrice:   freeProduct.SellingPrice,
			UnitPrice:   0,
			PromotionID: &promoID,
			FreeGift:    true,
		})
	}

	return gifts
}
