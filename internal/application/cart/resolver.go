package cart

import (
	"fmt"

	"tillpoint/internal/domain/entity"
	"tillpoint/pkg/apperror"
)

// ResolveTierPrice returns the unit price for the chosen tier of a product.
// Tier 1 always exists; tiers 2 and 3 are available only when the product
// carries a price greater than zero for them.
func ResolveTierPrice(product *entity.Product, tier int) (int64, error) {
	if tier < 1 || tier > 3 {
		return 0, apperror.NewBadRequestError(fmt.Sprintf("Invalid price tier %d", tier))
	}
	price := product.TierPrice(tier)
	if price <= 0 {
		return 0, apperror.NewBadRequestError(fmt.Sprintf("Price tier %d is not available for %s", tier, product.Name))
	}
	return price, nil
}
