package request

import (
	"time"

	"github.com/google/uuid"
	"tillpoint/internal/domain/enum"
)

// CreatePromotionRequest represents a promotion creation request. Discount
// fields apply to discount promotions, the buy/get fields to free-product
// promotions; the service rejects mismatched combinations.
type CreatePromotionRequest struct {
	Name              string             `json:"name" binding:"required,min=2,max=255"`
	Kind              enum.PromotionKind `json:"kind"`
	StartDate         time.Time          `json:"start_date" binding:"required"`
	EndDate           time.Time          `json:"end_date" binding:"required"`
	Priority          int                `json:"priority" binding:"min=0"`
	ProductIDs        []uuid.UUID        `json:"product_ids" binding:"required,min=1"`
	DiscountType      enum.DiscountType  `json:"discount_type"`
	DiscountValue     float64            `json:"discount_value" binding:"min=0"`
	QuantityToBuy     int                `json:"quantity_to_buy" binding:"min=0"`
	FreeProductID     *uuid.UUID         `json:"free_product_id"`
	QuantityToGetFree int                `json:"quantity_to_get_free" binding:"min=0"`
}

// SetPromotionActiveRequest toggles a promotion on or off
type SetPromotionActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
