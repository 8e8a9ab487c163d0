package request

import (
	"github.com/google/uuid"
	"tillpoint/internal/domain/enum"
)

// AddItemRequest puts one unit of a product in the cart
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// SetQuantityRequest sets a cart line's quantity; zero removes the line
type SetQuantityRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"min=0"`
}

// SelectTierRequest switches a cart line to another price tier
type SelectTierRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Tier      int       `json:"tier" binding:"required,min=1,max=3"`
}

// RemoveItemRequest removes a cart line
type RemoveItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
}

// SetCustomerRequest attaches a customer to the session; null detaches
type SetCustomerRequest struct {
	CustomerID *uuid.UUID `json:"customer_id"`
}

// SetPaymentRequest records payment details ahead of checkout
type SetPaymentRequest struct {
	PaymentType     enum.PaymentType `json:"payment_type"`
	ReceivedAmount  float64          `json:"received_amount" binding:"min=0"`
	OverallDiscount float64          `json:"overall_discount" binding:"min=0"`
}

// CheckoutRequest finalizes the cart into a sale
type CheckoutRequest struct {
	PaymentType     enum.PaymentType `json:"payment_type"`
	CustomerID      *uuid.UUID       `json:"customer_id"`
	ReceivedAmount  float64          `json:"received_amount" binding:"min=0"`
	OverallDiscount float64          `json:"overall_discount" binding:"min=0"`
}
