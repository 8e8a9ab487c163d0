package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"tillpoint/internal/application/service"
	"tillpoint/internal/presentation/http/dto/request"
	"tillpoint/internal/presentation/http/dto/response"
)

// PosHandler handles the till: cart sessions, cart mutations and checkout
type PosHandler struct {
	posService *service.PosService
}

// NewPosHandler creates a new POS handler
func NewPosHandler(posService *service.PosService) *PosHandler {
	return &PosHandler{posService: posService}
}

func parseSessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("sessionId"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// OpenSession opens a new cart session for the terminal
func (h *PosHandler) OpenSession(c *gin.Context) {
	sessionID, err := h.posService.OpenSession(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Session opened", gin.H{"session_id": sessionID})
}

// CloseSession discards a cart session
func (h *PosHandler) CloseSession(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	h.posService.CloseSession(c.Request.Context(), sessionID)
	response.NoContent(c)
}

// GetCart returns the current cart state
func (h *PosHandler) GetCart(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	view, err := h.posService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved successfully", view)
}

// AddItem puts one unit of a product in the cart
func (h *PosHandler) AddItem(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req request.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.posService.AddItem(c.Request.Context(), sessionID, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added", view)
}

// SetQuantity sets a cart line's quantity
func (h *PosHandler) SetQuantity(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req request.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.posService.SetQuantity(c.Request.Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity updated", view)
}

// SelectTier switches a cart line to another price tier
func (h *PosHandler) SelectTier(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req request.SelectTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.posService.SelectTier(c.Request.Context(), sessionID, req.ProductID, req.Tier)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tier selected", view)
}

// RemoveItem removes a cart line
func (h *PosHandler) RemoveItem(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req request.RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.posService.RemoveItem(c.Request.Context(), sessionID, req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item removed", view)
}

// ClearCart empties the cart
func (h *PosHandler) ClearCart(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	view, err := h.posService.ClearCart(c.Request.Context(), sessionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart cleared", view)
}

// SetCustomer attaches or detaches a customer
func (h *PosHandler) SetCustomer(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req request.SetCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.posService.SetCustomer(c.Request.Context(), sessionID, req.CustomerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated", view)
}

// SetPayment records payment details ahead of checkout
func (h *PosHandler) SetPayment(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	var req request.SetPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	view, err := h.posService.SetPayment(c.Request.Context(), sessionID,
		req.PaymentType, req.ReceivedAmount, req.OverallDiscount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment details updated", view)
}

// Checkout finalizes the cart into a sale
func (h *PosHandler) Checkout(c *gin.Context) {
	sessionID, ok := parseSessionID(c)
	if !ok {
		response.BadRequest(c, "Invalid session ID")
		return
	}

	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.posService.Checkout(c.Request.Context(), sessionID, &service.CheckoutInput{
		UserID:          *userID,
		PaymentType:     req.PaymentType,
		CustomerID:      req.CustomerID,
		ReceivedAmount:  req.ReceivedAmount,
		OverallDiscount: req.OverallDiscount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale completed", result)
}
