package handler

import (
	"github.com/gin-gonic/gin"
	"tillpoint/internal/application/service"
	"tillpoint/internal/presentation/http/dto/request"
	"tillpoint/internal/presentation/http/dto/response"
	"tillpoint/pkg/pagination"
)

// PromotionHandler handles promotion-related HTTP requests
type PromotionHandler struct {
	promotionService *service.PromotionService
}

// NewPromotionHandler creates a new promotion handler
func NewPromotionHandler(promotionService *service.PromotionService) *PromotionHandler {
	return &PromotionHandler{promotionService: promotionService}
}

// List handles listing promotions
func (h *PromotionHandler) List(c *gin.Context) {
	params := &pagination.PaginationParams{}
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.promotionService.ListPromotions(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Promotions retrieved successfully", result)
}

// ListActive handles listing promotions currently in effect
func (h *PromotionHandler) ListActive(c *gin.Context) {
	promotions, err := h.promotionService.ListActivePromotions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Active promotions retrieved successfully", promotions)
}

// Get handles retrieving a single promotion
func (h *PromotionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid promotion ID")
		return
	}

	promotion, err := h.promotionService.GetPromotion(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promotion retrieved successfully", promotion)
}

// Create handles creating a promotion
func (h *PromotionHandler) Create(c *gin.Context) {
	var req request.CreatePromotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	promotion, err := h.promotionService.CreatePromotion(c.Request.Context(), &service.CreatePromotionInput{
		Name:              req.Name,
		Kind:              req.Kind,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		Priority:          req.Priority,
		ProductIDs:        req.ProductIDs,
		DiscountType:      req.DiscountType,
		DiscountValue:     req.DiscountValue,
		QuantityToBuy:     req.QuantityToBuy,
		FreeProductID:     req.FreeProductID,
		QuantityToGetFree: req.QuantityToGetFree,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Promotion created successfully", promotion)
}

// SetActive handles toggling a promotion on or off
func (h *PromotionHandler) SetActive(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid promotion ID")
		return
	}

	var req request.SetPromotionActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	promotion, err := h.promotionService.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promotion updated successfully", promotion)
}

// Delete handles deleting a promotion
func (h *PromotionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid promotion ID")
		return
	}

	if err := h.promotionService.DeletePromotion(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Promotion deleted successfully", nil)
}
