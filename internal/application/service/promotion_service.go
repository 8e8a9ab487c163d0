package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"tillpoint/internal/domain/entity"
	"tillpoint/internal/domain/enum"
	"tillpoint/internal/domain/repository"
	"tillpoint/pkg/apperror"
	"tillpoint/pkg/pagination"
	"tillpoint/pkg/utils"
)

// PromotionService handles promotion catalog operations
type PromotionService struct {
	promotionRepo repository.PromotionRepository
	productRepo   repository.ProductRepository
}

// NewPromotionService creates a new promotion service
func NewPromotionService(promotionRepo repository.PromotionRepository, productRepo repository.ProductRepository) *PromotionService {
	return &PromotionService{
		promotionRepo: promotionRepo,
		productRepo:   productRepo,
	}
}

// CreatePromotionInput represents the create promotion input. For discount
// promotions DiscountValue is a percent for Percent type and a decimal amount
// for Fixed type.
type CreatePromotionInput struct {
	Name              string
	Kind              enum.PromotionKind
	StartDate         time.Time
	EndDate           time.Time
	Priority          int
	ProductIDs        []uuid.UUID
	DiscountType      enum.DiscountType
	DiscountValue     float64
	QuantityToBuy     int
	FreeProductID     *uuid.UUID
	QuantityToGetFree int
}

// CreatePromotion creates a new promotion with its product set
func (s *PromotionService) CreatePromotion(ctx context.Context, input *CreatePromotionInput) (*entity.Promotion, error) {
	if input.EndDate.Before(input.StartDate) {
		return nil, apperror.NewBadRequestError("Promotion end date is before its start date")
	}

	products, err := s.productRepo.GetByIDs(ctx, input.ProductIDs)
	if err != nil {
		return nil, err
	}
	if len(products) != len(input.ProductIDs) {
		return nil, apperror.NewBadRequestError("Promotion references unknown products")
	}

	promotion := &entity.Promotion{
		Name:      input.Name,
		Kind:      input.Kind,
		Active:    true,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Priority:  input.Priority,
		Products:  products,
	}

	switch input.Kind {
	case enum.PromotionKindDiscount:
		promotion.DiscountType = input.DiscountType
		if input.DiscountType == enum.DiscountTypeFixed {
			promotion.DiscountValue = utils.ToCents(input.DiscountValue)
		} else {
			promotion.DiscountValue = int64(input.DiscountValue)
		}
		if promotion.DiscountValue <= 0 {
			return nil, apperror.NewBadRequestError("Discount value must be positive")
		}
	case enum.PromotionKindFreeProduct:
		if input.QuantityToBuy <= 0 || input.QuantityToGetFree <= 0 {
			return nil, apperror.NewBadRequestError("Free-product promotion quantities must be positive")
		}
		if input.FreeProductID == nil {
			return nil, apperror.NewBadRequestError("Free-product promotion requires a free product")
		}
		if free, err := s.productRepo.GetByID(ctx, *input.FreeProductID); err != nil {
			return nil, err
		} else if free == nil {
			return nil, apperror.NewNotFoundError("Free product")
		}
		promotion.QuantityToBuy = input.QuantityToBuy
		promotion.FreeProductID = input.FreeProductID
		promotion.QuantityToGetFree = input.QuantityToGetFree
	}

	if err := s.promotionRepo.Create(ctx, promotion); err != nil {
		return nil, err
	}
	return s.promotionRepo.GetByID(ctx, promotion.ID)
}

// GetPromotion retrieves a promotion by ID
func (s *PromotionService) GetPromotion(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	promotion, err := s.promotionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if promotion == nil {
		return nil, apperror.NewNotFoundError("Promotion")
	}
	return promotion, nil
}

// SetActive switches a promotion on or off
func (s *PromotionService) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Promotion, error) {
	promotion, err := s.GetPromotion(ctx, id)
	if err != nil {
		return nil, err
	}
	promotion.Active = active
	if err := s.promotionRepo.Update(ctx, promotion); err != nil {
		return nil, err
	}
	return promotion, nil
}

// DeletePromotion deletes a promotion
func (s *PromotionService) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetPromotion(ctx, id); err != nil {
		return err
	}
	return s.promotionRepo.Delete(ctx, id)
}

// ListPromotions lists all promotions
func (s *PromotionService) ListPromotions(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Promotion], error) {
	promotions, total, err := s.promotionRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(promotions, pag), nil
}

// ListActivePromotions lists the promotions currently in their date window,
// in the order the pricing engine applies them.
func (s *PromotionService) ListActivePromotions(ctx context.Context) ([]entity.Promotion, error) {
	return s.promotionRepo.ListActive(ctx, time.Now())
}
