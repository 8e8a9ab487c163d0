package service

import (
	"context"

	"github.com/google/uuid"
	"tillpoint/internal/domain/entity"
	"tillpoint/internal/domain/repository"
	"tillpoint/pkg/apperror"
	"tillpoint/pkg/pagination"
	"tillpoint/pkg/utils"
)

// ProductService handles product catalog operations
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput represents the create product input. Prices arrive as
// decimals and are stored in cents.
type CreateProductInput struct {
	Name          string
	Code          string
	Unit          string
	Quantity      int
	QuantityAlert int
	CostPrice     float64
	SellingPrice  float64
	SellingPrice2 float64
	SellingPrice3 float64
}

// CreateProduct creates a new product
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.SellingPrice <= 0 {
		return nil, apperror.NewBadRequestError("Tier-1 selling price is required")
	}

	existing, err := s.productRepo.GetByCode(ctx, input.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewAppError(409, "Product code already exists")
	}

	product := &entity.Product{
		Name:          input.Name,
		Code:          input.Code,
		Unit:          input.Unit,
		Quantity:      input.Quantity,
		QuantityAlert: input.QuantityAlert,
		CostPrice:     utils.ToCents(input.CostPrice),
		SellingPrice:  utils.ToCents(input.SellingPrice),
		SellingPrice2: utils.ToCents(input.SellingPrice2),
		SellingPrice3: utils.ToCents(input.SellingPrice3),
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return s.productRepo.GetByID(ctx, product.ID)
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name          *string
	Unit          *string
	Quantity      *int
	QuantityAlert *int
	CostPrice     *float64
	SellingPrice  *float64
	SellingPrice2 *float64
	SellingPrice3 *float64
}

// UpdateProduct updates a product
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Quantity != nil {
		product.Quantity = *input.Quantity
	}
	if input.QuantityAlert != nil {
		product.QuantityAlert = *input.QuantityAlert
	}
	if input.CostPrice != nil {
		product.CostPrice = utils.ToCents(*input.CostPrice)
	}
	if input.SellingPrice != nil {
		if *input.SellingPrice <= 0 {
			return nil, apperror.NewBadRequestError("Tier-1 selling price must be positive")
		}
		product.SellingPrice = utils.ToCents(*input.SellingPrice)
	}
	if input.SellingPrice2 != nil {
		product.SellingPrice2 = utils.ToCents(*input.SellingPrice2)
	}
	if input.SellingPrice3 != nil {
		product.SellingPrice3 = utils.ToCents(*input.SellingPrice3)
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetProduct(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists products with filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// GetLowStock returns products at or below their alert quantity
func (s *ProductService) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}
