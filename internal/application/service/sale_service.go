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

// SaleService exposes finalized sales: listing, receipts and payments
// against outstanding credit balances. It never mutates a sale's pricing
// breakdown; only the outstanding balance moves as payments come in.
type SaleService struct {
	saleRepo     repository.SaleRepository
	settingsRepo repository.SettingsRepository
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, settingsRepo repository.SettingsRepository) *SaleService {
	return &SaleService{
		saleRepo:     saleRepo,
		settingsRepo: settingsRepo,
	}
}

// GetSale retrieves a sale with its items
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// GetReceipt composes the receipt data for a finalized sale
func (s *SaleService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.GetSale(ctx, id)
	if err != nil {
		return nil, err
	}
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	return entity.NewReceipt(sale, settings), nil
}

// ListSales lists sales with filtering
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// GetOutstanding returns credit sales that still carry an unpaid balance
func (s *SaleService) GetOutstanding(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	sales, total, err := s.saleRepo.GetOutstanding(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// RecordPayment records a payment towards a credit sale's outstanding
// balance. The sale flips to paid when the balance reaches zero.
func (s *SaleService) RecordPayment(ctx context.Context, saleID uuid.UUID, amount float64) (*entity.Sale, error) {
	if amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	sale, err := s.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	if sale.Outstanding <= 0 {
		return nil, apperror.NewBadRequestError("Sale has no outstanding balance")
	}

	amountCents := utils.ToCents(amount)
	sale.Received += amountCents
	sale.Outstanding -= amountCents
	if sale.Outstanding <= 0 {
		sale.Outstanding = 0
		sale.Status = enum.SaleStatusPaid
	}

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// DailySummary aggregates today's sales for the dashboard
func (s *SaleService) DailySummary(ctx context.Context) (*repository.SaleSummary, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.saleRepo.SummarizeRange(ctx, start, start.AddDate(0, 0, 1))
}
