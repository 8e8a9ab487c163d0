package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"tillpoint/internal/domain/entity"
	"tillpoint/pkg/pagination"
)

// SaleRepository defines the interface for sale data operations.
//
// Create persists the sale with its items and decrements stock for every
// line (free-gift lines included) as a single logical unit: if any product's
// stock would go negative the whole operation fails and nothing is written.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	GetOutstanding(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error)
	// SummarizeRange aggregates sales between two instants for reporting.
	SummarizeRange(ctx context.Context, from, to time.Time) (*SaleSummary, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CustomerID *uuid.UUID
	UserID     *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	OnlyUnpaid bool
	SortBy     string
	SortOrder  string
}

// SaleSummary aggregates sales figures for a reporting window, in cents.
type SaleSummary struct {
	Count       int64 `json:"count"`
	Gross       int64 `json:"gross"`
	VAT         int64 `json:"vat"`
	Outstanding int64 `json:"outstanding"`
}
