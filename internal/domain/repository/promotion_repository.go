package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"tillpoint/internal/domain/entity"
	"tillpoint/pkg/pagination"
)

// PromotionRepository defines the interface for promotion data operations.
// ListActive returns promotions in ascending priority order (ties broken by
// creation time) with product associations preloaded, so "first matching
// promotion wins" is deterministic.
type PromotionRepository interface {
	Create(ctx context.Context, promotion *entity.Promotion) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)
	Update(ctx context.Context, promotion *entity.Promotion) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Promotion, int64, error)
	ListActive(ctx context.Context, now time.Time) ([]entity.Promotion, error)
}
