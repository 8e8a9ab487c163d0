package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tillpoint/internal/domain/entity"
	domainRepo "tillpoint/internal/domain/repository"
	"tillpoint/pkg/pagination"
)

type promotionRepository struct {
	db *gorm.DB
}

// NewPromotionRepository creates a new promotion repository
func NewPromotionRepository(db *gorm.DB) domainRepo.PromotionRepository {
	return &promotionRepository{db: db}
}

func (r *promotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	return r.db.WithContext(ctx).Create(promotion).Error
}

func (r *promotionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	var promotion entity.Promotion
	err := r.db.WithContext(ctx).
		Preload("Products").
		First(&promotion, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &promotion, err
}

func (r *promotionRepository) Update(ctx context.Context, promotion *entity.Promotion) error {
	if err := r.db.WithContext(ctx).Save(promotion).Error; err != nil {
		return err
	}
	// Save does not touch many2many rows; replace the set explicitly.
	return r.db.WithContext(ctx).Model(promotion).
		Association("Products").Replace(promotion.Products)
}

func (r *promotionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Promotion{}, "id = ?", id).Error
}

func (r *promotionRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Promotion, int64, error) {
	var promotions []entity.Promotion
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Promotion{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Products").
		Order("priority ASC, created_at ASC").
		Find(&promotions).Error

	return promotions, total, err
}

// ListActive returns active promotions whose date window covers now, the end
// date counting for its whole day. Ordered by priority so derivation is
// deterministic.
func (r *promotionRepository) ListActive(ctx context.Context, now time.Time) ([]entity.Promotion, error) {
	var promotions []entity.Promotion
	err := r.db.WithContext(ctx).
		Where("active = ? AND start_date <= ? AND end_date > ?",
			true, now, now.AddDate(0, 0, -1)).
		Preload("Products").
		Order("priority ASC, created_at ASC").
		Find(&promotions).Error
	return promotions, err
}
