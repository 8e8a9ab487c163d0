package repository

import (
	"context"

	"tillpoint/internal/domain/entity"
)

// SettingsRepository defines the interface for store settings operations.
// There is a single settings row; Get returns it, creating defaults if absent.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Update(ctx context.Context, settings *entity.StoreSettings) error
}
