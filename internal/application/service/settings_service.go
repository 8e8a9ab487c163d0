package service

import (
	"context"

	"tillpoint/internal/domain/entity"
	"tillpoint/internal/domain/repository"
	"tillpoint/pkg/apperror"
)

// SettingsService handles store settings operations
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the store settings, creating defaults if absent
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.StoreSettings, error) {
	return s.settingsRepo.Get(ctx)
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	StoreName      *string
	Address        *string
	Phone          *string
	TaxID          *string
	Currency       *string
	VATRatePercent *float64
}

// UpdateSettings updates the store settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.StoreSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if input.StoreName != nil {
		settings.StoreName = *input.StoreName
	}
	if input.Address != nil {
		settings.Address = *input.Address
	}
	if input.Phone != nil {
		settings.Phone = *input.Phone
	}
	if input.TaxID != nil {
		settings.TaxID = *input.TaxID
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.VATRatePercent != nil {
		if *input.VATRatePercent < 0 || *input.VATRatePercent > 100 {
			return nil, apperror.NewBadRequestError("VAT rate must be between 0 and 100")
		}
		settings.VATRatePercent = *input.VATRatePercent
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
