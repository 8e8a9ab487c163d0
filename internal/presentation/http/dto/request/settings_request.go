package request

// UpdateSettingsRequest represents a store settings update request
type UpdateSettingsRequest struct {
	StoreName      *string  `json:"store_name" binding:"omitempty,min=2,max=255"`
	Address        *string  `json:"address"`
	Phone          *string  `json:"phone" binding:"omitempty,max=50"`
	TaxID          *string  `json:"tax_id" binding:"omitempty,max=50"`
	Currency       *string  `json:"currency" binding:"omitempty,max=10"`
	VATRatePercent *float64 `json:"vat_rate_percent" binding:"omitempty,min=0,max=100"`
}
