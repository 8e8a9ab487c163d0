package request

// SaleFilterRequest represents sale filter parameters
type SaleFilterRequest struct {
	Search     string `form:"search"`
	CustomerID string `form:"customer_id"`
	UserID     string `form:"user_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	OnlyUnpaid bool   `form:"only_unpaid"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// RecordPaymentRequest records a payment against an outstanding sale
type RecordPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}
