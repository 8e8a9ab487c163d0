package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	Code          string  `json:"code" binding:"required,max=100"`
	Unit          string  `json:"unit" binding:"omitempty,max=50"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	QuantityAlert int     `json:"quantity_alert" binding:"min=0"`
	CostPrice     float64 `json:"cost_price" binding:"min=0"`
	SellingPrice  float64 `json:"selling_price" binding:"required,gt=0"`
	SellingPrice2 float64 `json:"selling_price2" binding:"min=0"`
	SellingPrice3 float64 `json:"selling_price3" binding:"min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name          *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Unit          *string  `json:"unit" binding:"omitempty,max=50"`
	Quantity      *int     `json:"quantity" binding:"omitempty,min=0"`
	QuantityAlert *int     `json:"quantity_alert" binding:"omitempty,min=0"`
	CostPrice     *float64 `json:"cost_price" binding:"omitempty,min=0"`
	SellingPrice  *float64 `json:"selling_price" binding:"omitempty,gt=0"`
	SellingPrice2 *float64 `json:"selling_price2" binding:"omitempty,min=0"`
	SellingPrice3 *float64 `json:"selling_price3" binding:"omitempty,min=0"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search    string `form:"search"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
