package entity

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
	FreeGift  bool    `json:"free_gift,omitempty"`
}

// Receipt is a value object handed to the printing collaborator. It is NOT a
// database entity: it is composed from a finalized sale plus the store
// settings, and carries data only, no formatting.
type Receipt struct {
	Header          ReceiptHeader `json:"header"`
	InvoiceNo       string        `json:"invoice_no"`
	Date            string        `json:"date"`
	Cashier         string        `json:"cashier,omitempty"`
	Customer        string        `json:"customer,omitempty"`
	PaymentType     string        `json:"payment_type"`
	Items           []ReceiptItem `json:"items"`
	SubTotal        float64       `json:"sub_total"`
	ItemDiscount    float64       `json:"item_discount"`
	OverallDiscount float64       `json:"overall_discount"`
	VATRate         float64       `json:"vat_rate"`
	VAT             float64       `json:"vat"`
	GrandTotal      float64       `json:"grand_total"`
	Received        float64       `json:"received"`
	Change          float64       `json:"change"`
	Outstanding     float64       `json:"outstanding"`
}

// NewReceipt composes a receipt from a finalized sale and the store settings.
func NewReceipt(sale *Sale, settings *StoreSettings) *Receipt {
	r := &Receipt{
		InvoiceNo:       sale.InvoiceNo,
		Date:            sale.SaleDate.Format("2006-01-02 15:04"),
		Cashier:         sale.User.Name,
		PaymentType:     sale.PaymentType.String(),
		SubTotal:        float64(sale.SubTotal) / 100,
		ItemDiscount:    float64(sale.ItemDiscount) / 100,
		OverallDiscount: float64(sale.OverallDiscount) / 100,
		VATRate:         sale.VATRate,
		VAT:             float64(sale.VAT) / 100,
		GrandTotal:      float64(sale.GrandTotal) / 100,
		Received:        float64(sale.Received) / 100,
		Change:          float64(sale.Change) / 100,
		Outstanding:     float64(sale.Outstanding) / 100,
	}
	if settings != nil {
		r.Header = ReceiptHeader{
			StoreName: settings.StoreName,
			Address:   settings.Address,
			Phone:     settings.Phone,
			TaxID:     settings.TaxID,
		}
	}
	if sale.Customer != nil {
		r.Customer = sale.Customer.Name
	}
	for _, item := range sale.Items {
		r.Items = append(r.Items, ReceiptItem{
			Name:      item.ProductName,
			Quantity:  item.Quantity,
			UnitPrice: float64(item.UnitPrice) / 100,
			Total:     float64(item.Total) / 100,
			FreeGift:  item.FreeGift,
		})
	}
	return r
}
