package cart

import (
	"github.com/google/uuid"
	"tillpoint/internal/domain/entity"
	"tillpoint/internal/domain/enum"
)

// mapCatalog is a ProductLookup backed by a map, for tests.
type mapCatalog map[uuid.UUID]*entity.Product

func (c mapCatalog) Product(id uuid.UUID) (*entity.Product, bool) {
	p, ok := c[id]
	return p, ok
}

func newCatalog(products ...*entity.Product) mapCatalog {
	c := make(mapCatalog, len(products))
	for _, p := range products {
		c[p.ID] = p
	}
	return c
}

func testProduct(name string, stock int, priceCents int64) *entity.Product {
	return &entity.Product{
		ID:           uuid.New(),
		Name:         name,
		Code:         name,
		Unit:         "pcs",
		Quantity:     stock,
		SellingPrice: priceCents,
	}
}

func discountPromo(value int64, discountType enum.DiscountType, priority int, products ...*entity.Product) entity.Promotion {
	p := entity.Promotion{
		ID:            uuid.New(),
		Name:          "discount",
		Kind:          enum.PromotionKindDiscount,
		Active:        true,
		Priority:      priority,
		DiscountType:  discountType,
		DiscountValue: value,
	}
	for _, prod := range products {
		p.Products = append(p.Products, *prod)
	}
	return p
}

func freeProductPromo(buy, getFree int, freeProduct *entity.Product, triggers ...*entity.Product) entity.Promotion {
	p := entity.Promotion{
		ID:                uuid.New(),
		Name:              "free product",
		Kind:              enum.PromotionKindFreeProduct,
		Active:            true,
		QuantityToBuy:     buy,
		QuantityToGetFree: getFree,
	}
	if freeProduct != nil {
		id := freeProduct.ID
		p.FreeProductID = &id
	}
	for _, prod := range triggers {
		p.Products = append(p.Products, *prod)
	}
	return p
}

func addTimes(s *Store, p *entity.Product, n int) {
	for i := 0; i < n; i++ {
		if err := s.Add(p); err != nil {
			panic(err)
		}
	}
}
