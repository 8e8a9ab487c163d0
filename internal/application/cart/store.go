package cart

import (
	"github.com/google/uuid"
	"tillpoint/internal/domain/entity"
	"tillpoint/pkg/apperror"
)

// Store owns the lines of one cart. Regular lines are mutated through the
// action set below; free-gift lines are derived state owned by the promotion
// engine and only ever change through ApplyPromotions.
//
// Store is not safe for concurrent use; a cart belongs to exactly one till
// session and the caller serializes access.
type Store struct {
	regular []Line
	gifts   []Line
}

// NewStore creates an empty cart store
func NewStore() *Store {
	return &Store{}
}

// Add puts one unit of the product in the cart. If a regular line already
// exists its quantity grows by one, bounded by available stock; otherwise a
// new line is created at the tier-1 price.
func (s *Store) Add(product *entity.Product) error {
	for i := range s.regular {
		if s.regular[i].ProductID == product.ID {
			if s.regular[i].Quantity+1 > product.Quantity {
				return apperror.NewInsufficientStockError(product.Name, product.Quantity)
			}
			s.regular[i].Quantity++
			return nil
		}
	}

	if !product.InStock() {
		return apperror.NewOutOfStockError(product.Name)
	}

	s.regular = append(s.regular, Line{
		ProductID:   product.ID,
		ProductName: product.Name,
		Unit:        product.Unit,
		Tier:        1,
		Quantity:    1,
		TierPrice:   product.SellingPrice,
		UnitPrice:   product.SellingPrice,
	})
	return nil
}

// SetQuantity sets the regular line's quantity, clamped to [0, stock]. A
// quantity of zero (or below) removes the line. When the requested quantity
// exceeds stock the line is clamped to the stock ceiling and an
// InsufficientStock error is returned alongside the applied clamp, so the
// caller can tell the cashier why the number did not stick.
func (s *Store) SetQuantity(product *entity.Product, quantity int) error {
	idx := s.regularIndex(product.ID)
	if idx < 0 {
		return apperror.NewBadRequestError("Product is not in the cart")
	}

	if quantity <= 0 {
		s.regular = append(s.regular[:idx], s.regular[idx+1:]...)
		return nil
	}

	if quantity > product.Quantity {
		s.regular[idx].Quantity = product.Quantity
		return apperror.NewInsufficientStockError(product.Name, product.Quantity)
	}

	s.regular[idx].Quantity = quantity
	return nil
}

// SelectTier switches the regular line to another price tier. Switching is a
// more specific user intent than an automatic promotion, so any applied
// discount promotion is cleared; the next derivation may re-apply against the
// new tier price. Free-gift lines have no tier to switch.
func (s *Store) SelectTier(product *entity.Product, tier int) error {
	idx := s.regularIndex(product.ID)
	if idx < 0 {
		return apperror.NewBadRequestError("Product is not in the cart")
	}

	price, err := ResolveTierPrice(product, tier)
	if err != nil {
		return err
	}

	s.regular[idx].Tier = tier
	s.regular[idx].TierPrice = price
	s.regular[idx].UnitPrice = price
	s.regular[idx].PromotionID = nil
	return nil
}

// Remove deletes the regular line for the product. Free-gift lines are never
// removed directly; they disappear when a later derivation no longer
// justifies them.
func (s *Store) Remove(productID uuid.UUID) {
	idx := s.regularIndex(productID)
	if idx >= 0 {
		s.regular = append(s.regular[:idx], s.regular[idx+1:]...)
	}
}

// Clear empties the cart, both regular and derived lines
func (s *Store) Clear() {
	s.regular = nil
	s.gifts = nil
}

// Empty reports whether the cart holds no lines at all
func (s *Store) Empty() bool {
	return len(s.regular) == 0 && len(s.gifts) == 0
}

// Regular returns a copy of the regular lines in insertion order
func (s *Store) Regular() []Line {
	out := make([]Line, len(s.regular))
	copy(out, s.regular)
	return out
}

// Gifts returns a copy of the derived free-gift lines
func (s *Store) Gifts() []Line {
	out := make([]Line, len(s.gifts))
	copy(out, s.gifts)
	return out
}

// Lines returns all cart lines, regular first, then free gifts
func (s *Store) Lines() []Line {
	out := make([]Line, 0, len(s.regular)+len(s.gifts))
	out = append(out, s.regular...)
	out = append(out, s.gifts...)
	return out
}

// ApplyPromotions re-derives promotion state from the current regular lines.
// Derivation is keyed only off regular-line content, so committing a new gift
// set can never re-trigger another derivation. Gift lines are diffed
// structurally (product id and quantity) and only replaced when they changed.
func (s *Store) ApplyPromotions(promotions []entity.Promotion, catalog ProductLookup) {
	derived := Derive(s.regular, promotions, catalog)
	s.regular = derived.Regular
	if !giftsEqual(s.gifts, derived.Gifts) {
		s.gifts = derived.Gifts
	}
}

func (s *Store) regularIndex(productID uuid.UUID) int {
	for i := range s.regular {
		if s.regular[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func giftsEqual(a, b []Line) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ProductID != b[i].ProductID || a[i].Quantity != b[i].Quantity {
			return false
		}
	}
	return true
}
