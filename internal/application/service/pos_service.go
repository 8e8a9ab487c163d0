package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"tillpoint/internal/application/cart"
	"tillpoint/internal/domain/entity"
	"tillpoint/internal/domain/enum"
	"tillpoint/internal/domain/repository"
	"tillpoint/pkg/apperror"
	"tillpoint/pkg/utils"
)

// PosService drives the till: it owns the cart sessions, re-derives promotion
// state after every cart mutation and finalizes checkouts into immutable
// sales. One session belongs to one terminal; operations on a session are
// serialized by a per-session lock, which also guarantees at most one
// finalize in flight per cart.
type PosService struct {
	productRepo   repository.ProductRepository
	promotionRepo repository.PromotionRepository
	customerRepo  repository.CustomerRepository
	saleRepo      repository.SaleRepository
	settingsRepo  repository.SettingsRepository
	userRepo      repository.UserRepository

	mu       sync.RWMutex
	sessions map[uuid.UUID]*posSession

	now func() time.Time
}

type posSession struct {
	mu              sync.Mutex
	store           *cart.Store
	customerID      *uuid.UUID
	paymentType     enum.PaymentType
	overallDiscount int64
	received        int64
}

// NewPosService creates a new POS service
func NewPosService(
	productRepo repository.ProductRepository,
	promotionRepo repository.PromotionRepository,
	customerRepo repository.CustomerRepository,
	saleRepo repository.SaleRepository,
	settingsRepo repository.SettingsRepository,
	userRepo repository.UserRepository,
) *PosService {
	return &PosService{
		productRepo:   productRepo,
		promotionRepo: promotionRepo,
		customerRepo:  customerRepo,
		saleRepo:      saleRepo,
		settingsRepo:  settingsRepo,
		userRepo:      userRepo,
		sessions:      make(map[uuid.UUID]*posSession),
		now:           time.Now,
	}
}

// OpenSession creates an empty cart session and returns its id
func (s *PosService) OpenSession(ctx context.Context) (uuid.UUID, error) {
	id := uuid.New()
	s.mu.Lock()
	s.sessions[id] = &posSession{store: cart.NewStore()}
	s.mu.Unlock()
	return id, nil
}

// CloseSession discards a session and whatever cart it held
func (s *PosService) CloseSession(ctx context.Context, sessionID uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func (s *PosService) session(sessionID uuid.UUID) (*posSession, error) {
	s.mu.RLock()
	sess, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, apperror.NewNotFoundError("Cart session")
	}
	return sess, nil
}

// GetCart returns the current cart view for a session
func (s *PosService) GetCart(ctx context.Context, sessionID uuid.UUID) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.view(ctx, sessionID, sess, "")
}

// AddItem puts one unit of a product in the cart and re-derives promotions
func (s *PosService) AddItem(ctx context.Context, sessionID, productID uuid.UUID) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	product, err := s.product(ctx, productID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.store.Add(product); err != nil {
		return nil, err
	}
	if err := s.rederive(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(ctx, sessionID, sess, "")
}

// SetQuantity sets a regular line's quantity. A quantity above available
// stock is clamped to the stock ceiling and the view carries a warning; a
// quantity of zero removes the line.
func (s *PosService) SetQuantity(ctx context.Context, sessionID, productID uuid.UUID, quantity int) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	product, err := s.product(ctx, productID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	warning := ""
	if err := sess.store.SetQuantity(product, quantity); err != nil {
		appErr := apperror.GetAppError(err)
		if appErr.Code != 422 {
			return nil, err
		}
		// Clamped rather than rejected; tell the cashier why.
		warning = appErr.Message
	}
	if err := s.rederive(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(ctx, sessionID, sess, warning)
}

// SelectTier switches a regular line to another price tier
func (s *PosService) SelectTier(ctx context.Context, sessionID, productID uuid.UUID, tier int) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	product, err := s.product(ctx, productID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if err := sess.store.SelectTier(product, tier); err != nil {
		return nil, err
	}
	if err := s.rederive(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(ctx, sessionID, sess, "")
}

// RemoveItem removes the regular line for a product
func (s *PosService) RemoveItem(ctx context.Context, sessionID, productID uuid.UUID) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.store.Remove(productID)
	if err := s.rederive(ctx, sess); err != nil {
		return nil, err
	}
	return s.view(ctx, sessionID, sess, "")
}

// ClearCart empties the cart (cashier abandonment)
func (s *PosService) ClearCart(ctx context.Context, sessionID uuid.UUID) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.store.Clear()
	sess.customerID = nil
	sess.overallDiscount = 0
	sess.received = 0
	sess.paymentType = enum.PaymentTypeCash
	return s.view(ctx, sessionID, sess, "")
}

// SetCustomer attaches (or detaches, with nil) a customer to the session
func (s *PosService) SetCustomer(ctx context.Context, sessionID uuid.UUID, customerID *uuid.UUID) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	if customerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.customerID = customerID
	return s.view(ctx, sessionID, sess, "")
}

// SetPayment records the payment method, cash received and overall discount
// for the session, ahead of checkout.
func (s *PosService) SetPayment(ctx context.Context, sessionID uuid.UUID, payment enum.PaymentType, received, overallDiscount float64) (*CartView, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}
	if overallDiscount < 0 {
		return nil, apperror.NewBadRequestError("Overall discount cannot be negative")
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.paymentType = payment
	sess.received = utils.ToCents(received)
	sess.overallDiscount = utils.ToCents(overallDiscount)
	return s.view(ctx, sessionID, sess, "")
}

// CheckoutInput carries the finalize parameters of a checkout
type CheckoutInput struct {
	UserID          uuid.UUID
	PaymentType     enum.PaymentType
	CustomerID      *uuid.UUID
	ReceivedAmount  float64
	OverallDiscount float64
}

// CheckoutResult is the outcome of a finalized checkout: the persisted sale
// and the receipt data for the printing collaborator.
type CheckoutResult struct {
	Sale    *entity.Sale    `json:"sale"`
	Receipt *entity.Receipt `json:"receipt"`
}

// Checkout validates the session, freezes the cart into an immutable sale and
// hands it to the sale repository, which persists it and decrements stock as
// one unit. On success the cart resets to empty; on any failure the cart is
// left untouched so the cashier can retry.
func (s *PosService) Checkout(ctx context.Context, sessionID uuid.UUID, input *CheckoutInput) (*CheckoutResult, error) {
	sess, err := s.session(sessionID)
	if err != nil {
		return nil, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.store.Empty() {
		return nil, apperror.ErrEmptyCart
	}

	// The finalize parameters stay local until the sale is persisted, so a
	// rejected checkout leaves the session exactly as it was.
	customerID := sess.customerID
	if input.CustomerID != nil {
		customerID = input.CustomerID
	}
	paymentType := input.PaymentType
	received := utils.ToCents(input.ReceivedAmount)
	overallDiscount := sess.overallDiscount
	if input.OverallDiscount > 0 {
		overallDiscount = utils.ToCents(input.OverallDiscount)
	}

	var customer *entity.Customer
	if paymentType == enum.PaymentTypeCredit {
		if customerID == nil {
			return nil, apperror.ErrMissingCustomerForCredit
		}
		customer, err = s.customerRepo.GetByID(ctx, *customerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.ErrMissingCustomerForCredit
		}
	}

	// The final derivation is authoritative: promotions and stock may have
	// changed since the last cart edit.
	if err := s.rederive(ctx, sess); err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	lines := sess.store.Lines()
	totals := cart.Compute(lines, overallDiscount, settings.VATRatePercent, paymentType, received)

	if shortfall := totals.Shortfall(); shortfall > 0 {
		return nil, apperror.NewInsufficientPaymentError(float64(shortfall) / 100)
	}

	sale := buildSale(input.UserID, customerID, lines, &totals, s.now())

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		// Cart state stays intact for retry.
		if apperror.IsAppError(err) {
			return nil, err
		}
		return nil, apperror.NewPersistenceError(err)
	}

	sess.store.Clear()
	sess.customerID = nil
	sess.overallDiscount = 0
	sess.received = 0
	sess.paymentType = enum.PaymentTypeCash

	sale.Customer = customer
	if operator, err := s.userRepo.GetByID(ctx, input.UserID); err == nil && operator != nil {
		sale.User = *operator
	}

	return &CheckoutResult{
		Sale:    sale,
		Receipt: entity.NewReceipt(sale, settings),
	}, nil
}

// buildSale freezes the cart lines and totals into an immutable sale record
func buildSale(userID uuid.UUID, customerID *uuid.UUID, lines []cart.Line, totals *cart.Totals, now time.Time) *entity.Sale {
	sale := &entity.Sale{
		InvoiceNo:       fmt.Sprintf("INV-%s", uuid.New().String()[:8]),
		UserID:          userID,
		CustomerID:      customerID,
		SaleDate:        now,
		Status:          enum.SaleStatusPaid,
		SubTotal:        totals.SubTotal,
		ItemDiscount:    totals.ItemDiscount,
		OverallDiscount: totals.OverallDiscount,
		VATRate:         totals.VATRate,
		VAT:             totals.VAT,
		GrandTotal:      totals.GrandTotal,
		PaymentType:     totals.PaymentType,
		Received:        totals.Received,
		Change:          totals.Change,
	}

	if totals.PaymentType == enum.PaymentTypeCredit {
		sale.Status = enum.SaleStatusUnpaid
		sale.Outstanding = totals.GrandTotal
		sale.Received = 0
		sale.Change = 0
	}

	for i := range lines {
		line := &lines[i]
		sale.TotalItems += line.Quantity
		sale.Items = append(sale.Items, entity.SaleItem{
			ProductID:   line.ProductID,
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			ListPrice:   line.TierPrice,
			Total:       line.Total(),
			FreeGift:    line.FreeGift,
			PromotionID: line.PromotionID,
		})
	}

	return sale
}

// rederive reloads the active promotion set and the product snapshots the
// derivation needs, then recomputes promotion state on the cart.
func (s *PosService) rederive(ctx context.Context, sess *posSession) error {
	promotions, err := s.promotionRepo.ListActive(ctx, s.now())
	if err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(sess.store.Regular())+len(promotions))
	seen := make(map[uuid.UUID]bool)
	for _, line := range sess.store.Regular() {
		if !seen[line.ProductID] {
			seen[line.ProductID] = true
			ids = append(ids, line.ProductID)
		}
	}
	for i := range promotions {
		if promotions[i].FreeProductID != nil && !seen[*promotions[i].FreeProductID] {
			seen[*promotions[i].FreeProductID] = true
			ids = append(ids, *promotions[i].FreeProductID)
		}
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	catalog := make(productCatalog, len(products))
	for i := range products {
		catalog[products[i].ID] = &products[i]
	}

	sess.store.ApplyPromotions(promotions, catalog)
	return nil
}

func (s *PosService) product(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// productCatalog adapts a product map to the cart.ProductLookup interface
type productCatalog map[uuid.UUID]*entity.Product

func (c productCatalog) Product(id uuid.UUID) (*entity.Product, bool) {
	p, ok := c[id]
	return p, ok
}
