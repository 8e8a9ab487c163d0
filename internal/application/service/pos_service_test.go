package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tillpoint/internal/domain/entity"
	"tillpoint/internal/domain/enum"
	"tillpoint/internal/domain/repository"
	"tillpoint/pkg/apperror"
	"tillpoint/pkg/pagination"
)

// ---- in-memory fakes -------------------------------------------------------

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		r.products[p.ID] = p
	}
	return r
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.products[product.ID] = product
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return nil, 0, nil
}

func (r *fakeProductRepo) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	return nil, nil
}

type fakePromotionRepo struct {
	promotions []entity.Promotion
}

func (r *fakePromotionRepo) Create(ctx context.Context, p *entity.Promotion) error { return nil }
func (r *fakePromotionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	return nil, nil
}
func (r *fakePromotionRepo) Update(ctx context.Context, p *entity.Promotion) error { return nil }
func (r *fakePromotionRepo) Delete(ctx context.Context, id uuid.UUID) error        { return nil }
func (r *fakePromotionRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Promotion, int64, error) {
	return r.promotions, int64(len(r.promotions)), nil
}
func (r *fakePromotionRepo) ListActive(ctx context.Context, now time.Time) ([]entity.Promotion, error) {
	return r.promotions, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo(customers ...*entity.Customer) *fakeCustomerRepo {
	r := &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
	for _, c := range customers {
		r.customers[c.ID] = c
	}
	return r
}

func (r *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}
func (r *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }
func (r *fakeCustomerRepo) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	return nil, 0, nil
}

// fakeSaleRepo persists to memory and decrements stock like the real
// repository: all-or-nothing, failing when stock would go negative.
type fakeSaleRepo struct {
	productRepo *fakeProductRepo
	sales       []*entity.Sale
	failWith    error
}

func (r *fakeSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, item := range sale.Items {
		p, ok := r.productRepo.products[item.ProductID]
		if !ok || p.Quantity < item.Quantity {
			return errors.New("insufficient stock")
		}
	}
	for _, item := range sale.Items {
		r.productRepo.products[item.ProductID].Quantity -= item.Quantity
	}
	r.sales = append(r.sales, sale)
	return nil
}

func (r *fakeSaleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}
func (r *fakeSaleRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	return r.GetByID(ctx, id)
}
func (r *fakeSaleRepo) GetByInvoiceNo(ctx context.Context, invoiceNo string) (*entity.Sale, error) {
	return nil, nil
}
func (r *fakeSaleRepo) Update(ctx context.Context, sale *entity.Sale) error { return nil }
func (r *fakeSaleRepo) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	return nil, 0, nil
}
func (r *fakeSaleRepo) GetOutstanding(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	return nil, 0, nil
}
func (r *fakeSaleRepo) SummarizeRange(ctx context.Context, from, to time.Time) (*repository.SaleSummary, error) {
	return &repository.SaleSummary{}, nil
}

type fakeSettingsRepo struct {
	settings entity.StoreSettings
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.StoreSettings, error) {
	cp := r.settings
	return &cp, nil
}
func (r *fakeSettingsRepo) Update(ctx context.Context, s *entity.StoreSettings) error {
	r.settings = *s
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error { return nil }
func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}
func (r *fakeUserRepo) Update(ctx context.Context, u *entity.User) error { return nil }
func (r *fakeUserRepo) List(ctx context.Context) ([]entity.User, error)  { return nil, nil }

// ---- fixture ---------------------------------------------------------------

type posFixture struct {
	svc         *PosService
	productRepo *fakeProductRepo
	promoRepo   *fakePromotionRepo
	saleRepo    *fakeSaleRepo
	operator    *entity.User
}

func newPosFixture(products ...*entity.Product) *posFixture {
	productRepo := newFakeProductRepo(products...)
	promoRepo := &fakePromotionRepo{}
	saleRepo := &fakeSaleRepo{productRepo: productRepo}
	settingsRepo := &fakeSettingsRepo{settings: entity.StoreSettings{
		StoreName:      "Test Store",
		Currency:       "KES",
		VATRatePercent: 7,
	}}
	operator := &entity.User{ID: uuid.New(), Name: "Till One", Email: "till1@example.com", Active: true}

	return &posFixture{
		svc: NewPosService(productRepo, promoRepo, newFakeCustomerRepo(), saleRepo,
			settingsRepo, newFakeUserRepo(operator)),
		productRepo: productRepo,
		promoRepo:   promoRepo,
		saleRepo:    saleRepo,
		operator:    operator,
	}
}

func stockProduct(name string, stock int, priceCents int64) *entity.Product {
	return &entity.Product{
		ID:           uuid.New(),
		Name:         name,
		Code:         name,
		Unit:         "pcs",
		Quantity:     stock,
		SellingPrice: priceCents,
	}
}

// ---- tests -----------------------------------------------------------------

func TestPosService_AddItemAndTotals(t *testing.T) {
	ctx := context.Background()
	rice := stockProduct("rice", 100, 10000)
	f := newPosFixture(rice)

	sessionID, err := f.svc.OpenSession(ctx)
	require.NoError(t, err)

	var view *CartView
	for i := 0; i < 10; i++ {
		view, err = f.svc.AddItem(ctx, sessionID, rice.ID)
		require.NoError(t, err)
	}

	_, err = f.svc.SetPayment(ctx, sessionID, enum.PaymentTypeCash, 0, 100)
	require.NoError(t, err)
	view, err = f.svc.GetCart(ctx, sessionID)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, view.SubTotal)
	assert.Equal(t, 63.0, view.VAT)
	assert.Equal(t, 963.0, view.GrandTotal)
}

func TestPosService_CheckoutCashChange(t *testing.T) {
	ctx := context.Background()
	rice := stockProduct("rice", 100, 10000)
	f := newPosFixture(rice)

	sessionID, _ := f.svc.OpenSession(ctx)
	for i := 0; i < 10; i++ {
		_, err := f.svc.AddItem(ctx, sessionID, rice.ID)
		require.NoError(t, err)
	}

	result, err := f.svc.Checkout(ctx, sessionID, &CheckoutInput{
		UserID:          f.operator.ID,
		PaymentType:     enum.PaymentTypeCash,
		ReceivedAmount:  1000,
		OverallDiscount: 100,
	})
	require.NoError(t, err)

	sale := result.Sale
	assert.Equal(t, int64(96300), sale.GrandTotal)
	assert.Equal(t, int64(3700), sale.Change)
	assert.Equal(t, enum.SaleStatusPaid, sale.Status)
	assert.Equal(t, int64(0), sale.Outstanding)
	assert.Len(t, sale.Items, 1)

	// Stock decremented atomically by the repository.
	assert.Equal(t, 90, f.productRepo.products[rice.ID].Quantity)

	// Cart resets to empty after a successful finalize.
	view, err := f.svc.GetCart(ctx, sessionID)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)

	// Receipt carries the itemized breakdown for the printing collaborator.
	require.NotNil(t, result.Receipt)
	assert.Equal(t, "Test Store", result.Receipt.Header.StoreName)
	assert.Equal(t, 37.0, result.Receipt.Change)
	assert.Equal(t, "Till One", result.Receipt.Cashier)
}

func TestPosService_CheckoutInsufficientCashRejected(t *testing.T) {
	ctx := context.Background()
	rice := stockProduct("rice", 100, 10000)
	f := newPosFixture(rice)

	sessionID, _ := f.svc.OpenSession(ctx)
	for i := 0; i < 10; i++ {
		_, err := f.svc.AddItem(ctx, sessionID, rice.ID)
		require.NoError(t, err)
	}

	_, err := f.svc.Checkout(ctx, sessionID, &CheckoutInput{
		UserID:          f.operator.ID,
		PaymentType:     enum.PaymentTypeCash,
		ReceivedAmount:  900,
		OverallDiscount: 100,
	})
	require.Error(t, err)
	assert.True(t, apperror.IsAppError(err))

	// Nothing persisted, cart untouched, stock untouched.
	assert.Empty(t, f.saleRepo.sales)
	assert.Equal(t, 100, f.productRepo.products[rice.ID].Quantity)
	view, _ := f.svc.GetCart(ctx, sessionID)
	assert.Len(t, view.Lines, 1)
}

func TestPosService_CheckoutFractionalCashExact(t *testing.T) {
	ctx := context.Background()
	soda := stockProduct("soda", 10, 1000)
	f := newPosFixture(soda)

	sessionID, _ := f.svc.OpenSession(ctx)
	_, err := f.svc.AddItem(ctx, sessionID, soda.ID)
	require.NoError(t, err)

	// 10.00 plus 7% VAT is 10.70. The exact amount has a fractional part
	// with no exact binary float representation, so a truncating conversion
	// would land one cent short and reject the payment.
	result, err := f.svc.Checkout(ctx, sessionID, &CheckoutInput{
		UserID:         f.operator.ID,
		PaymentType:    enum.PaymentTypeCash,
		ReceivedAmount: 10.70,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1070), result.Sale.GrandTotal)
	assert.Equal(t, int64(1070), result.Sale.Received)
	assert.Equal(t, int64(0), result.Sale.Change)
}

func TestPosService_RejectedCheckoutLeavesPaymentUntouched(t *testing.T) {
	ctx := context.Background()
	rice := stockProduct("rice", 100, 10000)
	f := newPosFixture(rice)

	sessionID, _ := f.svc.OpenSession(ctx)
	_, err := f.svc.AddItem(ctx, sessionID, rice.ID)
	require.NoError(t, err)
	_, err = f.svc.SetPayment(ctx, sessionID, enum.PaymentTypeCash, 150, 0)
	require.NoError(t, err)

	_, err = f.svc.Checkout(ctx, sessionID, &CheckoutInput{
		UserID:      f.operator.ID,
		PaymentType: enum.PaymentTypeCredit,
	})
	assert.ErrorIs(t, err, apperror.ErrMissingCustomerForCredit)

	// The session keeps its prior payment parameters after the rejection.
	view, err := f.svc.GetCart(ctx, sessionID)
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentTypeCash, view.PaymentType)
	assert.Equal(t, 150.0, view.Received)
	assert.Nil(t, view.CustomerID)
}

func TestPosService_CheckoutCreditRequiresCustomer(t *testing.T) {
	ctx := context.Background()
	rice := stockProduct("rice", 100, 10000)
	f := newPosFixture(rice)

	sessionID, _ := f.svc.OpenSession(ctx)
	_, err := f.svc.AddItem(ctx, sessionID, rice.ID)
	require.NoError(t, err)

	_, err = f.svc.Checkout(ctx, sessionID, &CheckoutInput{
		UserID:      f.operator.ID,
		PaymentType: enum.PaymentTypeCredit,
	})
	assert.ErrorIs(t, err, apperror.ErrMissingCustomerForCredit)

	view, _ := f.svc.GetCart(ctx, sessionID)
	assert.Len(t, view.Lines, 1, "cart must be preserved on a rejected checkout")
}

func TestPosService_CheckoutCreditRecordsOutstanding(t *testing.T) {
	ctx := context.Background()
	rice := stockProduct("rice", 100, 10000)
	f := newPosFixture(rice)
	customer := &entity.Customer{ID: uuid.New(), Name: "Acme Kiosk", CustomerType: enum.CustomerTypeCredit}
	f.svc.customerRepo.(*fakeCustomerRepo).customers[customer.ID] = customer

	sessionID, _ := f.svc.OpenSession(ctx)
	_, err := f.svc.AddItem(ctx, sessionID, rice.ID)
	require.NoError(t, err)

	result, err := f.svc.Checkout(ctx, sessionID, &CheckoutInput{
		UserID:      f.operator.ID,
		PaymentType: enum.PaymentTypeCredit,
		CustomerID:  &customer.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.SaleStatusUnpaid, result.Sale.Status)
	assert.Equal(t, result.Sale.GrandTotal, result.Sale.Outstanding)
	assert.Equal(t, int64(0), result.Sale.Received)
}

func TestPosService_CheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()
	f := newPosFixture()

	sessionID, _ := f.svc.OpenSession(ctx)
	_, err := f.svc.Checkout(ctx, sessionID, &CheckoutInput{
		UserID:      f.operator.ID,
		PaymentType: enum.PaymentTypeCash,
	})
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
}

func TestPosService_CheckoutPersistenceFailureKeepsCart(t *testing.T) {
	ctx := context.Background()
	rice := stockProduct("rice", 100, 10000)
	f := newPosFixture(rice)
	f.saleRepo.failWith = errors.New("connection reset")

	sessionID, _ := f.svc.OpenSession(ctx)
	_, err := f.svc.AddItem(ctx, sessionID, rice.ID)
	require.NoError(t, err)

	_, err = f.svc.Checkout(ctx, sessionID, &CheckoutInput{
		UserID:         f.operator.ID,
		PaymentType:    enum.PaymentTypeCash,
		ReceivedAmount: 1000,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")

	// Retry succeeds once the repository recovers.
	f.saleRepo.failWith = nil
	_, err = f.svc.Checkout(ctx, sessionID, &CheckoutInput{
		UserID:         f.operator.ID,
		PaymentType:    enum.PaymentTypeCash,
		ReceivedAmount: 1000,
	})
	require.NoError(t, err)
	assert.Len(t, f.saleRepo.sales, 1)
}

func TestPosService_FreeGiftFlowsIntoSale(t *testing.T) {
	ctx := context.Background()
	noodles := stockProduct("noodles", 50, 2000)
	sauce := stockProduct("sauce", 2, 1500)
	f := newPosFixture(noodles, sauce)

	promo := entity.Promotion{
		ID:                uuid.New(),
		Name:              "buy 3 get sauce",
		Kind:              enum.PromotionKindFreeProduct,
		Active:            true,
		QuantityToBuy:     3,
		QuantityToGetFree: 1,
		FreeProductID:     &sauce.ID,
		Products:          []entity.Product{*noodles},
	}
	f.promoRepo.promotions = []entity.Promotion{promo}

	sessionID, _ := f.svc.OpenSession(ctx)
	var view *CartView
	var err error
	for i := 0; i < 7; i++ {
		view, err = f.svc.AddItem(ctx, sessionID, noodles.ID)
		require.NoError(t, err)
	}

	require.Len(t, view.Lines, 2)
	gift := view.Lines[1]
	assert.True(t, gift.FreeGift)
	assert.Equal(t, 2, gift.Quantity)
	assert.Equal(t, 0.0, gift.UnitPrice)

	result, err := f.svc.Checkout(ctx, sessionID, &CheckoutInput{
		UserID:         f.operator.ID,
		PaymentType:    enum.PaymentTypeCash,
		ReceivedAmount: 1000,
	})
	require.NoError(t, err)

	// Both regular and free lines decrement stock.
	assert.Equal(t, 43, f.productRepo.products[noodles.ID].Quantity)
	assert.Equal(t, 0, f.productRepo.products[sauce.ID].Quantity)

	require.Len(t, result.Sale.Items, 2)
	assert.True(t, result.Sale.Items[1].FreeGift)
	assert.Equal(t, int64(0), result.Sale.Items[1].UnitPrice)
	assert.Equal(t, int64(3000), result.Sale.ItemDiscount)
}

func TestPosService_SetQuantityClampWarnsButApplies(t *testing.T) {
	ctx := context.Background()
	rice := stockProduct("rice", 5, 10000)
	f := newPosFixture(rice)

	sessionID, _ := f.svc.OpenSession(ctx)
	_, err := f.svc.AddItem(ctx, sessionID, rice.ID)
	require.NoError(t, err)

	view, err := f.svc.SetQuantity(ctx, sessionID, rice.ID, 9)
	require.NoError(t, err)
	assert.NotEmpty(t, view.Warning)
	assert.Equal(t, 5, view.Lines[0].Quantity)
}
