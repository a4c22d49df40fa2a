package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mikios34/kpopshop-backend/entity"
	orderpkg "github.com/mikios34/kpopshop-backend/order"
	"github.com/mikios34/kpopshop-backend/pricing"
	pricingsvc "github.com/mikios34/kpopshop-backend/pricing/service"
)

type fakeFeeRepo struct {
	values map[string]string
}

func (f *fakeFeeRepo) GetFeeValue(ctx context.Context, code string) (string, error) {
	v, ok := f.values[code]
	if !ok {
		return "", &pricing.ConfigError{Kind: pricing.FeeTypeMissing, Key: code}
	}
	return v, nil
}

// fakeOrderRepo mimics the transactional Place contract: the cart is handed
// to build under "lock" and cleared only when build succeeds.
type fakeOrderRepo struct {
	customers map[uint]entity.Customer
	cart      *fakeCartRepo
	placed    []entity.Order
	nextID    uint
}

func (f *fakeOrderRepo) GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, context.Canceled // not reached in these tests
	}
	return &c, nil
}

func (f *fakeOrderRepo) Place(ctx context.Context, customerID uint, build orderpkg.BuildOrder) (*entity.Order, error) {
	lines, _ := f.cart.ListByCustomer(ctx, customerID)
	ord, orderLines, err := build(lines)
	if err != nil {
		return nil, err
	}
	f.nextID++
	ord.ID = f.nextID
	for i := range orderLines {
		orderLines[i].OrderID = ord.ID
	}
	ord.Lines = orderLines
	f.placed = append(f.placed, *ord)
	f.cart.clearCustomer(customerID)
	return ord, nil
}

func (f *fakeOrderRepo) ListByCustomer(ctx context.Context, customerID uint) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.placed {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

// fakeCartRepo implements the subset of cart.Repository the order service
// reads; mutation methods are never called from here.
type fakeCartRepo struct {
	lines []entity.CartLine
}

func (f *fakeCartRepo) ListByCustomer(ctx context.Context, customerID uint) ([]entity.CartLine, error) {
	var out []entity.CartLine
	for _, l := range f.lines {
		if l.CustomerID == customerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) clearCustomer(customerID uint) {
	kept := f.lines[:0]
	for _, l := range f.lines {
		if l.CustomerID != customerID {
			kept = append(kept, l)
		}
	}
	f.lines = kept
}

func (f *fakeCartRepo) GetForCustomer(ctx context.Context, id, customerID uint) (*entity.CartLine, error) {
	panic("not used")
}
func (f *fakeCartRepo) ExistsForProduct(ctx context.Context, customerID, productID uint) (bool, error) {
	panic("not used")
}
func (f *fakeCartRepo) Create(ctx context.Context, line *entity.CartLine) (*entity.CartLine, error) {
	panic("not used")
}
func (f *fakeCartRepo) UpdateQuantity(ctx context.Context, id uint, quantity int) error {
	panic("not used")
}
func (f *fakeCartRepo) UpdateColor(ctx context.Context, id, colorID uint) error { panic("not used") }
func (f *fakeCartRepo) Delete(ctx context.Context, id uint) error               { panic("not used") }
func (f *fakeCartRepo) GetProduct(ctx context.Context, id uint) (*entity.Product, error) {
	panic("not used")
}
func (f *fakeCartRepo) ColorExists(ctx context.Context, id uint) (bool, error) { panic("not used") }
func (f *fakeCartRepo) ListColors(ctx context.Context) ([]entity.Color, error) { panic("not used") }

func uintPtr(v uint) *uint { return &v }

func newTestService(feeValues map[string]string, cartLines []entity.CartLine) (orderpkg.Service, *fakeOrderRepo) {
	cartRepo := &fakeCartRepo{lines: cartLines}
	repo := &fakeOrderRepo{
		customers: map[uint]entity.Customer{7: {ID: 7, UserID: 7, Active: true}},
		cart:      cartRepo,
	}
	svc := NewOrderService(repo, cartRepo, pricingsvc.NewPricingService(&fakeFeeRepo{values: feeValues}))
	return svc, repo
}

func validFees() map[string]string {
	return map[string]string{pricing.FeeShipping: "10", pricing.FeeVAT: "5"}
}

func TestCheckoutComputesTotals(t *testing.T) {
	svc, _ := newTestService(validFees(), []entity.CartLine{
		{ID: 1, CustomerID: 7, ProductID: 1, ColorID: uintPtr(1), Quantity: 2, UnitPrice: 100},
	})

	view, err := svc.Checkout(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, uint(7), view.Customer.ID)
	require.Len(t, view.Lines, 1)
	require.Equal(t, "10", view.Fees.Shipping)
	require.Equal(t, "5", view.Fees.VAT)
	require.True(t, view.Totals.Grand.Equal(decimal.NewFromInt(220)), "grand = %s", view.Totals.Grand)
}

func TestCheckoutEmptyCart(t *testing.T) {
	svc, _ := newTestService(validFees(), nil)

	view, err := svc.Checkout(context.Background(), 7)
	require.NoError(t, err)
	require.Empty(t, view.Lines)
	require.True(t, view.Totals.Grand.Equal(decimal.NewFromInt(10)), "grand = %s", view.Totals.Grand)
}

func TestCheckoutMissingFeeRow(t *testing.T) {
	svc, _ := newTestService(map[string]string{pricing.FeeVAT: "5"}, nil)

	_, err := svc.Checkout(context.Background(), 7)
	var cfgErr *pricing.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, pricing.FeeShipping, cfgErr.Key)
}

func TestCheckoutRejectsInvalidLines(t *testing.T) {
	svc, _ := newTestService(validFees(), []entity.CartLine{
		{ID: 1, CustomerID: 7, ProductID: 1, ColorID: nil, Quantity: 2, UnitPrice: 100},
	})
	_, err := svc.Checkout(context.Background(), 7)
	require.ErrorIs(t, err, orderpkg.ErrCartLineInvalid)

	svc, _ = newTestService(validFees(), []entity.CartLine{
		{ID: 1, CustomerID: 7, ProductID: 1, ColorID: uintPtr(1), Quantity: 0, UnitPrice: 100},
	})
	_, err = svc.Checkout(context.Background(), 7)
	require.ErrorIs(t, err, orderpkg.ErrCartLineInvalid)
}

func TestPlaceOrderSnapshotsCartAndClearsIt(t *testing.T) {
	svc, repo := newTestService(validFees(), []entity.CartLine{
		{ID: 1, CustomerID: 7, ProductID: 3, ColorID: uintPtr(1), Quantity: 2, UnitPrice: 100},
	})

	ord, err := svc.PlaceOrder(context.Background(), 7, orderpkg.PlaceOrderRequest{
		Phone:   "0912345678",
		Address: "Hà Nội",
		Note:    "Giao nhanh",
	})
	require.NoError(t, err)
	require.True(t, ord.Total.Equal(decimal.NewFromInt(220)), "total = %s", ord.Total)
	require.Equal(t, entity.OrderAwaitingHandling, ord.Status)
	require.Equal(t, "0912345678", ord.Phone)
	require.Equal(t, "Hà Nội", ord.Address)
	require.Equal(t, "Giao nhanh", ord.Note)
	require.NotEqual(t, uuid.Nil, ord.Code)

	require.Len(t, ord.Lines, 1)
	require.Equal(t, uint(3), ord.Lines[0].ProductID)
	require.Equal(t, 2, ord.Lines[0].Quantity)
	require.Equal(t, int64(100), ord.Lines[0].UnitPrice)

	// cart emptied as part of placement
	remaining, _ := repo.cart.ListByCustomer(context.Background(), 7)
	require.Empty(t, remaining)
}

func TestPlaceOrderInvalidPhoneLeavesCartUntouched(t *testing.T) {
	svc, repo := newTestService(validFees(), []entity.CartLine{
		{ID: 1, CustomerID: 7, ProductID: 3, ColorID: uintPtr(1), Quantity: 2, UnitPrice: 100},
	})

	for _, phone := range []string{"12345", "", "09123456789", "091234567a", "9912345678"} {
		_, err := svc.PlaceOrder(context.Background(), 7, orderpkg.PlaceOrderRequest{Phone: phone})
		require.ErrorIs(t, err, orderpkg.ErrInvalidPhone, "phone %q", phone)
	}

	require.Empty(t, repo.placed)
	remaining, _ := repo.cart.ListByCustomer(context.Background(), 7)
	require.Len(t, remaining, 1)
}

func TestPlaceOrderMissingConfigFailsBeforeCartIsTouched(t *testing.T) {
	svc, repo := newTestService(map[string]string{}, []entity.CartLine{
		{ID: 1, CustomerID: 7, ProductID: 3, ColorID: uintPtr(1), Quantity: 2, UnitPrice: 100},
	})

	_, err := svc.PlaceOrder(context.Background(), 7, orderpkg.PlaceOrderRequest{Phone: "0912345678"})
	var cfgErr *pricing.ConfigError
	require.ErrorAs(t, err, &cfgErr)

	require.Empty(t, repo.placed)
	remaining, _ := repo.cart.ListByCustomer(context.Background(), 7)
	require.Len(t, remaining, 1)
}

func TestPlaceOrderEmptyCartCreatesZeroLineOrder(t *testing.T) {
	svc, repo := newTestService(validFees(), nil)

	ord, err := svc.PlaceOrder(context.Background(), 7, orderpkg.PlaceOrderRequest{
		Phone:   "0912345678",
		Address: "Hà Nội",
	})
	require.NoError(t, err)
	require.Empty(t, ord.Lines)
	// shipping-only grand total
	require.True(t, ord.Total.Equal(decimal.NewFromInt(10)), "total = %s", ord.Total)
	require.Len(t, repo.placed, 1)
}

func TestPlaceOrderLineCountMatchesCart(t *testing.T) {
	svc, repo := newTestService(validFees(), []entity.CartLine{
		{ID: 1, CustomerID: 7, ProductID: 1, ColorID: uintPtr(1), Quantity: 1, UnitPrice: 10},
		{ID: 2, CustomerID: 7, ProductID: 2, ColorID: uintPtr(2), Quantity: 2, UnitPrice: 20},
		{ID: 3, CustomerID: 7, ProductID: 3, ColorID: uintPtr(1), Quantity: 3, UnitPrice: 30},
		{ID: 4, CustomerID: 8, ProductID: 1, ColorID: uintPtr(1), Quantity: 9, UnitPrice: 99},
	})

	ord, err := svc.PlaceOrder(context.Background(), 7, orderpkg.PlaceOrderRequest{Phone: "0912345678"})
	require.NoError(t, err)
	require.Len(t, ord.Lines, 3)

	// other customers' carts are untouched
	remaining, _ := repo.cart.ListByCustomer(context.Background(), 8)
	require.Len(t, remaining, 1)
}
