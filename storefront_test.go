package storefront_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofalre.io/storefront"
	"gofalre.io/storefront/models"
	"gofalre.io/storefront/models/enum"
)

type fakeProducts struct {
	list    []models.Product
	listErr error
	deleted []int
}

func (f *fakeProducts) List(ctx context.Context) ([]models.Product, error) {
	return f.list, f.listErr
}

func (f *fakeProducts) Create(ctx context.Context, req models.NewProduct) (*models.Product, error) {
	p := models.Product{ProductID: 7, Name: req.Name, Price: req.Price}
	f.list = append(f.list, p)
	return &p, nil
}

func (f *fakeProducts) Delete(ctx context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeProducts) UploadImage(ctx context.Context, id int, filename string, content io.Reader) (*models.Product, error) {
	return &models.Product{ProductID: id, Name: "Widget", ImageURL: "https://cdn/" + filename}, nil
}

type fakeCustomers struct {
	list []models.Customer
}

func (f *fakeCustomers) List(ctx context.Context) ([]models.Customer, error) {
	return f.list, nil
}

func (f *fakeCustomers) Create(ctx context.Context, req models.NewCustomer) (*models.Customer, error) {
	return &models.Customer{CustomerID: 1, Email: req.Email}, nil
}

func (f *fakeCustomers) Delete(ctx context.Context, id int) error {
	return nil
}

type fakeOrders struct {
	list       []models.Order
	placed     []models.NewOrder
	placeErr   error
	statusSent []enum.OrderStatus
}

func (f *fakeOrders) List(ctx context.Context) ([]models.Order, error) {
	return f.list, nil
}

func (f *fakeOrders) Place(ctx context.Context, req models.NewOrder) (*models.Order, error) {
	if f.placeErr != nil {
		return nil, f.placeErr
	}
	f.placed = append(f.placed, req)
	return &models.Order{OrderID: 12, UserID: req.UserID, Status: enum.OrderStatusPending}, nil
}

func (f *fakeOrders) UpdateStatus(ctx context.Context, id int, status enum.OrderStatus) (*models.Order, error) {
	f.statusSent = append(f.statusSent, status)
	return &models.Order{OrderID: id, Status: status}, nil
}

func (f *fakeOrders) Delete(ctx context.Context, id int) error {
	return nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService(products *fakeProducts, orders *fakeOrders) storefront.Service {
	return storefront.NewService(products, &fakeCustomers{}, orders, nil)
}

func catalog() *fakeProducts {
	return &fakeProducts{list: []models.Product{
		{ProductID: 3, Name: "Widget", Price: price("9.99")},
		{ProductID: 5, Name: "Gadget", Price: price("1.00")},
	}}
}

func TestAddToCartResolvesThroughProductIndex(t *testing.T) {
	svc := newTestService(catalog(), &fakeOrders{})
	ctx := context.Background()

	_, err := svc.RefreshProducts(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.AddToCart("3"))
	require.NoError(t, svc.AddToCart("3"))
	require.NoError(t, svc.AddToCart("5"))

	lines := svc.CartLines()
	require.Len(t, lines, 2)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "Widget", lines[0].Name)
	assert.True(t, svc.CartTotal().Equal(price("20.98")))
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc := newTestService(catalog(), &fakeOrders{})

	err := svc.AddToCart("99")
	require.Error(t, err)

	msg, alive := svc.Notifier().Current()
	require.True(t, alive)
	assert.Equal(t, storefront.NotifyError, msg.Level)
}

func TestPlaceOrderClearsCartOnSuccess(t *testing.T) {
	orders := &fakeOrders{}
	svc := newTestService(catalog(), orders)
	ctx := context.Background()

	_, err := svc.RefreshProducts(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.AddToCart("3"))
	require.NoError(t, svc.AddToCart("3"))
	require.NoError(t, svc.AddToCart("5"))

	placed, err := svc.PlaceOrder(ctx, 1, "1 Main St")
	require.NoError(t, err)
	assert.Equal(t, 12, placed.OrderID)

	// 購物車行已投影成下單項目
	require.Len(t, orders.placed, 1)
	req := orders.placed[0]
	assert.Equal(t, 1, req.UserID)
	assert.Equal(t, "1 Main St", req.ShippingAddress)
	require.Len(t, req.Items, 2)
	assert.Equal(t, 3, req.Items[0].ProductID)
	assert.Equal(t, 2, req.Items[0].Quantity)

	// 只有成功下單才清空購物車
	assert.Empty(t, svc.CartLines())
	assert.True(t, svc.CartTotal().IsZero())
}

func TestPlaceOrderKeepsCartOnFailure(t *testing.T) {
	orders := &fakeOrders{placeErr: errors.New("insufficient stock")}
	svc := newTestService(catalog(), orders)
	ctx := context.Background()

	_, err := svc.RefreshProducts(ctx)
	require.NoError(t, err)
	require.NoError(t, svc.AddToCart("3"))

	_, err = svc.PlaceOrder(ctx, 1, "1 Main St")
	require.Error(t, err)

	assert.Len(t, svc.CartLines(), 1, "a failed order must not empty the cart")
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	orders := &fakeOrders{}
	svc := newTestService(catalog(), orders)

	_, err := svc.PlaceOrder(context.Background(), 1, "1 Main St")
	require.Error(t, err)
	assert.Empty(t, orders.placed)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	orders := &fakeOrders{}
	svc := newTestService(catalog(), orders)

	_, err := svc.UpdateOrderStatus(context.Background(), 12, enum.OrderStatus("teleported"))
	require.Error(t, err)
	assert.Empty(t, orders.statusSent, "unknown statuses must not reach the backend")
}

func TestUpdateOrderStatusPassesThrough(t *testing.T) {
	orders := &fakeOrders{}
	svc := newTestService(catalog(), orders)

	updated, err := svc.UpdateOrderStatus(context.Background(), 12, enum.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusShipped, updated.Status)
}

func TestRefreshFailureKeepsOtherViewsUsable(t *testing.T) {
	products := catalog()
	products.listErr = errors.New("connection refused")
	svc := newTestService(products, &fakeOrders{list: []models.Order{{OrderID: 12}}})
	ctx := context.Background()

	_, err := svc.RefreshProducts(ctx)
	require.Error(t, err)

	orders, err := svc.RefreshOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	msg, alive := svc.Notifier().Current()
	require.True(t, alive)
	assert.Equal(t, storefront.NotifyError, msg.Level)
}

func TestDispatch(t *testing.T) {
	svc := newTestService(catalog(), &fakeOrders{})
	ctx := context.Background()

	require.NoError(t, svc.Dispatch(ctx, storefront.ActionRefreshProducts, storefront.Payload{}))
	require.NoError(t, svc.Dispatch(ctx, storefront.ActionAddToCart, storefront.Payload{ProductID: "3"}))
	assert.Len(t, svc.CartLines(), 1)

	err := svc.Dispatch(ctx, storefront.Action("warp"), storefront.Payload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no handler registered")
}
