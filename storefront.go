// Package storefront 是商店主控台的應用層：對商品、客戶、訂單三個
// 後端服務的操作都經由這裡進出，購物車與畫面快照也由這裡持有。
package storefront

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gofalre.io/storefront/cart"
	"gofalre.io/storefront/customer"
	"gofalre.io/storefront/models"
	"gofalre.io/storefront/models/enum"
	"gofalre.io/storefront/order"
	"gofalre.io/storefront/product"
)

type Service interface {
	RefreshProducts(ctx context.Context) ([]models.Product, error)
	RefreshCustomers(ctx context.Context) ([]models.Customer, error)
	RefreshOrders(ctx context.Context) ([]models.Order, error)
	Products() []models.Product
	Customers() []models.Customer
	Orders() []models.Order

	AddToCart(productID string) error
	CartLines() []cart.Line
	CartTotal() decimal.Decimal
	PlaceOrder(ctx context.Context, userID int, shippingAddress string) (*models.Order, error)

	CreateProduct(ctx context.Context, req models.NewProduct) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	UploadProductImage(ctx context.Context, id int, filename string, content io.Reader) (*models.Product, error)

	CreateCustomer(ctx context.Context, req models.NewCustomer) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id int) error

	UpdateOrderStatus(ctx context.Context, id int, status enum.OrderStatus) (*models.Order, error)
	DeleteOrder(ctx context.Context, id int) error

	Dispatch(ctx context.Context, action Action, p Payload) error
	Notifier() *Notifier
}

type service struct {
	products  product.Client
	customers customer.Client
	orders    order.Client

	ledger   *cart.Ledger
	notifier *Notifier

	// 畫面快照：每次刷新完成就整個覆蓋，最後完成者生效
	mu           sync.Mutex
	productList  []models.Product
	productIndex map[string]models.Product
	customerList []models.Customer
	orderList    []models.Order

	dispatcher *Dispatcher
	logger     *zap.Logger
}

func NewService(
	products product.Client, customers customer.Client, orders order.Client,
	logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &service{
		products:     products,
		customers:    customers,
		orders:       orders,
		ledger:       cart.NewLedger(logger),
		notifier:     NewNotifier(defaultMessageTTL),
		productIndex: make(map[string]models.Product),
		logger:       logger,
	}
	s.dispatcher = NewDispatcher(logger)
	s.registerActionHandlers()

	return s
}

func (s *service) RefreshProducts(ctx context.Context) ([]models.Product, error) {
	list, err := s.products.List(ctx)
	if err != nil {
		s.logger.Warn("refresh products failed", zap.Error(err))
		s.notifier.Error(fmt.Sprintf("Failed to load products: %v", err))
		return nil, err
	}

	// 重建商品索引，供加入購物車時查價
	index := make(map[string]models.Product, len(list))
	for _, p := range list {
		index[fmt.Sprint(p.ProductID)] = p
	}

	s.mu.Lock()
	s.productList = list
	s.productIndex = index
	s.mu.Unlock()

	return list, nil
}

func (s *service) RefreshCustomers(ctx context.Context) ([]models.Customer, error) {
	list, err := s.customers.List(ctx)
	if err != nil {
		s.logger.Warn("refresh customers failed", zap.Error(err))
		s.notifier.Error(fmt.Sprintf("Failed to load customers: %v", err))
		return nil, err
	}

	s.mu.Lock()
	s.customerList = list
	s.mu.Unlock()

	return list, nil
}

func (s *service) RefreshOrders(ctx context.Context) ([]models.Order, error) {
	list, err := s.orders.List(ctx)
	if err != nil {
		s.logger.Warn("refresh orders failed", zap.Error(err))
		s.notifier.Error(fmt.Sprintf("Failed to load orders: %v", err))
		return nil, err
	}

	s.mu.Lock()
	s.orderList = list
	s.mu.Unlock()

	return list, nil
}

func (s *service) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productList
}

func (s *service) Customers() []models.Customer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customerList
}

func (s *service) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orderList
}

// AddToCart 透過商品索引解析名稱與單價後記入購物車
func (s *service) AddToCart(productID string) error {
	s.mu.Lock()
	p, found := s.productIndex[productID]
	s.mu.Unlock()

	if !found {
		err := fmt.Errorf("unknown product id %q, refresh products first", productID)
		s.notifier.Error(err.Error())
		return err
	}

	s.ledger.AddOrIncrement(productID, p.Name, p.Price)
	s.notifier.Info(fmt.Sprintf("Added %q to cart!", p.Name))
	return nil
}

func (s *service) CartLines() []cart.Line {
	return s.ledger.Lines()
}

func (s *service) CartTotal() decimal.Decimal {
	return s.ledger.Total()
}

// PlaceOrder 把購物車投影成下單請求送出，成功後才清空購物車
func (s *service) PlaceOrder(ctx context.Context, userID int, shippingAddress string) (*models.Order, error) {
	if s.ledger.Len() == 0 {
		err := fmt.Errorf("cart is empty, add products first")
		s.notifier.Info("Your cart is empty. Add products first.")
		return nil, err
	}

	items, err := s.ledger.ToOrderItems()
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Error placing order: %v", err))
		return nil, err
	}

	placed, err := s.orders.Place(ctx, models.NewOrder{
		UserID:          userID,
		ShippingAddress: shippingAddress,
		Items:           items,
	})
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Error placing order: %v", err))
		return nil, err
	}

	s.ledger.Clear()
	s.notifier.Success(fmt.Sprintf("Order %d created with status: %s.", placed.OrderID, placed.Status))

	// 與原有流程一致：下單後立即刷新訂單列表，失敗只會另行通知
	_, _ = s.RefreshOrders(ctx)

	return placed, nil
}

func (s *service) CreateProduct(ctx context.Context, req models.NewProduct) (*models.Product, error) {
	created, err := s.products.Create(ctx, req)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Error adding product: %v", err))
		return nil, err
	}

	s.notifier.Success(fmt.Sprintf("Product %q added successfully! ID: %d", created.Name, created.ProductID))
	_, _ = s.RefreshProducts(ctx)
	return created, nil
}

func (s *service) DeleteProduct(ctx context.Context, id int) error {
	if err := s.products.Delete(ctx, id); err != nil {
		s.notifier.Error(fmt.Sprintf("Error deleting product: %v", err))
		return err
	}

	s.notifier.Success(fmt.Sprintf("Product ID: %d deleted.", id))
	_, _ = s.RefreshProducts(ctx)
	return nil
}

func (s *service) UploadProductImage(ctx context.Context, id int, filename string, content io.Reader) (*models.Product, error) {
	updated, err := s.products.UploadImage(ctx, id, filename, content)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Error uploading image: %v", err))
		return nil, err
	}

	s.notifier.Success(fmt.Sprintf("Image uploaded for product %s!", updated.Name))
	_, _ = s.RefreshProducts(ctx)
	return updated, nil
}

func (s *service) CreateCustomer(ctx context.Context, req models.NewCustomer) (*models.Customer, error) {
	created, err := s.customers.Create(ctx, req)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Error adding customer: %v", err))
		return nil, err
	}

	s.notifier.Success(fmt.Sprintf("Customer %q added! ID: %d", created.Email, created.CustomerID))
	_, _ = s.RefreshCustomers(ctx)
	return created, nil
}

func (s *service) DeleteCustomer(ctx context.Context, id int) error {
	if err := s.customers.Delete(ctx, id); err != nil {
		s.notifier.Error(fmt.Sprintf("Error deleting customer: %v", err))
		return err
	}

	s.notifier.Success(fmt.Sprintf("Customer ID: %d deleted.", id))
	_, _ = s.RefreshCustomers(ctx)
	return nil
}

// UpdateOrderStatus 只檢查狀態是否在封閉集合內，
// 轉換是否合法由訂單服務決定。
func (s *service) UpdateOrderStatus(ctx context.Context, id int, status enum.OrderStatus) (*models.Order, error) {
	if err := status.Validate(); err != nil {
		s.notifier.Error(err.Error())
		return nil, err
	}

	updated, err := s.orders.UpdateStatus(ctx, id, status)
	if err != nil {
		s.notifier.Error(fmt.Sprintf("Error updating order status: %v", err))
		return nil, err
	}

	s.notifier.Success(fmt.Sprintf("Order %d status updated to %q!", id, updated.Status))
	_, _ = s.RefreshOrders(ctx)
	return updated, nil
}

func (s *service) DeleteOrder(ctx context.Context, id int) error {
	if err := s.orders.Delete(ctx, id); err != nil {
		s.notifier.Error(fmt.Sprintf("Error deleting order: %v", err))
		return err
	}

	s.notifier.Success(fmt.Sprintf("Order ID: %d deleted.", id))
	_, _ = s.RefreshOrders(ctx)
	return nil
}

func (s *service) Notifier() *Notifier {
	return s.notifier
}
