package storefront

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"gofalre.io/storefront/models"
	"gofalre.io/storefront/models/enum"
)

// Action 是使用者可觸發的操作的封閉列舉，
// 介面層一律經由 Dispatch 轉送到對應的處理函式。
type Action string

const (
	ActionRefreshProducts   Action = "refresh_products"
	ActionRefreshCustomers  Action = "refresh_customers"
	ActionRefreshOrders     Action = "refresh_orders"
	ActionAddToCart         Action = "add_to_cart"
	ActionPlaceOrder        Action = "place_order"
	ActionCreateProduct     Action = "create_product"
	ActionDeleteProduct     Action = "delete_product"
	ActionUploadImage       Action = "upload_image"
	ActionCreateCustomer    Action = "create_customer"
	ActionDeleteCustomer    Action = "delete_customer"
	ActionUpdateOrderStatus Action = "update_order_status"
	ActionDeleteOrder       Action = "delete_order"
)

// Payload 攜帶各操作需要的參數，未用到的欄位留零值
type Payload struct {
	ProductID       string
	ID              int
	UserID          int
	ShippingAddress string
	Status          enum.OrderStatus
	Product         models.NewProduct
	Customer        models.NewCustomer
	Filename        string
	Content         io.Reader
}

type ActionHandler func(context.Context, Payload) error

// Dispatcher 以操作種類為鍵的處理函式註冊表
type Dispatcher struct {
	handlers map[Action]ActionHandler
	logger   *zap.Logger
}

func NewDispatcher(logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		handlers: make(map[Action]ActionHandler),
		logger:   logger,
	}
}

func (d *Dispatcher) Register(action Action, handler ActionHandler) {
	d.handlers[action] = handler
}

func (d *Dispatcher) Dispatch(ctx context.Context, action Action, p Payload) error {
	handler, exists := d.handlers[action]
	if !exists {
		return fmt.Errorf("no handler registered for action: %s", action)
	}

	if err := handler(ctx, p); err != nil {
		d.logger.Debug("action failed",
			zap.String("action", string(action)),
			zap.Error(err))
		return err
	}
	return nil
}

func (s *service) registerActionHandlers() {
	actionHandlers := map[Action]ActionHandler{
		ActionRefreshProducts: func(ctx context.Context, _ Payload) error {
			_, err := s.RefreshProducts(ctx)
			return err
		},
		ActionRefreshCustomers: func(ctx context.Context, _ Payload) error {
			_, err := s.RefreshCustomers(ctx)
			return err
		},
		ActionRefreshOrders: func(ctx context.Context, _ Payload) error {
			_, err := s.RefreshOrders(ctx)
			return err
		},
		ActionAddToCart: func(_ context.Context, p Payload) error {
			return s.AddToCart(p.ProductID)
		},
		ActionPlaceOrder: func(ctx context.Context, p Payload) error {
			_, err := s.PlaceOrder(ctx, p.UserID, p.ShippingAddress)
			return err
		},
		ActionCreateProduct: func(ctx context.Context, p Payload) error {
			_, err := s.CreateProduct(ctx, p.Product)
			return err
		},
		ActionDeleteProduct: func(ctx context.Context, p Payload) error {
			return s.DeleteProduct(ctx, p.ID)
		},
		ActionUploadImage: func(ctx context.Context, p Payload) error {
			_, err := s.UploadProductImage(ctx, p.ID, p.Filename, p.Content)
			return err
		},
		ActionCreateCustomer: func(ctx context.Context, p Payload) error {
			_, err := s.CreateCustomer(ctx, p.Customer)
			return err
		},
		ActionDeleteCustomer: func(ctx context.Context, p Payload) error {
			return s.DeleteCustomer(ctx, p.ID)
		},
		ActionUpdateOrderStatus: func(ctx context.Context, p Payload) error {
			_, err := s.UpdateOrderStatus(ctx, p.ID, p.Status)
			return err
		},
		ActionDeleteOrder: func(ctx context.Context, p Payload) error {
			return s.DeleteOrder(ctx, p.ID)
		},
	}

	for action, handler := range actionHandlers {
		s.dispatcher.Register(action, handler)
	}
}

func (s *service) Dispatch(ctx context.Context, action Action, p Payload) error {
	return s.dispatcher.Dispatch(ctx, action, p)
}
