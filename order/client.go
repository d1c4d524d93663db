package order

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"gofalre.io/storefront/api"
	"gofalre.io/storefront/models"
	"gofalre.io/storefront/models/enum"
)

var _ Client = (*client)(nil)

// Client 對訂單服務發出請求。狀態轉換的合法性完全由伺服器決定，
// 這裡只原樣轉交並顯示伺服器回傳的結果。
type Client interface {
	List(ctx context.Context) ([]models.Order, error)
	Place(ctx context.Context, req models.NewOrder) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int, status enum.OrderStatus) (*models.Order, error)
	Delete(ctx context.Context, id int) error
}

type client struct {
	api    *api.Client
	logger *zap.Logger
}

func NewClient(apiClient *api.Client, logger *zap.Logger) Client {
	return &client{
		api:    apiClient,
		logger: logger,
	}
}

func (c *client) List(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := c.api.DoJSON(ctx, http.MethodGet, "/orders/", &orders); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (c *client) Place(ctx context.Context, req models.NewOrder) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid order: %w", err)
	}

	var placed models.Order
	if err := c.api.DoJSON(ctx, http.MethodPost, "/orders/", &placed, api.WithJSONBody(req)); err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	return &placed, nil
}

func (c *client) UpdateStatus(ctx context.Context, id int, status enum.OrderStatus) (*models.Order, error) {
	var updated models.Order
	err := c.api.DoJSON(ctx, http.MethodPatch, fmt.Sprintf("/orders/%d/status", id), &updated,
		api.WithJSONBody(models.StatusUpdate{Status: status}))
	if err != nil {
		return nil, fmt.Errorf("update order %d status: %w", id, err)
	}
	return &updated, nil
}

func (c *client) Delete(ctx context.Context, id int) error {
	if _, err := c.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id)); err != nil {
		return fmt.Errorf("delete order %d: %w", id, err)
	}
	return nil
}
