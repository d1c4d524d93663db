package customer

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"gofalre.io/storefront/api"
	"gofalre.io/storefront/models"
)

var _ Client = (*client)(nil)

// Client 對客戶服務發出請求
type Client interface {
	List(ctx context.Context) ([]models.Customer, error)
	Create(ctx context.Context, req models.NewCustomer) (*models.Customer, error)
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

func (c *client) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := c.api.DoJSON(ctx, http.MethodGet, "/customers/", &customers); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (c *client) Create(ctx context.Context, req models.NewCustomer) (*models.Customer, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid customer: %w", err)
	}

	var created models.Customer
	if err := c.api.DoJSON(ctx, http.MethodPost, "/customers/", &created, api.WithJSONBody(req)); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	return &created, nil
}

func (c *client) Delete(ctx context.Context, id int) error {
	if _, err := c.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/customers/%d", id)); err != nil {
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	return nil
}
