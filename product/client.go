package product

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"gofalre.io/storefront/api"
	"gofalre.io/storefront/models"
)

var _ Client = (*client)(nil)

// Client 對商品服務發出請求
type Client interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, req models.NewProduct) (*models.Product, error)
	Delete(ctx context.Context, id int) error
	UploadImage(ctx context.Context, id int, filename string, content io.Reader) (*models.Product, error)
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

func (c *client) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.api.DoJSON(ctx, http.MethodGet, "/products/", &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (c *client) Create(ctx context.Context, req models.NewProduct) (*models.Product, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}

	var created models.Product
	if err := c.api.DoJSON(ctx, http.MethodPost, "/products/", &created, api.WithJSONBody(req)); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &created, nil
}

func (c *client) Delete(ctx context.Context, id int) error {
	// 成功時商品服務回 204，失敗時由正規化層取出錯誤訊息
	if _, err := c.api.Do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id)); err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	return nil
}

func (c *client) UploadImage(ctx context.Context, id int, filename string, content io.Reader) (*models.Product, error) {
	var updated models.Product
	err := c.api.DoJSON(ctx, http.MethodPost, fmt.Sprintf("/products/%d/upload-image", id), &updated,
		api.WithMultipartFile("file", filename, content))
	if err != nil {
		return nil, fmt.Errorf("upload image for product %d: %w", id, err)
	}
	return &updated, nil
}
