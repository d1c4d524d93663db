package product_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gofalre.io/storefront/api"
	"gofalre.io/storefront/models"
	"gofalre.io/storefront/product"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) product.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	apiClient, err := api.NewClient(api.Config{BaseURL: srv.URL, Logger: zap.NewNop()})
	require.NoError(t, err)
	return product.NewClient(apiClient, zap.NewNop())
}

func TestList(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products/", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"product_id":3,"name":"Widget","price":9.99,"stock_quantity":10},
			{"product_id":5,"name":"Gadget","price":1.00,"stock_quantity":2}
		]`)
	})

	products, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, 3, products[0].ProductID)
	assert.Equal(t, "Widget", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.RequireFromString("9.99")))
}

func TestCreate(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products/", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Widget", body["name"])
		assert.EqualValues(t, 9.99, body["price"])

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"product_id":7,"name":"Widget","price":9.99}`)
	})

	created, err := c.Create(context.Background(), models.NewProduct{
		Name:          "Widget",
		Price:         decimal.RequireFromString("9.99"),
		StockQuantity: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ProductID)
}

func TestCreateRejectsInvalidRequest(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	_, err := c.Create(context.Background(), models.NewProduct{Name: ""})
	require.Error(t, err)
	assert.Zero(t, calls, "invalid requests must not reach the backend")

	_, err = c.Create(context.Background(), models.NewProduct{
		Name:  "Widget",
		Price: decimal.RequireFromString("-1"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNegativePrice)
	assert.Zero(t, calls)
}

func TestDelete(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/products/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.Delete(context.Background(), 7))
}

func TestDeleteSurfacesBackendError(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"detail":"Product not found"}`)
	})

	err := c.Delete(context.Background(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Product not found")
	assert.Equal(t, 1, calls, "a failed delete must not be re-issued")
}

func TestUploadImage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/products/7/upload-image", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		f, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"product_id":7,"name":"Widget","image_url":"https://cdn/widget.png"}`)
	})

	updated, err := c.UploadImage(context.Background(), 7, "widget.png", strings.NewReader("png bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn/widget.png", updated.ImageURL)
}
