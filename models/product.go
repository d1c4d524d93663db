package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// 後端以 JSON number 傳遞金額，decimal 預設會序列化成字串
	decimal.MarshalJSONWithoutQuotes = true
}

// Product 代表商品服務回傳的商品
type Product struct {
	ProductID     int             `json:"product_id"`
	Name          string          `json:"name" validate:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity"`
	ImageURL      string          `json:"image_url"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewProduct 代表建立商品的請求
type NewProduct struct {
	Name          string          `json:"name" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stock_quantity" validate:"gte=0"`
	Description   string          `json:"description"`
}

// Validate 在邊界檢查請求內容，金額不可為負
func (p NewProduct) Validate() error {
	if p.Price.IsNegative() {
		return ErrNegativePrice
	}
	return validate.Struct(p)
}
