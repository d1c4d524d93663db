package models

import (
	"time"

	"github.com/shopspring/decimal"

	"gofalre.io/storefront/models/enum"
)

// Order 代表訂單服務回傳的訂單
type Order struct {
	OrderID         int              `json:"order_id"`
	UserID          int              `json:"user_id"`
	OrderDate       time.Time        `json:"order_date"`
	Status          enum.OrderStatus `json:"status"`
	TotalAmount     decimal.Decimal  `json:"total_amount"`
	ShippingAddress string           `json:"shipping_address"`
	Items           []OrderItem      `json:"items"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// OrderItem 代表訂單中的單個商品項目
type OrderItem struct {
	ProductID       int             `json:"product_id"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
	ItemTotal       decimal.Decimal `json:"item_total"`
}

// NewOrder 代表下單請求：購物車項目加上收件地址與使用者編號
type NewOrder struct {
	UserID          int            `json:"user_id" validate:"required"`
	ShippingAddress string         `json:"shipping_address" validate:"required"`
	Items           []NewOrderItem `json:"items" validate:"required,min=1,dive"`
}

// NewOrderItem 是購物車行項目投影後的下單項目
type NewOrderItem struct {
	ProductID       int             `json:"product_id" validate:"required"`
	Quantity        int             `json:"quantity" validate:"gt=0"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase"`
}

func (o NewOrder) Validate() error {
	return validate.Struct(o)
}

// StatusUpdate 代表訂單狀態更新請求
type StatusUpdate struct {
	Status enum.OrderStatus `json:"status"`
}
