package models

import "time"

// Customer 代表客戶服務回傳的客戶
type Customer struct {
	CustomerID      int       `json:"customer_id"`
	Email           string    `json:"email"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	PhoneNumber     string    `json:"phone_number"`
	ShippingAddress string    `json:"shipping_address"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewCustomer 代表建立客戶的請求。Password 僅原樣轉交給客戶服務，
// 本客戶端不做任何認證處理。
type NewCustomer struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	PhoneNumber     string `json:"phone_number"`
	ShippingAddress string `json:"shipping_address"`
}

func (c NewCustomer) Validate() error {
	return validate.Struct(c)
}
