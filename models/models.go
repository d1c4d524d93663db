package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// 所有請求模型共用同一個 validator 實例
var validate = validator.New()

var ErrNegativePrice = errors.New("price must not be negative")
