// Package config 讀取主控台設定：環境變數優先（STOREFRONT_ 前綴），
// 其次是選用的設定檔與旗標。
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "STOREFRONT"

type Config struct {
	// 三個後端服務的根位址
	ProductURL  string
	CustomerURL string
	OrderURL    string

	// watch 模式的刷新週期
	OrderPollInterval   time.Duration
	ProductPollInterval time.Duration

	LogLevel string
}

// SetDefaults 在共用的 viper 實例上登記預設值與環境變數來源，
// 指令旗標由 cmd 層自行綁定到同一個實例。
func SetDefaults(v *viper.Viper) {
	v.SetDefault("product-url", "http://localhost:8000")
	v.SetDefault("customer-url", "http://localhost:8002")
	v.SetDefault("order-url", "http://localhost:8001")
	v.SetDefault("order-poll-interval", 10*time.Second)
	v.SetDefault("product-poll-interval", 15*time.Second)
	v.SetDefault("log-level", "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Load 從 viper 讀出完整設定並做基本檢查
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ProductURL:          v.GetString("product-url"),
		CustomerURL:         v.GetString("customer-url"),
		OrderURL:            v.GetString("order-url"),
		OrderPollInterval:   v.GetDuration("order-poll-interval"),
		ProductPollInterval: v.GetDuration("product-poll-interval"),
		LogLevel:            v.GetString("log-level"),
	}

	for name, value := range map[string]string{
		"product-url":  cfg.ProductURL,
		"customer-url": cfg.CustomerURL,
		"order-url":    cfg.OrderURL,
	} {
		if value == "" {
			return nil, fmt.Errorf("missing required setting %q", name)
		}
	}
	if cfg.OrderPollInterval <= 0 || cfg.ProductPollInterval <= 0 {
		return nil, fmt.Errorf("poll intervals must be positive")
	}

	return cfg, nil
}
