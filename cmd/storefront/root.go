package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gofalre.io/storefront"
	"gofalre.io/storefront/api"
	"gofalre.io/storefront/config"
	"gofalre.io/storefront/customer"
	"gofalre.io/storefront/order"
	"gofalre.io/storefront/product"
)

var v = viper.New()

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Console for the storefront product, customer and order services",
		Run:   seeHelp,
	}

	pf := cmd.PersistentFlags()
	pf.String("product-url", "", "Base URL of the product service")
	pf.String("customer-url", "", "Base URL of the customer service")
	pf.String("order-url", "", "Base URL of the order service")
	pf.String("log-level", "", "Log level (debug, info, warn, error)")

	config.SetDefaults(v)
	for _, name := range []string{"product-url", "customer-url", "order-url", "log-level"} {
		if f := pf.Lookup(name); f != nil {
			if err := v.BindPFlag(name, f); err != nil {
				panic(err)
			}
		}
	}

	cmd.AddCommand(
		productCmd(),
		customerCmd(),
		orderCmd(),
		shellCmd(),
		watchCmd(),
	)

	return cmd
}

func seeHelp(cmd *cobra.Command, args []string) {
	if err := cmd.Help(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(v)
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", cfg.LogLevel, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}

// newService 組裝三個後端的客戶端與應用層
func newService() (storefront.Service, *config.Config, *zap.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	productAPI, err := api.NewClient(api.Config{BaseURL: cfg.ProductURL, Logger: logger})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("product service: %w", err)
	}
	customerAPI, err := api.NewClient(api.Config{BaseURL: cfg.CustomerURL, Logger: logger})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("customer service: %w", err)
	}
	orderAPI, err := api.NewClient(api.Config{BaseURL: cfg.OrderURL, Logger: logger})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("order service: %w", err)
	}

	svc := storefront.NewService(
		product.NewClient(productAPI, logger),
		customer.NewClient(customerAPI, logger),
		order.NewClient(orderAPI, logger),
		logger,
	)
	return svc, cfg, logger, nil
}

// printNotification 把通知槽裡仍存活的訊息印到終端
func printNotification(svc storefront.Service) {
	if msg, alive := svc.Notifier().Current(); alive {
		fmt.Printf("[%s] %s\n", msg.Level, msg.Text)
	}
}
