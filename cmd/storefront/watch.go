package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"gofalre.io/storefront"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Poll the backends and redraw the dashboard on every completed refresh",
		Long: `Watch keeps the product and order views fresh on independent timers
(products every 15s, orders every 10s by default). Overlapping refreshes
are not coordinated: whichever finishes last paints the view.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, logger, err := newService()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			poller := storefront.NewPoller(svc, cfg.OrderPollInterval, cfg.ProductPollInterval, logger)

			// 重繪彼此互斥，刷新本身不互斥
			var renderMu sync.Mutex
			poller.OnComplete(func(action storefront.Action) {
				renderMu.Lock()
				defer renderMu.Unlock()
				redraw(svc, action)
			})

			poller.Start(ctx)
			<-ctx.Done()
			poller.Stop()
			fmt.Println("watch stopped")
			return nil
		},
	}
}

func redraw(svc storefront.Service, action storefront.Action) {
	switch action {
	case storefront.ActionRefreshProducts:
		fmt.Println("== Products ==")
		renderProducts(os.Stdout, svc.Products())
	case storefront.ActionRefreshCustomers:
		fmt.Println("== Customers ==")
		renderCustomers(os.Stdout, svc.Customers())
	case storefront.ActionRefreshOrders:
		fmt.Println("== Orders ==")
		renderOrders(os.Stdout, svc.Orders())
	}
	printNotification(svc)
}
