package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gofalre.io/storefront/models/enum"
)

func orderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Order management commands",
		Run:   seeHelp,
	}
	cmd.AddCommand(
		orderListCmd(),
		orderPlaceCmd(),
		orderStatusCmd(),
		orderDeleteCmd(),
	)

	return cmd
}

func orderListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := newService()
			if err != nil {
				return err
			}

			orders, err := svc.RefreshOrders(context.Background())
			if err != nil {
				return err
			}
			renderOrders(os.Stdout, orders)
			return nil
		},
	}
}

var orderPlaceFlags struct {
	userID          int
	shippingAddress string
	add             []string
}

func orderPlaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place an order from a one-shot cart",
		Long: `Place an order by filling a cart and checking it out in one go.
Each --add takes a product id; repeat it to increment quantities, e.g.
--add 3 --add 3 --add 5 orders two of product 3 and one of product 5.
Prices are taken from the product service at submission time.`,
		RunE: orderPlaceF,
	}

	cmd.Flags().IntVarP(&orderPlaceFlags.userID, "user-id", "u", 0, "The ordering user's ID (required)")
	cmd.Flags().StringVarP(&orderPlaceFlags.shippingAddress, "shipping-address", "a", "", "Shipping address (required)")
	cmd.Flags().StringArrayVar(&orderPlaceFlags.add, "add", nil, "Product id to add to the cart (repeatable)")
	cmd.MarkFlagRequired("user-id")
	cmd.MarkFlagRequired("shipping-address")
	cmd.MarkFlagRequired("add")

	return cmd
}

func orderPlaceF(cmd *cobra.Command, args []string) error {
	svc, _, _, err := newService()
	if err != nil {
		return err
	}

	ctx := context.Background()

	// 先載入商品目錄，加入購物車時才查得到名稱與單價
	if _, err := svc.RefreshProducts(ctx); err != nil {
		return err
	}
	for _, id := range orderPlaceFlags.add {
		if err := svc.AddToCart(id); err != nil {
			return err
		}
	}

	placed, err := svc.PlaceOrder(ctx, orderPlaceFlags.userID, orderPlaceFlags.shippingAddress)
	if err != nil {
		return err
	}

	fmt.Printf("Order %d created with status: %s.\n", placed.OrderID, placed.Status)
	return nil
}

var orderStatusFlags struct {
	id     int
	status string
}

func orderStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Update an order's status",
		Long: fmt.Sprintf(
			"Update an order's status. Accepted values: %v.\nWhether the transition is legal is decided by the order service.",
			enum.OrderStatuses()),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := newService()
			if err != nil {
				return err
			}

			updated, err := svc.UpdateOrderStatus(context.Background(),
				orderStatusFlags.id, enum.OrderStatus(orderStatusFlags.status))
			if err != nil {
				return err
			}
			fmt.Printf("Order %d status updated to %q!\n", updated.OrderID, updated.Status)
			return nil
		},
	}

	cmd.Flags().IntVarP(&orderStatusFlags.id, "id", "i", 0, "The order ID (required)")
	cmd.Flags().StringVarP(&orderStatusFlags.status, "status", "s", "", "The new status (required)")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("status")

	return cmd
}

var orderDeleteFlags struct {
	id int
}

func orderDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an order by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, _, err := newService()
			if err != nil {
				return err
			}

			if err := svc.DeleteOrder(context.Background(), orderDeleteFlags.id); err != nil {
				return err
			}
			fmt.Printf("Order ID: %d deleted.\n", orderDeleteFlags.id)
			return nil
		},
	}

	cmd.Flags().IntVarP(&orderDeleteFlags.id, "id", "i", 0, "The order ID (required)")
	cmd.MarkFlagRequired("id")

	return cmd
}
