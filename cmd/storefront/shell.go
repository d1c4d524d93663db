package main

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"gofalre.io/storefront"
	"gofalre.io/storefront/models/enum"
)

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive storefront shell (the cart lives here)",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, logger, err := newService()
			if err != nil {
				return err
			}
			defer logger.Sync()

			return runShell(svc)
		},
	}
}

func runShell(svc storefront.Service) error {
	fmt.Println("Storefront shell. Type 'help' for commands, 'exit' to leave.")

	// 初次載入三個畫面
	ctx := context.Background()
	_, _ = svc.RefreshProducts(ctx)
	_, _ = svc.RefreshCustomers(ctx)
	_, _ = svc.RefreshOrders(ctx)

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	var historyFile string
	if usr, err := user.Current(); err == nil {
		historyFile = filepath.Join(usr.HomeDir, ".storefront_history")
		if f, err := os.Open(historyFile); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	for {
		input, err := line.Prompt("storefront> ")
		if err != nil {
			break
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		if !execShellCommand(svc, input) {
			break
		}
	}

	if historyFile != "" {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
	return nil
}

// execShellCommand 回傳 false 表示離開 shell
func execShellCommand(svc storefront.Service, input string) bool {
	fields := strings.Fields(input)
	cmd, args := strings.ToLower(fields[0]), fields[1:]
	ctx := context.Background()

	switch cmd {
	case "exit", "quit":
		return false

	case "help":
		printShellHelp()

	case "products":
		if _, err := svc.RefreshProducts(ctx); err == nil {
			renderProducts(os.Stdout, svc.Products())
		}

	case "customers":
		if _, err := svc.RefreshCustomers(ctx); err == nil {
			renderCustomers(os.Stdout, svc.Customers())
		}

	case "orders":
		if _, err := svc.RefreshOrders(ctx); err == nil {
			renderOrders(os.Stdout, svc.Orders())
		}

	case "add":
		if len(args) < 1 {
			fmt.Println("usage: add <product-id>")
			break
		}
		_ = svc.Dispatch(ctx, storefront.ActionAddToCart, storefront.Payload{ProductID: args[0]})

	case "cart":
		renderCart(os.Stdout, svc.CartLines(), svc.CartTotal())

	case "checkout":
		if len(args) < 2 {
			fmt.Println("usage: checkout <user-id> <shipping address...>")
			break
		}
		userID, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("invalid user id %q\n", args[0])
			break
		}
		_ = svc.Dispatch(ctx, storefront.ActionPlaceOrder, storefront.Payload{
			UserID:          userID,
			ShippingAddress: strings.Join(args[1:], " "),
		})

	case "status":
		if len(args) < 2 {
			fmt.Printf("usage: status <order-id> <status>, one of %v\n", enum.OrderStatuses())
			break
		}
		orderID, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("invalid order id %q\n", args[0])
			break
		}
		_ = svc.Dispatch(ctx, storefront.ActionUpdateOrderStatus, storefront.Payload{
			ID:     orderID,
			Status: enum.OrderStatus(args[1]),
		})

	case "delete-product", "delete-customer", "delete-order":
		if len(args) < 1 {
			fmt.Printf("usage: %s <id>\n", cmd)
			break
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Printf("invalid id %q\n", args[0])
			break
		}
		action := map[string]storefront.Action{
			"delete-product":  storefront.ActionDeleteProduct,
			"delete-customer": storefront.ActionDeleteCustomer,
			"delete-order":    storefront.ActionDeleteOrder,
		}[cmd]
		_ = svc.Dispatch(ctx, action, storefront.Payload{ID: id})

	default:
		fmt.Printf("unknown command %q, type 'help'\n", cmd)
	}

	printNotification(svc)
	return true
}

func printShellHelp() {
	fmt.Println(`Commands:
  products                            refresh and show the product list
  customers                           refresh and show the customer list
  orders                              refresh and show the order list
  add <product-id>                    add a product to the cart (repeat to increment)
  cart                                show the cart and its total
  checkout <user-id> <address...>     place an order from the cart
  status <order-id> <status>          update an order's status
  delete-product <id>                 delete a product
  delete-customer <id>                delete a customer
  delete-order <id>                   delete an order
  exit                                leave the shell`)
}
