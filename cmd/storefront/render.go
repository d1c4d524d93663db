package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"

	"gofalre.io/storefront/cart"
	"gofalre.io/storefront/models"
)

func formatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func renderProducts(w io.Writer, products []models.Product) {
	if len(products) == 0 {
		fmt.Fprintln(w, "No products available yet. Add some!")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Price", "Stock", "Description"})
	for _, p := range products {
		table.Append([]string{
			strconv.Itoa(p.ProductID),
			p.Name,
			formatCurrency(p.Price),
			strconv.Itoa(p.StockQuantity),
			p.Description,
		})
	}
	table.Render()
}

func renderCustomers(w io.Writer, customers []models.Customer) {
	if len(customers) == 0 {
		fmt.Fprintln(w, "No customers available yet. Add some!")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Email", "Phone", "Shipping Address"})
	for _, c := range customers {
		table.Append([]string{
			strconv.Itoa(c.CustomerID),
			strings.TrimSpace(c.FirstName + " " + c.LastName),
			c.Email,
			c.PhoneNumber,
			c.ShippingAddress,
		})
	}
	table.Render()
}

func renderOrders(w io.Writer, orders []models.Order) {
	if len(orders) == 0 {
		fmt.Fprintln(w, "No orders available yet.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "User", "Status", "Total", "Items", "Shipping Address"})
	for _, o := range orders {
		items := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, fmt.Sprintf("%d x%d @%s",
				it.ProductID, it.Quantity, formatCurrency(it.PriceAtPurchase)))
		}
		table.Append([]string{
			strconv.Itoa(o.OrderID),
			strconv.Itoa(o.UserID),
			o.Status.String(),
			formatCurrency(o.TotalAmount),
			strings.Join(items, ", "),
			o.ShippingAddress,
		})
	}
	table.Render()
}

func renderCart(w io.Writer, lines []cart.Line, total decimal.Decimal) {
	if len(lines) == 0 {
		fmt.Fprintln(w, "Your cart is empty.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Product", "Name", "Unit Price", "Qty", "Subtotal"})
	for _, l := range lines {
		table.Append([]string{
			l.ProductID,
			l.Name,
			formatCurrency(l.UnitPrice),
			strconv.Itoa(l.Quantity),
			formatCurrency(l.Subtotal()),
		})
	}
	table.Render()
	fmt.Fprintf(w, "Total: %s\n", formatCurrency(total))
}
