package cart_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gofalre.io/storefront/cart"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddOrIncrementAccumulates(t *testing.T) {
	ledger := cart.NewLedger(nil)

	for i := 0; i < 5; i++ {
		ledger.AddOrIncrement("3", "Widget", price("9.99"))
	}

	lines := ledger.Lines()
	require.Len(t, lines, 1, "repeated adds of the same product must not duplicate lines")
	assert.Equal(t, "3", lines[0].ProductID)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestLedgerScenario(t *testing.T) {
	ledger := cart.NewLedger(nil)

	ledger.AddOrIncrement("3", "Widget", price("9.99"))
	ledger.AddOrIncrement("3", "Widget", price("9.99"))
	ledger.AddOrIncrement("5", "Gadget", price("1.00"))

	lines := ledger.Lines()
	require.Len(t, lines, 2)

	// 插入順序必須保留
	assert.Equal(t, "3", lines[0].ProductID)
	assert.Equal(t, "Widget", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, "5", lines[1].ProductID)
	assert.Equal(t, "Gadget", lines[1].Name)
	assert.Equal(t, 1, lines[1].Quantity)

	assert.True(t, ledger.Total().Equal(price("20.98")),
		"total is %s, want 20.98", ledger.Total())
}

func TestEmptyLedgerTotalIsZero(t *testing.T) {
	ledger := cart.NewLedger(nil)
	assert.True(t, ledger.Total().IsZero())
	assert.Zero(t, ledger.Len())
}

func TestClearEmptiesLedger(t *testing.T) {
	ledger := cart.NewLedger(nil)
	ledger.AddOrIncrement("3", "Widget", price("9.99"))
	ledger.AddOrIncrement("5", "Gadget", price("1.00"))

	ledger.Clear()

	assert.True(t, ledger.Total().IsZero())
	assert.Empty(t, ledger.Lines())
}

func TestToOrderItems(t *testing.T) {
	ledger := cart.NewLedger(nil)
	ledger.AddOrIncrement("3", "Widget", price("9.99"))
	ledger.AddOrIncrement("3", "Widget", price("9.99"))
	ledger.AddOrIncrement("5", "Gadget", price("1.00"))

	items, err := ledger.ToOrderItems()
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, 3, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, items[0].PriceAtPurchase.Equal(price("9.99")))
	assert.Equal(t, 5, items[1].ProductID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestToOrderItemsRejectsNonNumericID(t *testing.T) {
	ledger := cart.NewLedger(nil)
	ledger.AddOrIncrement("abc", "Oddball", price("1.00"))

	_, err := ledger.ToOrderItems()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "abc")
}

func TestSubtotalPerLine(t *testing.T) {
	l := cart.Line{ProductID: "3", Name: "Widget", UnitPrice: price("9.99"), Quantity: 3}
	assert.True(t, l.Subtotal().Equal(price("29.97")))
}

func TestLedgerConcurrentAdds(t *testing.T) {
	ledger := cart.NewLedger(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ledger.AddOrIncrement("3", "Widget", price("9.99"))
		}()
	}
	wg.Wait()

	lines := ledger.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 50, lines[0].Quantity)
}
