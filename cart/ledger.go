// Package cart 維護下單前的本機購物車帳。狀態只存在行程記憶體中，
// 行程結束即消失。
package cart

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gofalre.io/storefront/models"
)

// Line 代表購物車中的單個商品行：同一個商品最多一行，
// 重複加入只會遞增數量。
type Line struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal 回傳該行的小計
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Ledger 是依加入順序排列的購物車行集合。
// watch 模式下會被多個 goroutine 讀取，因此自帶互斥鎖。
type Ledger struct {
	mu     sync.Mutex
	lines  []Line
	logger *zap.Logger
}

func NewLedger(logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{logger: logger}
}

// AddOrIncrement 以 productID 尋找既有行，找到就把數量加一，
// 否則在尾端加入數量為 1 的新行。沒有容量上限，也不對庫存做驗證。
func (g *Ledger) AddOrIncrement(productID, name string, unitPrice decimal.Decimal) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.lines {
		if g.lines[i].ProductID == productID {
			g.lines[i].Quantity++
			g.logger.Debug("cart line incremented",
				zap.String("product_id", productID),
				zap.Int("quantity", g.lines[i].Quantity))
			return
		}
	}

	g.lines = append(g.lines, Line{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
	g.logger.Debug("cart line added", zap.String("product_id", productID))
}

// Total 回傳所有行的單價×數量總和，空車為 0
func (g *Ledger) Total() decimal.Decimal {
	g.mu.Lock()
	defer g.mu.Unlock()

	total := decimal.Zero
	for _, l := range g.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Lines 回傳目前所有行的快照
func (g *Ledger) Lines() []Line {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]Line, len(g.lines))
	copy(out, g.lines)
	return out
}

// Len 回傳行數
func (g *Ledger) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.lines)
}

// ToOrderItems 把每一行投影成下單項目。商品編號只在這裡解析成整數，
// 無法解析視為投影錯誤。
func (g *Ledger) ToOrderItems() ([]models.NewOrderItem, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	items := make([]models.NewOrderItem, 0, len(g.lines))
	for _, l := range g.lines {
		id, err := strconv.Atoi(l.ProductID)
		if err != nil {
			return nil, fmt.Errorf("cart line %q has a non-numeric product id", l.ProductID)
		}
		items = append(items, models.NewOrderItem{
			ProductID:       id,
			Quantity:        l.Quantity,
			PriceAtPurchase: l.UnitPrice,
		})
	}
	return items, nil
}

// Clear 清空購物車，只在下單成功後呼叫
func (g *Ledger) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.lines = nil
	g.logger.Debug("cart cleared")
}
