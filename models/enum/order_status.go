package enum

import "fmt"

// OrderStatus 表示訂單的狀態，狀態轉換完全由訂單服務決定
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // 訂單已創建，等待處理
	OrderStatusProcessing OrderStatus = "processing" // 訂單處理中
	OrderStatusShipped    OrderStatus = "shipped"    // 訂單已發貨
	OrderStatusConfirmed  OrderStatus = "confirmed"  // 訂單已確認
	OrderStatusFailed     OrderStatus = "failed"     // 訂單失敗
	OrderStatusCancelled  OrderStatus = "cancelled"  // 訂單取消
	OrderStatusCompleted  OrderStatus = "completed"  // 訂單完成
)

// OrderStatuses lists every status the order service accepts, in the
// order they are offered to the user.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusShipped,
		OrderStatusConfirmed,
		OrderStatusFailed,
		OrderStatusCancelled,
		OrderStatusCompleted,
	}
}

// Validate 檢查狀態是否在封閉集合內
func (s OrderStatus) Validate() error {
	for _, known := range OrderStatuses() {
		if s == known {
			return nil
		}
	}
	return fmt.Errorf("unknown order status: %q", string(s))
}

func (s OrderStatus) String() string {
	return string(s)
}
