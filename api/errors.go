package api

// Error 代表後端回報的失敗，JSON 與純文字兩種錯誤格式
// 都會被正規化成這個型別。
type Error struct {
	Status  int    // HTTP 狀態碼，傳輸層失敗時為 0
	Message string // 可直接顯示給使用者的訊息
}

func (e *Error) Error() string {
	return e.Message
}
