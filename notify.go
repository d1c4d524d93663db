package storefront

import (
	"sync"
	"time"
)

// NotifyLevel 表示通知訊息的種類
type NotifyLevel string

const (
	NotifyInfo    NotifyLevel = "info"
	NotifySuccess NotifyLevel = "success"
	NotifyError   NotifyLevel = "error"
)

// Message 是單一則使用者可見的通知
type Message struct {
	Level NotifyLevel
	Text  string
}

const defaultMessageTTL = 5 * time.Second

// Notifier 只有一個共用的訊息槽：新訊息覆蓋舊訊息（last write wins），
// 訊息在存活時間過後自動消失。沒有佇列，也不保留歷史。
type Notifier struct {
	mu      sync.Mutex
	current *Message
	seq     uint64
	ttl     time.Duration
}

func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = defaultMessageTTL
	}
	return &Notifier{ttl: ttl}
}

func (n *Notifier) Info(text string)    { n.show(NotifyInfo, text) }
func (n *Notifier) Success(text string) { n.show(NotifySuccess, text) }
func (n *Notifier) Error(text string)   { n.show(NotifyError, text) }

func (n *Notifier) show(level NotifyLevel, text string) {
	n.mu.Lock()
	n.seq++
	seq := n.seq
	n.current = &Message{Level: level, Text: text}
	n.mu.Unlock()

	time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// 只清除自己那一則，後來的訊息有自己的計時器
		if n.seq == seq {
			n.current = nil
		}
	})
}

// Current 回傳仍然存活的訊息
func (n *Notifier) Current() (Message, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.current == nil {
		return Message{}, false
	}
	return *n.current, true
}
