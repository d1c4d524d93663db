package storefront

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// WorkerPool 執行刷新任務。容量刻意放小：刷新彼此獨立，
// 同一資源的兩次刷新允許重疊，最後完成的覆蓋畫面。
type WorkerPool struct {
	tasks  chan func()
	wg     sync.WaitGroup
	logger *zap.Logger
}

func NewWorkerPool(size int, logger *zap.Logger) *WorkerPool {
	wp := &WorkerPool{
		tasks:  make(chan func(), 64),
		logger: logger,
	}

	for i := 0; i < size; i++ {
		wp.wg.Add(1)
		go wp.worker()
	}

	return wp
}

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		task()
	}
}

func (wp *WorkerPool) Submit(task func()) {
	wp.tasks <- task
}

func (wp *WorkerPool) Shutdown() {
	close(wp.tasks)
	wp.wg.Wait()
}

// Poller 以固定週期驅動刷新：訂單與商品各自獨立計時，
// 不與進行中的請求協調，也不做重複請求的去重。
type Poller struct {
	svc  Service
	pool *WorkerPool

	orderEvery   time.Duration
	productEvery time.Duration

	// onComplete 在一次刷新（無論成敗）結束後被呼叫，watch 模式用它重繪
	onComplete func(Action)

	done   chan struct{}
	wg     sync.WaitGroup
	logger *zap.Logger
}

func NewPoller(svc Service, orderEvery, productEvery time.Duration, logger *zap.Logger) *Poller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		svc:          svc,
		pool:         NewWorkerPool(4, logger),
		orderEvery:   orderEvery,
		productEvery: productEvery,
		done:         make(chan struct{}),
		logger:       logger,
	}
}

func (p *Poller) OnComplete(fn func(Action)) {
	p.onComplete = fn
}

// Start 先做一次完整載入，再啟動兩個獨立的計時迴圈
func (p *Poller) Start(ctx context.Context) {
	for _, action := range []Action{ActionRefreshProducts, ActionRefreshCustomers, ActionRefreshOrders} {
		p.submit(ctx, action)
	}

	p.wg.Add(2)
	go p.loop(ctx, p.orderEvery, ActionRefreshOrders)
	go p.loop(ctx, p.productEvery, ActionRefreshProducts)
}

func (p *Poller) loop(ctx context.Context, every time.Duration, action Action) {
	defer p.wg.Done()

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.submit(ctx, action)
		case <-p.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (p *Poller) submit(ctx context.Context, action Action) {
	p.pool.Submit(func() {
		// 刷新失敗已在應用層轉成通知，這裡只留 debug 紀錄
		if err := p.svc.Dispatch(ctx, action, Payload{}); err != nil {
			p.logger.Debug("refresh failed",
				zap.String("action", string(action)),
				zap.Error(err))
		}
		if p.onComplete != nil {
			p.onComplete(action)
		}
	})
}

func (p *Poller) Stop() {
	close(p.done)
	p.wg.Wait()
	p.pool.Shutdown()
}
