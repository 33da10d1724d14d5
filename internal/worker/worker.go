package worker

import (
	"sync"

	"github.com/rs/zerolog"
)

// queuePerWorker 每個 worker 可排隊的工作數
const queuePerWorker = 64

// Task 為背景工作，例如登入後更新最後登入時間
type Task func()

// Pool 固定數量的 worker，Stop 會等待所有已排入的工作完成
type Pool interface {
	// Submit 不會阻塞；佇列已滿或 pool 已停止時丟棄工作並回傳 false
	Submit(Task) bool
	Stop()
}

// NewPool 建立 n 個 worker，n<=0 時預設為 1
func NewPool(n int, log zerolog.Logger) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n*queuePerWorker), log: log}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func(id int) {
			defer p.wg.Done()
			for job := range p.jobs {
				p.run(id, job)
			}
		}(i)
	}
	return p
}

type pool struct {
	jobs    chan Task
	wg      sync.WaitGroup
	log     zerolog.Logger
	mu      sync.RWMutex
	stopped bool
}

// run 執行單一工作，panic 只記錄不會終止 worker
func (p *pool) run(id int, job Task) {
	if job == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Int("worker", id).Interface("panic", r).Msg("task panicked")
		}
	}()
	job()
}

func (p *pool) Submit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		p.log.Warn().Msg("pool stopped, task dropped")
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		p.log.Warn().Int("queued", len(p.jobs)).Msg("queue full, task dropped")
		return false
	}
}

func (p *pool) Stop() {
	p.mu.Lock()
	if !p.stopped {
		p.stopped = true
		close(p.jobs)
	}
	p.mu.Unlock()
	p.wg.Wait()
}
