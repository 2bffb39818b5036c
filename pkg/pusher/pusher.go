// Package pusher batches values in memory and flushes them downstream on a
// fixed interval, keeping slow sinks (a result archive, a broadcast fan-out)
// off the request path.
package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

type Pusher[T any] struct {
	buffer   []T
	flush    func(...T) error
	interval time.Duration
	onError  func(error)
	mu       sync.Mutex
	stop     chan struct{}
	once     sync.Once
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		flush:    func(...T) error { return nil },
		onError:  func(err error) { logx.Error(err) },
		interval: time.Second,
		stop:     make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

func (p *Pusher[T]) Add(values ...T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.buffer = append(p.buffer, values...)
}

// FlushAll hands the buffered values to the flush func. The buffer is kept
// on failure so the next tick retries.
func (p *Pusher[T]) FlushAll() error {
	p.mu.Lock()
	pending := p.buffer
	p.buffer = nil
	p.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	if err := p.flush(pending...); err != nil {
		p.mu.Lock()
		p.buffer = append(pending, p.buffer...)
		p.mu.Unlock()
		return err
	}

	return nil
}

func (p *Pusher[T]) Start() {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := p.FlushAll(); err != nil {
					p.onError(err)
				}
			case <-p.stop:
				if err := p.FlushAll(); err != nil {
					p.onError(err)
				}
				return
			}
		}
	}()
}

func (p *Pusher[T]) Stop() {
	p.once.Do(func() {
		close(p.stop)
	})
}
