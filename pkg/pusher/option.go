package pusher

import "time"

type Option[T any] func(*Pusher[T])

func WithFlushFunc[T any](flush func(...T) error) Option[T] {
	return func(p *Pusher[T]) {
		p.flush = flush
	}
}

func WithInterval[T any](interval time.Duration) Option[T] {
	return func(p *Pusher[T]) {
		p.interval = interval
	}
}

func WithErrorHandler[T any](onError func(error)) Option[T] {
	return func(p *Pusher[T]) {
		p.onError = onError
	}
}
