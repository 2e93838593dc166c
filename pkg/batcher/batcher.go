// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// retainLimit bounds how many flush sizes of failed items a retaining batcher keeps.
const retainLimit = 4

// FlushObserver is notified after every flush attempt.
type FlushObserver func(size int, err error, started time.Time)

// DropObserver receives items discarded after a failed flush, together with the flush error.
type DropObserver[T any] func(items []T, err error)

// Option configures a Batcher.
type Option[T any] func(*Batcher[T])

// WithFlushObserver registers an observer for flush attempts.
func WithFlushObserver[T any](observer FlushObserver) Option[T] {
	return func(b *Batcher[T]) {
		b.observer = observer
	}
}

// WithRetainOnError keeps a failed batch buffered and retries it on the next flush.
func WithRetainOnError[T any]() Option[T] {
	return func(b *Batcher[T]) {
		b.retain = true
	}
}

// WithDropObserver registers an observer for items discarded after a failed flush.
// The slice is owned by the observer.
func WithDropObserver[T any](observer DropObserver[T]) Option[T] {
	return func(b *Batcher[T]) {
		b.dropObserver = observer
	}
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger
	observer      FlushObserver
	dropObserver  DropObserver[T]
	retain        bool

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int, opts ...Option[T]) *Batcher[T] {
	b := &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            ratelimit.New(rps),
		stop:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop stops the background loop after flushing everything already queued.
// It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return context.Canceled
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)
	var lastErr error

	drop := func(err error) {
		b.logger.Error("batch dropped", zap.Int("size", len(buf)), zap.Error(err))
		if b.dropObserver != nil {
			b.dropObserver(append([]T(nil), buf...), err)
		}
		buf = buf[:0]
	}

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		started := time.Now()
		err := b.flushCallback(ctx, buf)
		if b.observer != nil {
			b.observer(len(buf), err, started)
		}
		lastErr = err
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
			if b.retain && len(buf) < retainLimit*b.flushSize {
				return
			}
			drop(err)
			return
		}
		b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		buf = buf[:0]
	}

	// drain flushes queued items with a context that outlives cancellation of ctx.
	drain := func() {
		final := context.WithoutCancel(ctx)
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.flushSize {
					flush(final)
				}
			default:
				flush(final)
				if len(buf) > 0 {
					drop(lastErr)
				}
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			return

		case <-b.stop:
			drain()
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
