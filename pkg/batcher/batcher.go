// Package batcher provides a generic buffered batch writer with rate limiting.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Batcher buffers items and flushes them when the buffer fills or the flush
// interval elapses, whichever comes first. Flushes go through the rate
// limiter so a bursty producer cannot overwhelm the sink.
type Batcher[T any] struct {
	logger        *zap.Logger
	flush         func(context.Context, []T) error
	items         chan T
	flushSize     int
	flushInterval time.Duration
	limiter       ratelimit.Limiter

	wg   sync.WaitGroup
	stop chan struct{}
}

// New constructs a Batcher that writes batches via flush.
func New[T any](logger *zap.Logger, flush func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	return &Batcher[T]{
		logger:        logger,
		flush:         flush,
		items:         make(chan T, flushSize*2),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		limiter:       ratelimit.New(rps),
		stop:          make(chan struct{}),
	}
}

// Start launches the background flush loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop drains buffered items and waits for the final flush.
func (b *Batcher[T]) Stop() {
	close(b.stop)
	b.wg.Wait()
}

// Add queues an item, respecting context cancellation. Adding after Stop
// returns context.Canceled.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return context.Canceled
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case b.items <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	for {
		select {
		case <-ctx.Done():
			b.flushBuffer(ctx, buf)
			return

		case <-b.stop:
			buf = b.drain(buf)
			b.flushBuffer(ctx, buf)
			return

		case item := <-b.items:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				b.flushBuffer(ctx, buf)
				buf = buf[:0]
			}

		case <-ticker.C:
			b.flushBuffer(ctx, buf)
			buf = buf[:0]
		}
	}
}

// drain empties the queue of items that were accepted before stop.
func (b *Batcher[T]) drain(buf []T) []T {
	for {
		select {
		case item := <-b.items:
			buf = append(buf, item)
		default:
			return buf
		}
	}
}

func (b *Batcher[T]) flushBuffer(ctx context.Context, buf []T) {
	if len(buf) == 0 {
		return
	}

	b.limiter.Take()
	if err := b.flush(ctx, buf); err != nil {
		b.logger.Error("batch not flushed", zap.Error(err), zap.Int("size", len(buf)))
		return
	}
	b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
}
