package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/goodnatureofminers/lockmint/pkg/batcher"
	"go.uber.org/zap"
)

// ErrRedemptionsDropped reports redemptions that were scanned but never stored.
var ErrRedemptionsDropped = errors.New("redemptions dropped")

type redemptionWriter struct {
	repo    Repository
	metrics Metrics
	logger  *zap.Logger
	batcher *batcher.Batcher[model.Redemption]

	mu      sync.Mutex
	dropped error
}

func newRedemptionWriter(repo Repository, metrics Metrics, logger *zap.Logger) *redemptionWriter {
	w := &redemptionWriter{repo: repo, metrics: metrics, logger: logger}
	w.batcher = w.newBatcher()
	return w
}

func (w *redemptionWriter) newBatcher() *batcher.Batcher[model.Redemption] {
	return batcher.New[model.Redemption](
		w.logger.Named("redemptionBatcher"),
		w.flush,
		redemptionBatcherCapacity,
		redemptionBatcherFlushInterval,
		redemptionBatcherRPS,
		batcher.WithFlushObserver[model.Redemption](w.metrics.ObserveFlush),
		batcher.WithRetainOnError[model.Redemption](),
		batcher.WithDropObserver[model.Redemption](w.drop),
	)
}

func (w *redemptionWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

func (w *redemptionWriter) Stop() {
	w.batcher.Stop()
}

// Reset discards everything still buffered and starts over with an empty batch.
func (w *redemptionWriter) Reset(ctx context.Context) {
	w.batcher.Stop()
	w.mu.Lock()
	w.dropped = nil
	w.mu.Unlock()
	w.batcher = w.newBatcher()
	w.batcher.Start(ctx)
}

// Err returns the first drop since the last Reset.
func (w *redemptionWriter) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dropped
}

func (w *redemptionWriter) WriteRedemption(ctx context.Context, r model.Redemption) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := w.Err(); err != nil {
		return err
	}
	return w.batcher.Add(ctx, r)
}

// flush refuses to store anything past a dropped batch so the stored steps stay contiguous.
func (w *redemptionWriter) flush(ctx context.Context, redemptions []model.Redemption) error {
	if err := w.Err(); err != nil {
		return err
	}
	return w.repo.InsertRedemptions(ctx, redemptions)
}

func (w *redemptionWriter) drop(redemptions []model.Redemption, err error) {
	if len(redemptions) == 0 {
		return
	}
	first, last := redemptions[0].Step, redemptions[len(redemptions)-1].Step
	w.logger.Error("redemptions dropped",
		zap.Uint64("firstStep", first),
		zap.Uint64("lastStep", last),
		zap.Int("count", len(redemptions)),
		zap.Error(err),
	)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dropped == nil {
		w.dropped = fmt.Errorf("%w: steps %d to %d: %v", ErrRedemptionsDropped, first, last, err)
	}
}
