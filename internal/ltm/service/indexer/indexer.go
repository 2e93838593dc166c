// Package indexer follows a lock-to-mint lineage on chain and records every redemption.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/clock"
	"github.com/goodnatureofminers/lockmint/internal/ltm/covenant"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/goodnatureofminers/lockmint/pkg/workerpool"
	"go.uber.org/zap"
)

// ErrLineageEnded is returned once the tracked lineage is depleted or broken.
var ErrLineageEnded = errors.New("lineage ended")

// Config selects the lineage to follow.
type Config struct {
	Coin    model.Coin
	Network model.Network
	// Genesis is the outpoint of the covenant output created by the deployment.
	Genesis wire.OutPoint
	// StartHeight is the height of the block holding the deployment transaction.
	StartHeight uint64
	// Depth keeps the indexer this many blocks behind the tip.
	Depth          uint64
	WorkerCount    int
	BlocksPerRound uint64
}

// Service follows one lineage from its genesis output.
type Service struct {
	logger    *zap.Logger
	cfg       Config
	lineageID string

	source    BlockSource
	reader    UTXOReader
	repo      Repository
	writer    RedemptionWriter
	recoverer Recoverer
	validator Validator
	metrics   Metrics

	sleep     func(context.Context, time.Duration) error
	idleSleep time.Duration
	backoff   clock.Backoff

	// progress, owned by the Run goroutine
	resumed    bool
	tracked    model.CovenantUTXO
	nextHeight uint64
	step       uint64
}

// NewService builds a Service with dependencies.
func NewService(
	cfg Config,
	source BlockSource,
	reader UTXOReader,
	repo Repository,
	assembler *covenant.Assembler,
	metrics Metrics,
	logger *zap.Logger,
) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("indexer metrics is required")
	}
	if assembler == nil {
		return nil, errors.New("covenant assembler is required")
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = defaultWorkerCount
	}
	if cfg.BlocksPerRound == 0 {
		cfg.BlocksPerRound = defaultBlocksPerRound
	}

	lineageID := covenant.TokenID(cfg.Genesis)
	logger = logger.With(
		zap.String("coin", string(cfg.Coin)),
		zap.String("network", string(cfg.Network)),
		zap.String("lineage", lineageID),
	)

	return &Service{
		logger:    logger,
		cfg:       cfg,
		lineageID: lineageID,
		source:    source,
		reader:    reader,
		repo:      repo,
		writer:    newRedemptionWriter(repo, metrics, logger),
		recoverer: assembler,
		validator: covenant.NewValidator(assembler),
		metrics:   metrics,
		sleep:     clock.Sleep,
		idleSleep: idleSleepDuration,
		backoff:   retryBackoff,
	}, nil
}

// Run follows the lineage until it ends or the context is canceled.
// A lineage that ends returns nil.
func (s *Service) Run(ctx context.Context) error {
	s.writer.Start(ctx)
	defer s.writer.Stop()

	failures := 0
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		err := s.iterate(ctx)
		if errors.Is(err, ErrLineageEnded) {
			// the last redemptions are only stored once the writer drains
			s.writer.Stop()
			if err = s.writer.Err(); err == nil {
				s.logger.Info("lineage ended", zap.Uint64("redemptions", s.step))
				return nil
			}
		}
		if err == nil {
			failures = 0
			continue
		}

		if errors.Is(err, ErrRedemptionsDropped) {
			s.logger.Error("redemptions dropped, resuming from the last stored one", zap.Error(err))
			s.writer.Reset(ctx)
			s.resumed = false
		}
		failures++
		delay := s.backoff.Delay(failures)
		s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", delay))
		if sleepErr := s.sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
	}
}

func (s *Service) iterate(ctx context.Context) error {
	if !s.resumed {
		if err := s.resume(ctx); err != nil {
			return err
		}
		s.resumed = true
	}
	return s.run(ctx)
}

// resume positions the service after the last stored redemption, or at genesis.
func (s *Service) resume(ctx context.Context) error {
	latest, found, err := s.repo.LatestRedemption(ctx, s.cfg.Coin, s.cfg.Network, s.lineageID)
	if err != nil {
		return fmt.Errorf("load latest redemption: %w", err)
	}

	if !found {
		utxo, err := s.reader.Read(ctx, s.cfg.Genesis)
		if err != nil {
			return fmt.Errorf("read genesis output: %w", err)
		}
		s.tracked = utxo
		s.nextHeight = s.cfg.StartHeight
		s.step = 0
		s.logger.Info("starting lineage from genesis", zap.Uint64("height", s.nextHeight))
		return nil
	}

	s.step = latest.Step
	if latest.Status == model.RedemptionRejected || latest.Depleted() {
		return ErrLineageEnded
	}

	hash, err := chainhash.NewHashFromStr(latest.TxID)
	if err != nil {
		return fmt.Errorf("stored txid %q: %w", latest.TxID, err)
	}
	utxo, err := s.reader.Read(ctx, wire.OutPoint{Hash: *hash, Index: 0})
	if err != nil {
		return fmt.Errorf("read covenant output of %s: %w", latest.TxID, err)
	}
	s.tracked = utxo
	// The successor can be spent later in the same block.
	s.nextHeight = latest.BlockHeight
	s.logger.Info("resuming lineage",
		zap.Uint64("step", s.step),
		zap.Uint64("height", s.nextHeight),
		zap.Uint64("supply", utxo.State.Supply),
	)
	return nil
}

func (s *Service) run(ctx context.Context) (err error) {
	started := time.Now()
	blocks := 0
	defer func() {
		if !errors.Is(err, ErrLineageEnded) {
			s.metrics.ObserveRound(err, blocks, started)
		}
	}()

	tip, err := s.source.LatestHeight(ctx)
	if err != nil {
		return fmt.Errorf("latest height: %w", err)
	}
	if tip < s.cfg.Depth || s.nextHeight > tip-s.cfg.Depth {
		s.logger.Debug("no new blocks; sleeping", zap.Duration("sleep", s.idleSleep))
		return s.sleep(ctx, s.idleSleep)
	}
	last := min(s.nextHeight+s.cfg.BlocksPerRound-1, tip-s.cfg.Depth)

	heights := make([]uint64, 0, last-s.nextHeight+1)
	for h := s.nextHeight; h <= last; h++ {
		heights = append(heights, h)
	}
	fetched, err := workerpool.Map(ctx, s.cfg.WorkerCount, heights, s.fetchBlock)
	if err != nil {
		return err
	}

	for _, block := range fetched {
		if err = s.scanBlock(ctx, block); err != nil {
			return err
		}
		s.nextHeight = block.Height + 1
		blocks++
	}
	s.metrics.SetProgress(s.nextHeight, s.tracked.State.Supply)
	s.logger.Debug("scanned blocks", zap.Uint64("from", heights[0]), zap.Uint64("to", last))
	return nil
}

func (s *Service) fetchBlock(ctx context.Context, height uint64) (block *model.Block, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBlock(err, height, started)
	}()

	block, err = s.source.FetchBlock(ctx, height)
	if err != nil {
		return nil, fmt.Errorf("fetch block height %d: %w", height, err)
	}
	return block, nil
}
