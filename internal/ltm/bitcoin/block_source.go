package bitcoin

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/goodnatureofminers/lockmint/pkg/safe"
)

const (
	fetchAttempts   = 3
	fetchRetryDelay = 250 * time.Millisecond
)

// BlockSource fetches whole blocks by height.
type BlockSource struct {
	rpc       NodeClient
	retryOpts []retry.Option
}

// NewBlockSource creates a BlockSource. Block fetches are retried a few times before
// the error reaches the caller.
func NewBlockSource(rpc NodeClient) *BlockSource {
	return &BlockSource{
		rpc: rpc,
		retryOpts: []retry.Option{
			retry.Attempts(fetchAttempts),
			retry.Delay(fetchRetryDelay),
			retry.LastErrorOnly(true),
		},
	}
}

// LatestHeight returns the latest block height from the node.
func (s *BlockSource) LatestHeight(_ context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// FetchBlock retrieves the block at height with all of its transactions.
func (s *BlockSource) FetchBlock(ctx context.Context, height uint64) (*model.Block, error) {
	if height > math.MaxInt64 {
		return nil, fmt.Errorf("block height %d exceeds rpc limit", height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		hash  *chainhash.Hash
		block *wire.MsgBlock
	)
	err := retry.Do(func() error {
		var err error
		hash, err = s.rpc.GetBlockHash(int64(height))
		if err != nil {
			return fmt.Errorf("get block hash at height %d: %w", height, err)
		}
		block, err = s.rpc.GetBlock(hash)
		if err != nil {
			return fmt.Errorf("get block %s: %w", hash, err)
		}
		return nil
	}, append([]retry.Option{retry.Context(ctx)}, s.retryOpts...)...)
	if err != nil {
		return nil, err
	}

	return &model.Block{
		Height:    height,
		Hash:      hash.String(),
		Timestamp: block.Header.Timestamp.UTC(),
		Txs:       block.Transactions,
	}, nil
}
