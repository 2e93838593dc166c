package indexer

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/clock"
	"github.com/goodnatureofminers/lockmint/internal/ltm/bsv20"
	"github.com/goodnatureofminers/lockmint/internal/ltm/covenant"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	lockPkh   = bytes.Repeat([]byte{0x11}, bsv20.PubKeyHashSize)
	rewardPkh = bytes.Repeat([]byte{0x22}, bsv20.PubKeyHashSize)
)

func testAssembler() *covenant.Assembler {
	codec := bsv20.NewCodec([]byte{0x51, 0x75})
	return covenant.NewAssembler(covenant.NarrowVariant, codec, codec)
}

func genesisOutpoint() wire.OutPoint {
	var h chainhash.Hash
	for i := range h {
		h[i] = 0x42
	}
	return wire.OutPoint{Hash: h, Index: 0}
}

func testGenesis(t *testing.T, supply uint64) model.CovenantUTXO {
	t.Helper()
	state, err := covenant.Genesis(model.Deployment{
		Symbol:       "LOCK",
		Max:          supply,
		Decimals:     0,
		Multiplier:   1,
		LockDuration: 10,
		StartHeight:  100,
	})
	require.NoError(t, err)
	return model.CovenantUTXO{Outpoint: genesisOutpoint(), Value: 1, State: state}
}

type spend struct {
	lockAmount uint64
	lockTime   uint32
}

// buildLineage chains one redemption transaction per spend, starting at current.
func buildLineage(t *testing.T, a *covenant.Assembler, current model.CovenantUTXO, spends ...spend) []*covenant.BuiltTransition {
	t.Helper()
	builder := covenant.NewBuilder(a)
	built := make([]*covenant.BuiltTransition, 0, len(spends))
	for _, sp := range spends {
		b, err := builder.Build(current, covenant.Redemption{
			LockRecipient:   lockPkh,
			RewardRecipient: rewardPkh,
			LockAmount:      sp.lockAmount,
		}, covenant.BuildOptions{LockTime: sp.lockTime})
		require.NoError(t, err)
		built = append(built, b)
		current = model.CovenantUTXO{
			Outpoint: wire.OutPoint{Hash: b.Tx.TxHash(), Index: 0},
			Value:    1,
			State:    b.Next,
		}
	}
	return built
}

func unrelatedTx(b byte) *wire.MsgTx {
	tx := wire.NewMsgTx(1)
	var h chainhash.Hash
	h[0] = b
	tx.AddTxIn(wire.NewTxIn(&wire.OutPoint{Hash: h}, nil, nil))
	tx.AddTxOut(wire.NewTxOut(1000, []byte{0x51}))
	return tx
}

func testBlock(height uint64, txs ...*wire.MsgTx) *model.Block {
	return &model.Block{
		Height:    height,
		Hash:      chainhash.DoubleHashH([]byte{byte(height)}).String(),
		Timestamp: time.Unix(1700000000+int64(height)*600, 0).UTC(),
		Txs:       txs,
	}
}

func testConfig() Config {
	return Config{
		Coin:           model.BSV,
		Network:        model.Mainnet,
		Genesis:        genesisOutpoint(),
		StartHeight:    100,
		WorkerCount:    2,
		BlocksPerRound: 10,
	}
}

func newTestService(cfg Config, source BlockSource, reader UTXOReader, repo Repository, writer RedemptionWriter, metrics Metrics) *Service {
	a := testAssembler()
	return &Service{
		logger:    zap.NewNop(),
		cfg:       cfg,
		lineageID: covenant.TokenID(cfg.Genesis),
		source:    source,
		reader:    reader,
		repo:      repo,
		writer:    writer,
		recoverer: a,
		validator: covenant.NewValidator(a),
		metrics:   metrics,
		sleep:     func(context.Context, time.Duration) error { return nil },
		idleSleep: time.Millisecond,
		backoff:   clock.Backoff{Initial: time.Millisecond},
	}
}
