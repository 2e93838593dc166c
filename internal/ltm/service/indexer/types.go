package indexer

import (
	"context"
	"time"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/ltm/covenant"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*model.Block, error)
	}
	UTXOReader interface {
		Read(ctx context.Context, outpoint wire.OutPoint) (model.CovenantUTXO, error)
	}
	Repository interface {
		InsertRedemptions(ctx context.Context, redemptions []model.Redemption) error
		LatestRedemption(ctx context.Context, coin model.Coin, network model.Network, lineageID string) (model.Redemption, bool, error)
	}
	RedemptionWriter interface {
		Start(ctx context.Context)
		Stop()
		Reset(ctx context.Context)
		Err() error
		WriteRedemption(ctx context.Context, r model.Redemption) error
	}
	Recoverer interface {
		RecoverRedemption(tx *wire.MsgTx) (covenant.Redemption, error)
	}
	Validator interface {
		Validate(state model.TokenState, r covenant.Redemption, ctx covenant.TxContext) (covenant.Transition, error)
	}
	Metrics interface {
		ObserveRound(err error, blocks int, started time.Time)
		ObserveBlock(err error, height uint64, started time.Time)
		ObserveRedemption(status model.RedemptionStatus, reason string, reward uint64)
		ObserveFlush(size int, err error, started time.Time)
		SetProgress(nextHeight, supply uint64)
	}
)
