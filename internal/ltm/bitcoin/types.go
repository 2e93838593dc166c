// Package bitcoin reads covenant outputs and blocks from a node over JSON-RPC.
package bitcoin

import (
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RPCMetrics records metrics for RPC calls.
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
	// NodeClient is the subset of node RPC the readers need.
	NodeClient interface {
		GetBlockCount() (int64, error)
		GetBlockHash(blockHeight int64) (*chainhash.Hash, error)
		GetBlock(blockHash *chainhash.Hash) (*wire.MsgBlock, error)
		GetRawTransaction(txHash *chainhash.Hash) (*btcutil.Tx, error)
	}
	// StateDecoder recovers covenant state from a locking script.
	StateDecoder interface {
		DecodeState(script []byte) (model.TokenState, error)
	}
)
