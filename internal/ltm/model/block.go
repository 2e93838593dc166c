package model

import (
	"time"

	"github.com/btcsuite/btcd/wire"
)

// Block is a fetched block with its decoded transactions.
type Block struct {
	Height    uint64
	Hash      string
	Timestamp time.Time
	Txs       []*wire.MsgTx
}
