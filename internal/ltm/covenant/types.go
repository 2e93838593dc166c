// Package covenant implements the lock-to-mint covenant: reward and supply accounting,
// output assembly, the outputs commitment check and the matching transaction builder.
package covenant

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/ltm/bsv20"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// StateCodec renders and recovers the state-carry script.
	StateCodec interface {
		EncodeState(state model.TokenState) ([]byte, error)
		DecodeState(script []byte) (model.TokenState, error)
	}
	// TransferCodec renders and recovers token transfer outputs.
	TransferCodec interface {
		EncodeTransfer(recipient []byte, id string, amount uint64) ([]byte, error)
		DecodeTransfer(script []byte) (bsv20.Transfer, error)
	}
)

// Redemption holds the parameters a spender passes to the covenant.
type Redemption struct {
	LockRecipient   []byte
	RewardRecipient []byte
	LockAmount      uint64
	// Trailing outputs are appended verbatim after the reward output.
	Trailing [][]byte
}

// TxContext is what the ledger exposes to the covenant about the spending transaction.
type TxContext struct {
	Outpoint    wire.OutPoint
	LockTime    uint32
	Sequence    uint32
	HashOutputs chainhash.Hash
}

// Transition is the outcome of one redemption.
type Transition struct {
	Previous  model.TokenState
	Next      model.TokenState
	Reward    uint64
	LockUntil uint64
	// Outputs are the serialized outputs in commitment order.
	Outputs [][]byte
}

// Depleted reports whether the redemption consumed the remaining supply.
func (t Transition) Depleted() bool {
	return t.Next.Phase() == model.PhaseDepleted
}
