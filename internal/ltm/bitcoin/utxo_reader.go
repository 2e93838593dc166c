package bitcoin

import (
	"context"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/goodnatureofminers/lockmint/pkg/safe"
)

// ErrOutputNotFound is returned when the referenced output index does not exist.
var ErrOutputNotFound = errors.New("output not found")

// UTXOReader loads the current covenant output of a lineage.
type UTXOReader struct {
	rpc    NodeClient
	states StateDecoder
}

// NewUTXOReader creates a UTXOReader.
func NewUTXOReader(rpc NodeClient, states StateDecoder) *UTXOReader {
	return &UTXOReader{rpc: rpc, states: states}
}

// Read fetches the transaction holding outpoint and decodes the covenant state it carries.
func (r *UTXOReader) Read(ctx context.Context, outpoint wire.OutPoint) (model.CovenantUTXO, error) {
	if err := ctx.Err(); err != nil {
		return model.CovenantUTXO{}, err
	}
	tx, err := r.rpc.GetRawTransaction(&outpoint.Hash)
	if err != nil {
		return model.CovenantUTXO{}, fmt.Errorf("get transaction %s: %w", outpoint.Hash, err)
	}
	return CovenantOutput(tx.MsgTx(), outpoint.Index, r.states)
}

// CovenantOutput decodes output index of tx as a covenant output.
func CovenantOutput(tx *wire.MsgTx, index uint32, states StateDecoder) (model.CovenantUTXO, error) {
	if int(index) >= len(tx.TxOut) {
		return model.CovenantUTXO{}, fmt.Errorf("%w: %s:%d, tx has %d outputs", ErrOutputNotFound, tx.TxHash(), index, len(tx.TxOut))
	}
	out := tx.TxOut[index]
	value, err := safe.Uint64(out.Value)
	if err != nil {
		return model.CovenantUTXO{}, fmt.Errorf("output %s:%d value: %w", tx.TxHash(), index, err)
	}
	state, err := states.DecodeState(out.PkScript)
	if err != nil {
		return model.CovenantUTXO{}, fmt.Errorf("decode state at %s:%d: %w", tx.TxHash(), index, err)
	}
	return model.CovenantUTXO{
		Outpoint: wire.OutPoint{Hash: tx.TxHash(), Index: index},
		Value:    value,
		State:    state,
	}, nil
}
