package covenant

import (
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/ltm/bsv20"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/goodnatureofminers/lockmint/internal/ltm/txout"
)

// txVersion is the version of transactions produced by the builder.
const txVersion = 1

// Change pays leftover funding back to a public-key hash.
type Change struct {
	PubKeyHash []byte
	Amount     uint64
}

// BuildOptions carries the transaction fields chosen by the spender.
type BuildOptions struct {
	LockTime uint32
	Sequence uint32
	// Change is appended after the caller's trailing outputs when set.
	Change *Change
}

// BuiltTransition is an unsigned spending transaction and the transition it encodes.
type BuiltTransition struct {
	Transition
	Tx         *wire.MsgTx
	InputIndex int
}

// Builder constructs spending transactions that the Validator accepts.
type Builder struct {
	assembler *Assembler
}

// NewBuilder constructs a Builder over the same Assembler the validator uses.
func NewBuilder(assembler *Assembler) *Builder {
	return &Builder{assembler: assembler}
}

// Build creates the redemption transaction for current. The covenant input is input 0;
// funding inputs and signatures are added by the caller.
func (b *Builder) Build(current model.CovenantUTXO, r Redemption, opts BuildOptions) (*BuiltTransition, error) {
	if opts.Change != nil {
		change, err := changeOutput(*opts.Change)
		if err != nil {
			return nil, err
		}
		r.Trailing = append(append([][]byte(nil), r.Trailing...), change)
	}

	t, err := b.assembler.transition(current.State, r, current.Outpoint, opts.LockTime, opts.Sequence)
	if err != nil {
		return nil, err
	}

	tx := wire.NewMsgTx(txVersion)
	in := wire.NewTxIn(&current.Outpoint, nil, nil)
	in.Sequence = opts.Sequence
	tx.AddTxIn(in)
	tx.LockTime = opts.LockTime
	for i, raw := range t.Outputs {
		out, err := txout.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("output %d: %w", i, err)
		}
		tx.AddTxOut(out)
	}

	return &BuiltTransition{Transition: t, Tx: tx, InputIndex: 0}, nil
}

// ContextFromTx returns the context the ledger presents to the covenant when
// tx spends through input inputIndex.
func ContextFromTx(tx *wire.MsgTx, inputIndex int) (TxContext, error) {
	if inputIndex < 0 || inputIndex >= len(tx.TxIn) {
		return TxContext{}, fmt.Errorf("input %d out of range, tx has %d inputs", inputIndex, len(tx.TxIn))
	}
	outputs := make([][]byte, 0, len(tx.TxOut))
	for i, out := range tx.TxOut {
		raw, err := txout.FromTxOut(out)
		if err != nil {
			return TxContext{}, fmt.Errorf("output %d: %w", i, err)
		}
		outputs = append(outputs, raw)
	}
	in := tx.TxIn[inputIndex]
	return TxContext{
		Outpoint:    in.PreviousOutPoint,
		LockTime:    tx.LockTime,
		Sequence:    in.Sequence,
		HashOutputs: txout.HashOutputs(outputs),
	}, nil
}

func changeOutput(c Change) ([]byte, error) {
	script, err := bsv20.PayToPubKeyHash(c.PubKeyHash)
	if err != nil {
		return nil, fmt.Errorf("%w: change: %v", ErrMalformedRecipientHash, err)
	}
	out, err := txout.Wrap(script, c.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: change amount %d", ErrAmountOutOfRange, c.Amount)
	}
	return out, nil
}
