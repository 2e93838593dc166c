package covenant

import (
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/ltm/txout"
)

// SpendingInput returns the index of the input of tx that spends outpoint.
func SpendingInput(tx *wire.MsgTx, outpoint wire.OutPoint) (int, bool) {
	for i, in := range tx.TxIn {
		if in.PreviousOutPoint == outpoint {
			return i, true
		}
	}
	return 0, false
}

// RecoverRedemption reads the redemption parameters back out of a spending transaction's
// outputs. The result still has to pass the Validator; recovery only locates the lock and
// reward outputs and treats everything after them as trailing.
func (a *Assembler) RecoverRedemption(tx *wire.MsgTx) (Redemption, error) {
	// The lock output is first when the redemption depleted the supply, second otherwise.
	for lockIdx := 0; lockIdx <= 1 && lockIdx+1 < len(tx.TxOut); lockIdx++ {
		lock := tx.TxOut[lockIdx]
		pkh, _, err := a.variant.ParseLockScript(lock.PkScript)
		if err != nil {
			continue
		}
		transfer, err := a.transfers.DecodeTransfer(tx.TxOut[lockIdx+1].PkScript)
		if err != nil {
			return Redemption{}, fmt.Errorf("%w: reward output: %v", ErrNotCovenantSpend, err)
		}
		if lock.Value < 0 {
			return Redemption{}, fmt.Errorf("%w: negative lock value", ErrAmountOutOfRange)
		}

		r := Redemption{
			LockRecipient:   pkh,
			RewardRecipient: transfer.Recipient,
			LockAmount:      uint64(lock.Value),
		}
		for i, out := range tx.TxOut[lockIdx+2:] {
			raw, err := txout.FromTxOut(out)
			if err != nil {
				return Redemption{}, fmt.Errorf("trailing output %d: %w", i, err)
			}
			r.Trailing = append(r.Trailing, raw)
		}
		return r, nil
	}
	return Redemption{}, fmt.Errorf("%w: no %s lock output found", ErrNotCovenantSpend, a.variant.Name)
}
