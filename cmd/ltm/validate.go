package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/ltm/bitcoin"
	"github.com/goodnatureofminers/lockmint/internal/ltm/covenant"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"go.uber.org/zap"
)

type validateCommand struct {
	TxID  string `long:"txid" description:"spending transaction to fetch from the node"`
	RawTx string `long:"raw-tx" description:"hex serialized spending transaction"`
	Input int    `long:"input" description:"index of the input spending the covenant output"`

	app *app
}

type validateResult struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
	Error  string `json:"error,omitempty"`
	Spent  string `json:"spent"`
	*transitionResult
}

func (c *validateCommand) Execute(_ []string) error {
	if (c.TxID == "") == (c.RawTx == "") {
		return errors.New("exactly one of --txid and --raw-tx is required")
	}
	assembler, codec, err := c.app.assembler()
	if err != nil {
		return err
	}

	var (
		tx    *wire.MsgTx
		spent model.CovenantUTXO
	)
	if c.RawTx != "" {
		if tx, err = decodeTx(c.RawTx); err != nil {
			return err
		}
	}
	err = c.app.withNode(func(rpc *bitcoin.RPCClient) error {
		if tx == nil {
			hash, err := chainhash.NewHashFromStr(c.TxID)
			if err != nil {
				return fmt.Errorf("txid %q: %w", c.TxID, err)
			}
			fetched, err := rpc.GetRawTransaction(hash)
			if err != nil {
				return fmt.Errorf("get transaction %s: %w", c.TxID, err)
			}
			tx = fetched.MsgTx()
		}
		if c.Input < 0 || c.Input >= len(tx.TxIn) {
			return fmt.Errorf("input %d out of range, tx has %d inputs", c.Input, len(tx.TxIn))
		}
		spent, err = bitcoin.NewUTXOReader(rpc, codec).Read(context.Background(), tx.TxIn[c.Input].PreviousOutPoint)
		return err
	})
	if err != nil {
		return err
	}

	res := validateResult{Spent: spent.Outpoint.String()}
	r, t, verr := validate(assembler, spent.State, tx, c.Input)
	if verr != nil {
		res.Reason = covenant.RejectReason(verr)
		res.Error = verr.Error()
		c.app.logger.Warn("redemption rejected", zap.String("txid", tx.TxHash().String()), zap.Error(verr))
		return c.app.print(res)
	}
	res.Valid = true
	tr := newTransitionResult(assembler.Variant(), tx, t, r.LockAmount)
	res.transitionResult = &tr
	return c.app.print(res)
}

// validate checks the spend of state through input of tx, the way the ledger presents it.
func validate(assembler *covenant.Assembler, state model.TokenState, tx *wire.MsgTx, input int) (covenant.Redemption, covenant.Transition, error) {
	txCtx, err := covenant.ContextFromTx(tx, input)
	if err != nil {
		return covenant.Redemption{}, covenant.Transition{}, err
	}
	r, err := assembler.RecoverRedemption(tx)
	if err != nil {
		return covenant.Redemption{}, covenant.Transition{}, err
	}
	t, err := covenant.NewValidator(assembler).Validate(state, r, txCtx)
	return r, t, err
}

func decodeTx(rawHex string) (*wire.MsgTx, error) {
	raw, err := hex.DecodeString(rawHex)
	if err != nil {
		return nil, fmt.Errorf("raw tx: %w", err)
	}
	tx := wire.NewMsgTx(wire.TxVersion)
	if err := tx.Deserialize(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("decode raw tx: %w", err)
	}
	return tx, nil
}
