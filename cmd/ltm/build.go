package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/lockmint/internal/ltm/bitcoin"
	"github.com/goodnatureofminers/lockmint/internal/ltm/covenant"
	"github.com/goodnatureofminers/lockmint/internal/ltm/model"
	"github.com/goodnatureofminers/lockmint/internal/ltm/txout"
	"go.uber.org/zap"
)

type buildCommand struct {
	TxID          string   `long:"txid" description:"transaction holding the current covenant output" required:"true"`
	Vout          uint32   `long:"vout" description:"index of the current covenant output"`
	LockAddress   string   `long:"lock-address" description:"address the locked coins unlock to" required:"true"`
	RewardAddress string   `long:"reward-address" description:"address receiving the minted tokens" required:"true"`
	LockAmount    uint64   `long:"lock-amount" description:"satoshis to lock" required:"true"`
	LockTime      uint32   `long:"locktime" description:"transaction locktime, a block height" required:"true"`
	Sequence      uint32   `long:"sequence" description:"covenant input sequence" default:"4294967294"`
	Trailing      []string `long:"trailing" description:"hex serialized outputs appended after the reward output (repeatable, each may hold several)"`
	ChangeAddress string   `long:"change-address" description:"address receiving change"`
	ChangeAmount  uint64   `long:"change-amount" description:"change in satoshis"`

	app *app
}

type transitionResult struct {
	Variant      string `json:"variant"`
	Template     string `json:"template"`
	TxID         string `json:"txid"`
	Tx           string `json:"tx,omitempty"`
	TokenID      string `json:"tokenId"`
	Reward       uint64 `json:"reward"`
	LockAmount   uint64 `json:"lockAmount"`
	LockUntil    uint64 `json:"lockUntil"`
	SupplyBefore uint64 `json:"supplyBefore"`
	SupplyAfter  uint64 `json:"supplyAfter"`
	Depleted     bool   `json:"depleted"`
	HashOutputs  string `json:"hashOutputs"`
}

func (c *buildCommand) Execute(_ []string) error {
	assembler, codec, err := c.app.assembler()
	if err != nil {
		return err
	}
	outpoint, err := parseOutpoint(c.TxID, c.Vout)
	if err != nil {
		return err
	}
	redemption, err := c.redemption()
	if err != nil {
		return err
	}
	opts := covenant.BuildOptions{LockTime: c.LockTime, Sequence: c.Sequence}
	if c.ChangeAddress != "" {
		pkh, err := c.app.pubKeyHash(c.ChangeAddress)
		if err != nil {
			return fmt.Errorf("change address: %w", err)
		}
		opts.Change = &covenant.Change{PubKeyHash: pkh, Amount: c.ChangeAmount}
	}

	var current model.CovenantUTXO
	err = c.app.withNode(func(rpc *bitcoin.RPCClient) error {
		current, err = bitcoin.NewUTXOReader(rpc, codec).Read(context.Background(), outpoint)
		return err
	})
	if err != nil {
		return err
	}

	built, err := covenant.NewBuilder(assembler).Build(current, redemption, opts)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := built.Tx.Serialize(&buf); err != nil {
		return fmt.Errorf("serialize transaction: %w", err)
	}

	c.app.logger.Info("redemption built",
		zap.String("spent", outpoint.String()),
		zap.Uint64("reward", built.Reward),
		zap.Uint64("supply", built.Next.Supply),
	)
	res := newTransitionResult(assembler.Variant(), built.Tx, built.Transition, redemption.LockAmount)
	res.Tx = hex.EncodeToString(buf.Bytes())
	return c.app.print(res)
}

func (c *buildCommand) redemption() (covenant.Redemption, error) {
	lockPkh, err := c.app.pubKeyHash(c.LockAddress)
	if err != nil {
		return covenant.Redemption{}, fmt.Errorf("lock address: %w", err)
	}
	rewardPkh, err := c.app.pubKeyHash(c.RewardAddress)
	if err != nil {
		return covenant.Redemption{}, fmt.Errorf("reward address: %w", err)
	}
	r := covenant.Redemption{
		LockRecipient:   lockPkh,
		RewardRecipient: rewardPkh,
		LockAmount:      c.LockAmount,
	}
	trailing, err := parseTrailing(c.Trailing)
	if err != nil {
		return covenant.Redemption{}, err
	}
	r.Trailing = trailing
	return r, nil
}

// parseTrailing splits every hex argument into serialized outputs, in argument order.
func parseTrailing(args []string) ([][]byte, error) {
	var outputs [][]byte
	for i, h := range args {
		raw, err := hex.DecodeString(h)
		if err != nil {
			return nil, fmt.Errorf("trailing argument %d: %w", i, err)
		}
		outs, err := txout.Split(raw)
		if err != nil {
			return nil, fmt.Errorf("trailing argument %d: %w", i, err)
		}
		for _, out := range outs {
			serialized, err := txout.FromTxOut(out)
			if err != nil {
				return nil, fmt.Errorf("trailing argument %d: %w", i, err)
			}
			outputs = append(outputs, serialized)
		}
	}
	return outputs, nil
}

func newTransitionResult(variant covenant.Variant, tx *wire.MsgTx, t covenant.Transition, lockAmount uint64) transitionResult {
	return transitionResult{
		Variant:      variant.Name,
		Template:     variant.Template.Version,
		TxID:         tx.TxHash().String(),
		TokenID:      t.Next.ID,
		Reward:       t.Reward,
		LockAmount:   lockAmount,
		LockUntil:    t.LockUntil,
		SupplyBefore: t.Previous.Supply,
		SupplyAfter:  t.Next.Supply,
		Depleted:     t.Depleted(),
		HashOutputs:  hashOutputsHex(t.Outputs),
	}
}

// hashOutputsHex renders the commitment in serialization byte order, not txid display order.
func hashOutputsHex(outputs [][]byte) string {
	h := txout.HashOutputs(outputs)
	return hex.EncodeToString(h[:])
}

func parseOutpoint(txid string, vout uint32) (wire.OutPoint, error) {
	hash, err := chainhash.NewHashFromStr(txid)
	if err != nil {
		return wire.OutPoint{}, fmt.Errorf("txid %q: %w", txid, err)
	}
	return wire.OutPoint{Hash: *hash, Index: vout}, nil
}
